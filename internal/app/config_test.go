package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yungbote/mindpulse-backend/internal/data/db"
	"github.com/yungbote/mindpulse-backend/internal/platform/openai"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "DATA_CSV_PATH", "LLM_PROVIDER", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "ENRICHMENT_TIMEOUT_SECONDS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig(nil)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, db.DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "data/mental_health_data.csv", cfg.DataCSVPath)
	assert.Equal(t, ProviderAuto, cfg.LLM.Provider)
	assert.Equal(t, openai.DefaultModel, cfg.LLM.OpenAI.Model)
	assert.Equal(t, 60*time.Second, cfg.EnrichmentTimeout)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.Equal(t, "", cfg.LLM.resolveProvider())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("ENRICHMENT_TIMEOUT_SECONDS", "5")
	cfg := LoadConfig(nil)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, db.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.EnrichmentTimeout)
}

func TestResolveProvider(t *testing.T) {
	both := LLMConfig{Provider: ProviderAuto}
	both.OpenAI.APIKey = "sk-o"
	both.Anthropic.APIKey = "sk-a"
	assert.Equal(t, ProviderOpenAI, both.resolveProvider())

	both.Provider = ProviderAnthropic
	assert.Equal(t, ProviderAnthropic, both.resolveProvider())

	onlyAnthropic := LLMConfig{Provider: ProviderAuto}
	onlyAnthropic.Anthropic.APIKey = "sk-a"
	assert.Equal(t, ProviderAnthropic, onlyAnthropic.resolveProvider())

	onlyAnthropic.Provider = ProviderOpenAI
	assert.Equal(t, "", onlyAnthropic.resolveProvider())
}

package app

import (
	"strings"
	"time"

	"github.com/yungbote/mindpulse-backend/internal/data/db"
	"github.com/yungbote/mindpulse-backend/internal/data/records"
	"github.com/yungbote/mindpulse-backend/internal/modules/enrichment"
	"github.com/yungbote/mindpulse-backend/internal/platform/anthropic"
	"github.com/yungbote/mindpulse-backend/internal/platform/envutil"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
	"github.com/yungbote/mindpulse-backend/internal/platform/openai"
)

const (
	ProviderAuto      = "auto"
	ProviderOpenAI    = openai.Provider
	ProviderAnthropic = anthropic.Provider
)

type LLMConfig struct {
	Provider  string
	OpenAI    openai.Config
	Anthropic anthropic.Config
}

type Config struct {
	LogMode         string
	Port            string
	ServiceName     string
	Environment     string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	Store db.Config
	Seed  bool

	DataCSVPath     string
	DataSeedCSVPath string
	DataCSVURI      string
	CatalogPath     string

	LLM               LLMConfig
	EnrichmentTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		LogMode:         envutil.String("LOG_MODE", "development"),
		Port:            envutil.String("PORT", "5000"),
		ServiceName:     envutil.String("OTEL_SERVICE_NAME", "mindpulse-backend"),
		Environment:     envutil.String("APP_ENV", "development"),
		ShutdownTimeout: envutil.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		AllowedOrigins:  envutil.List("CORS_ALLOWED_ORIGINS", nil),

		Store: db.Config{
			Driver:     strings.ToLower(envutil.String("STORE_DRIVER", db.DriverMemory)),
			SQLitePath: envutil.String("SQLITE_PATH", "data/mindpulse.db"),
			Postgres: db.PostgresConfig{
				Host:     envutil.String("POSTGRES_HOST", "localhost"),
				Port:     envutil.String("POSTGRES_PORT", "5432"),
				User:     envutil.String("POSTGRES_USER", "postgres"),
				Password: envutil.String("POSTGRES_PASSWORD", ""),
				Name:     envutil.String("POSTGRES_NAME", "mindpulse"),
				SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
			},
		},
		Seed: envutil.Bool("SEED_DEMO_DATA", true),

		DataCSVPath:     envutil.String("DATA_CSV_PATH", records.DefaultPath),
		DataSeedCSVPath: envutil.String("DATA_SEED_CSV_PATH", records.DefaultSeedPath),
		DataCSVURI:      envutil.String("DATA_CSV_URI", ""),
		CatalogPath:     envutil.String("INSIGHT_CATALOG_YAML", ""),

		LLM: LLMConfig{
			Provider: strings.ToLower(envutil.String("LLM_PROVIDER", ProviderAuto)),
			OpenAI: openai.Config{
				APIKey:  envutil.String("OPENAI_API_KEY", ""),
				BaseURL: envutil.String("OPENAI_BASE_URL", openai.DefaultBaseURL),
				Model:   envutil.String("OPENAI_MODEL", openai.DefaultModel),
				Timeout: envutil.Seconds("OPENAI_TIMEOUT_SECONDS", enrichment.DefaultTimeout),
			},
			Anthropic: anthropic.Config{
				APIKey:    envutil.String("ANTHROPIC_API_KEY", ""),
				BaseURL:   envutil.String("ANTHROPIC_BASE_URL", anthropic.DefaultBaseURL),
				Model:     envutil.String("ANTHROPIC_MODEL", anthropic.DefaultModel),
				MaxTokens: envutil.Int("ANTHROPIC_MAX_TOKENS", anthropic.DefaultMaxTokens),
				Timeout:   envutil.Seconds("ANTHROPIC_TIMEOUT_SECONDS", enrichment.DefaultTimeout),
			},
		},
		EnrichmentTimeout: envutil.Seconds("ENRICHMENT_TIMEOUT_SECONDS", enrichment.DefaultTimeout),

		RedisAddr:     envutil.String("REDIS_ADDR", ""),
		RedisPassword: envutil.String("REDIS_PASSWORD", ""),
		RedisDB:       envutil.Int("REDIS_DB", 0),
		CacheTTL:      envutil.Seconds("ENRICHMENT_CACHE_TTL_SECONDS", 6*time.Hour),
	}
	if log != nil {
		log.Info("Configuration loaded",
			"store_driver", cfg.Store.Driver,
			"port", cfg.Port,
			"data_csv", cfg.dataLocation(),
			"llm_provider", cfg.LLM.Provider,
			"redis", cfg.RedisAddr != "",
		)
	}
	return cfg
}

func (c Config) dataLocation() string {
	if c.DataCSVURI != "" {
		return c.DataCSVURI
	}
	return c.DataCSVPath
}

// resolveProvider picks the enrichment backend. "auto" prefers OpenAI, then Anthropic;
// an empty result disables enrichment.
func (c LLMConfig) resolveProvider() string {
	hasOpenAI := strings.TrimSpace(c.OpenAI.APIKey) != ""
	hasAnthropic := strings.TrimSpace(c.Anthropic.APIKey) != ""
	switch c.Provider {
	case ProviderOpenAI:
		if hasOpenAI {
			return ProviderOpenAI
		}
	case ProviderAnthropic:
		if hasAnthropic {
			return ProviderAnthropic
		}
	default:
		if hasOpenAI {
			return ProviderOpenAI
		}
		if hasAnthropic {
			return ProviderAnthropic
		}
	}
	return ""
}

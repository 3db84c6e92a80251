package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	redisclient "github.com/yungbote/mindpulse-backend/internal/clients/redis"
	"github.com/yungbote/mindpulse-backend/internal/modules/enrichment"
	"github.com/yungbote/mindpulse-backend/internal/platform/anthropic"
	"github.com/yungbote/mindpulse-backend/internal/platform/gcp"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
	"github.com/yungbote/mindpulse-backend/internal/platform/openai"
)

type Clients struct {
	Cache     redisclient.Cache
	Objects   gcp.ObjectReader
	Generator enrichment.Generator
	Provider  string
	Model     string
}

// wireClients connects the optional remote dependencies concurrently.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients
	g, gctx := errgroup.WithContext(ctx)

	if cfg.RedisAddr != "" {
		g.Go(func() error {
			c, err := redisclient.NewCache(gctx, log, redisclient.Config{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
				Prefix:   "mindpulse:",
				TTL:      cfg.CacheTTL,
			})
			if err != nil {
				return fmt.Errorf("init redis cache: %w", err)
			}
			out.Cache = c
			return nil
		})
	}

	if cfg.DataCSVURI != "" {
		g.Go(func() error {
			storageCfg, err := gcp.ResolveObjectStorageConfigFromEnv()
			if err != nil {
				return fmt.Errorf("resolve object storage config: %w", err)
			}
			r, err := gcp.NewObjectReader(gctx, log, storageCfg)
			if err != nil {
				return fmt.Errorf("init object reader: %w", err)
			}
			out.Objects = r
			return nil
		})
	}

	g.Go(func() error {
		gen, provider, model, err := newGenerator(log, cfg.LLM)
		if err != nil {
			return err
		}
		out.Generator, out.Provider, out.Model = gen, provider, model
		return nil
	})

	if err := g.Wait(); err != nil {
		out.close(log)
		return Clients{}, err
	}
	return out, nil
}

func newGenerator(log *logger.Logger, cfg LLMConfig) (enrichment.Generator, string, string, error) {
	switch cfg.resolveProvider() {
	case ProviderOpenAI:
		c, err := openai.NewClient(log, cfg.OpenAI)
		if err != nil {
			return nil, "", "", fmt.Errorf("init openai client: %w", err)
		}
		return c, ProviderOpenAI, cfg.OpenAI.Model, nil
	case ProviderAnthropic:
		c, err := anthropic.NewClient(log, cfg.Anthropic)
		if err != nil {
			return nil, "", "", fmt.Errorf("init anthropic client: %w", err)
		}
		return c, ProviderAnthropic, cfg.Anthropic.Model, nil
	default:
		log.Warn("No language model API key configured; insights will not be enriched", "provider", cfg.Provider)
		return nil, "", "", nil
	}
}

func (c Clients) close(log *logger.Logger) {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if c.Objects != nil {
		if err := c.Objects.Close(); err != nil {
			log.Warn("object storage close failed", "error", err)
		}
	}
}

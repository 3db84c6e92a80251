package app

import (
	"fmt"

	"github.com/yungbote/mindpulse-backend/internal/data/records"
	"github.com/yungbote/mindpulse-backend/internal/data/repos"
	"github.com/yungbote/mindpulse-backend/internal/modules/enrichment"
	"github.com/yungbote/mindpulse-backend/internal/modules/wellbeing"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
	"github.com/yungbote/mindpulse-backend/internal/services"
)

type Services struct {
	User    services.UserService
	Metric  services.MetricService
	Survey  services.SurveyService
	Insight services.InsightService
}

func wireServices(log *logger.Logger, cfg Config, set repos.Set, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	catalog := wellbeing.DefaultCatalog()
	if cfg.CatalogPath != "" {
		c, err := wellbeing.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return Services{}, fmt.Errorf("load insight catalog: %w", err)
		}
		catalog = c
	}

	var src records.Source = records.FileSource{Path: cfg.DataCSVPath}
	if cfg.DataCSVURI != "" {
		obj, err := records.NewObjectSource(clients.Objects, cfg.DataCSVURI)
		if err != nil {
			return Services{}, fmt.Errorf("DATA_CSV_URI: %w", err)
		}
		src = obj
	}

	opts := enrichment.Options{
		Generator: clients.Generator,
		Provider:  clients.Provider,
		Model:     clients.Model,
		Timeout:   cfg.EnrichmentTimeout,
		CallLogs:  set.AICallLogs,
	}
	if clients.Cache != nil {
		opts.Cache = clients.Cache
	}

	return Services{
		User:   services.NewUserService(log, set.Users),
		Metric: services.NewMetricService(log, set.Metrics),
		Survey: services.NewSurveyService(log, set.Surveys),
		Insight: services.NewInsightService(log,
			records.NewLoader(src, log),
			wellbeing.NewProcessor(catalog, log),
			enrichment.NewEnricher(log, opts),
		),
	}, nil
}

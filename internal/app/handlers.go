package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	httpx "github.com/yungbote/mindpulse-backend/internal/http"
	httpH "github.com/yungbote/mindpulse-backend/internal/http/handlers"
	"github.com/yungbote/mindpulse-backend/internal/observability"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	User    *httpH.UserHandler
	Metric  *httpH.MetricHandler
	Survey  *httpH.SurveyHandler
	Insight *httpH.InsightHandler
}

func wireHandlers(log *logger.Logger, svc Services, theDB *gorm.DB, clients Clients) Handlers {
	log.Info("Wiring handlers...")
	deps := map[string]httpH.Pinger{}
	if theDB != nil {
		deps["database"] = httpH.PingFunc(func(ctx context.Context) error {
			sqlDB, err := theDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})
	}
	if clients.Cache != nil {
		deps["redis"] = httpH.PingFunc(func(ctx context.Context) error {
			return clients.Cache.Client().Ping(ctx).Err()
		})
	}
	return Handlers{
		Health:  httpH.NewHealthHandler(deps),
		User:    httpH.NewUserHandler(log, svc.User),
		Metric:  httpH.NewMetricHandler(log, svc.Metric),
		Survey:  httpH.NewSurveyHandler(log, svc.Survey),
		Insight: httpH.NewInsightHandler(log, svc.Insight),
	}
}

func wireRouter(log *logger.Logger, cfg Config, h Handlers, m *observability.Metrics) *gin.Engine {
	return httpx.NewRouter(httpx.RouterConfig{
		Log:            log,
		Metrics:        m,
		ServiceName:    cfg.ServiceName,
		AllowedOrigins: cfg.AllowedOrigins,
		HealthHandler:  h.Health,
		UserHandler:    h.User,
		MetricHandler:  h.Metric,
		SurveyHandler:  h.Survey,
		InsightHandler: h.Insight,
	})
}

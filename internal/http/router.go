package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/mindpulse-backend/internal/http/handlers"
	httpMW "github.com/yungbote/mindpulse-backend/internal/http/middleware"
	"github.com/yungbote/mindpulse-backend/internal/http/response"
	"github.com/yungbote/mindpulse-backend/internal/observability"
	"github.com/yungbote/mindpulse-backend/internal/platform/apierr"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	AllowedOrigins []string

	HealthHandler  *httpH.HealthHandler
	UserHandler    *httpH.UserHandler
	MetricHandler  *httpH.MetricHandler
	SurveyHandler  *httpH.SurveyHandler
	InsightHandler *httpH.InsightHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.NewNop()
	}
	r := gin.New()
	r.Use(httpMW.Recovery(log))
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, apierr.NotFound("not_found", errRouteNotFound))
	})

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// User
		if cfg.UserHandler != nil {
			api.GET("/user/:id", cfg.UserHandler.GetUser)
		}

		// Metrics
		if cfg.MetricHandler != nil {
			api.GET("/metrics/:userId", cfg.MetricHandler.List)
			api.GET("/metrics/:userId/latest", cfg.MetricHandler.Latest)
			api.GET("/metrics/:userId/weekly", cfg.MetricHandler.Weekly)
		}

		// Survey
		if cfg.SurveyHandler != nil {
			api.GET("/survey/:userId/latest", cfg.SurveyHandler.Latest)
			api.POST("/survey", cfg.SurveyHandler.Create)
			api.PATCH("/survey/:id", cfg.SurveyHandler.Update)
		}

		// Analysis
		if cfg.InsightHandler != nil {
			api.GET("/advanced-metrics/:userId", cfg.InsightHandler.AdvancedMetrics)
			api.GET("/ai/insights/:userId", cfg.InsightHandler.Insights)
			api.GET("/ai/metrics/:userId", cfg.InsightHandler.Metrics)
			api.GET("/ai/recommendations/:userId", cfg.InsightHandler.Recommendations)
		}
	}

	return r
}

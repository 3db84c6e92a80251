package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/mindpulse-backend/internal/data/db"
	"github.com/yungbote/mindpulse-backend/internal/data/records"
	"github.com/yungbote/mindpulse-backend/internal/data/repos"
	httpx "github.com/yungbote/mindpulse-backend/internal/http"
	"github.com/yungbote/mindpulse-backend/internal/observability"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    repos.Set
	Clients  Clients
	Services Services
	Metrics  *observability.Metrics

	otelShutdown func(context.Context) error
	cancel       context.CancelFunc
}

func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
	})
	metrics := observability.Init(log)

	if cfg.DataCSVURI == "" {
		if _, err := records.EnsureCSV(log, cfg.DataCSVPath, cfg.DataSeedCSVPath); err != nil {
			log.Warn("Could not prepare dataset; analysis endpoints will serve fallback data", "path", cfg.DataCSVPath, "error", err)
		}
	}

	reposet, theDB, err := wireRepos(ctx, log, cfg)
	if err != nil {
		_ = otelShutdown(ctx)
		return nil, err
	}

	clients, err := wireClients(ctx, log, cfg)
	if err != nil {
		closeDB(log, theDB)
		_ = otelShutdown(ctx)
		return nil, err
	}

	serviceset, err := wireServices(log, cfg, reposet, clients)
	if err != nil {
		clients.close(log)
		closeDB(log, theDB)
		_ = otelShutdown(ctx)
		return nil, err
	}

	handlerset := wireHandlers(log, serviceset, theDB, clients)
	router := wireRouter(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Clients:      clients,
		Services:     serviceset,
		Metrics:      metrics,
		otelShutdown: otelShutdown,
	}, nil
}

// Start launches background collectors; they stop on Close.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.Metrics.StartDBCollector(ctx, a.Log, a.DB)
	if a.Clients.Cache != nil {
		a.Metrics.StartRedisCollector(ctx, a.Log, a.Clients.Cache.Client())
	}
}

// Run serves HTTP until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	addr := ":" + a.Cfg.Port
	a.Log.Info("HTTP server listening", "addr", addr)
	srv := &httpx.Server{Engine: a.Router}
	return srv.Run(ctx, addr, a.Cfg.ShutdownTimeout)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.Clients.close(a.Log)
	closeDB(a.Log, a.DB)
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	a.Log.Sync()
}

func closeDB(log *logger.Logger, theDB *gorm.DB) {
	if theDB == nil {
		return
	}
	if err := db.Close(theDB); err != nil {
		log.Warn("database close failed", "error", err)
	}
}

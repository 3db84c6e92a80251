package app

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/mindpulse-backend/internal/data/db"
	"github.com/yungbote/mindpulse-backend/internal/data/repos"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// wireRepos opens the configured store. The returned *gorm.DB is nil for the memory driver.
func wireRepos(ctx context.Context, log *logger.Logger, cfg Config) (repos.Set, *gorm.DB, error) {
	log.Info("Wiring repos...", "driver", cfg.Store.Driver)
	var (
		set   repos.Set
		theDB *gorm.DB
	)
	switch cfg.Store.Driver {
	case db.DriverMemory, "":
		set = repos.NewMemorySet(log)
	default:
		conn, err := db.Open(log, cfg.Store)
		if err != nil {
			return repos.Set{}, nil, fmt.Errorf("open store: %w", err)
		}
		theDB = conn
		set = repos.NewGormSet(conn, log)
	}
	if cfg.Seed {
		if err := repos.SeedDemo(ctx, set, time.Now()); err != nil {
			if theDB != nil {
				_ = db.Close(theDB)
			}
			return repos.Set{}, nil, fmt.Errorf("seed demo data: %w", err)
		}
	}
	return set, theDB, nil
}

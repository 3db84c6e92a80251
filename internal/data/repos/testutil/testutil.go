package testutil

import (
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/mindpulse-backend/internal/data/db"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a fresh, migrated sqlite database in a temp dir. It is closed when the test ends.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb, err := db.Open(Logger(tb), db.Config{
		Driver:     db.DriverSQLite,
		SQLitePath: filepath.Join(tb.TempDir(), "test.db"),
		Silent:     true,
	})
	if err != nil {
		tb.Fatalf("failed to init test db: %v", err)
	}
	tb.Cleanup(func() {
		_ = db.Close(gdb)
	})
	return gdb
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

package db

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/finance-tracker/rbac-backend/config"
)

// NewSQLiteConnection opens a file-backed SQLite database. SQLite allows a
// single writer, so the pool is pinned to one connection.
func NewSQLiteConnection(cfg *config.DatabaseConfig) (*Database, error) {
	dsn := cfg.SQLitePath
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	slog.Info("Database connection established", "driver", config.DriverSQLite, "path", dsn)

	return &Database{
		db:  db,
		cfg: cfg,
	}, nil
}

// Package db owns the PostgreSQL connection.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rentfolio/backend/config"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

// Database is the application's PostgreSQL handle. A nil *Database is a
// valid degraded handle: Gorm returns nil and Healthy reports false, so
// the service can start without a reachable database and surface that
// through the health endpoint.
type Database struct {
	gorm *gorm.DB
}

// Connect opens a PostgreSQL connection with the configured pool limits
// and verifies it with a ping.
func Connect(cfg *config.DatabaseConfig) (*Database, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Database{gorm: gormDB}, nil
}

// Gorm returns the underlying gorm handle, or nil when degraded.
func (d *Database) Gorm() *gorm.DB {
	if d == nil {
		return nil
	}
	return d.gorm
}

// Healthy reports whether the database answers a ping.
func (d *Database) Healthy() bool {
	if d == nil {
		return false
	}

	sqlDB, err := d.gorm.DB()
	if err != nil {
		slog.Error("failed to get sql.DB for health check", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		return false
	}
	return true
}

// Migrate runs auto-migration for every persisted model of the service.
func (d *Database) Migrate() error {
	if err := d.gorm.AutoMigrate(
		&model.UserModel{},
		&model.PropertyModel{},
		&model.TransactionModel{},
		&model.MetricEntryModel{},
		&model.PropertySnapshotModel{},
		&model.AIAnalysisModel{},
		&model.ReportRecordModel{},
		&model.DocumentModel{},
	); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}

	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("database connection closed")
	return nil
}

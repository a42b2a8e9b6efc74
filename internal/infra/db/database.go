// Package db provides database connection and management functionality.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	connectTimeout = 5 * time.Second
	healthTimeout  = 2 * time.Second
)

// pool holds connection pool limits. Zero values keep the database/sql defaults.
type pool struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

// Database wraps the GORM connection of the selected driver.
type Database struct {
	db     *gorm.DB
	driver string
}

// open connects through dialector, applies the pool limits and pings the database.
func open(driver string, dialector gorm.Dialector, limits pool) (*Database, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if limits.maxOpen > 0 {
		sqlDB.SetMaxOpenConns(limits.maxOpen)
	}
	if limits.maxIdle > 0 {
		sqlDB.SetMaxIdleConns(limits.maxIdle)
	}
	if limits.maxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(limits.maxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return &Database{db: gdb, driver: driver}, nil
}

// DB returns the underlying GORM database instance.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Driver returns the name of the driver in use.
func (d *Database) Driver() string {
	return d.driver
}

// HealthCheck pings the database. It backs the "database" field of GET /health.
func (d *Database) HealthCheck() bool {
	sqlDB, err := d.db.DB()
	if err != nil {
		slog.Error("Failed to get sql.DB for health check", "driver", d.driver, "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("Database health check failed", "driver", d.driver, "error", err)
		return false
	}
	return true
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("Database connection closed", "driver", d.driver)
	return nil
}

// AutoMigrate creates or updates the wardrobe tables for the given models.
func (d *Database) AutoMigrate(models ...any) error {
	if err := d.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

package db

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"

	"github.com/wardrobe-manager/backend/config"
)

// NewPostgresConnection connects to PostgreSQL at cfg.URL with the configured pool limits.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the %s driver", config.DatabaseDriverPostgres)
	}

	database, err := open(config.DatabaseDriverPostgres, postgres.Open(cfg.URL), pool{
		maxOpen:     cfg.MaxOpenConns,
		maxIdle:     cfg.MaxIdleConns,
		maxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Database connection established",
		"driver", config.DatabaseDriverPostgres,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return database, nil
}

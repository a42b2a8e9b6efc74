package db

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"

	"github.com/wardrobe-manager/backend/config"
)

// NewSQLiteConnection opens an embedded SQLite database at cfg.SQLitePath.
// ":memory:" gives a throwaway database.
func NewSQLiteConnection(cfg *config.DatabaseConfig) (*Database, error) {
	// SQLite serializes writers, and every :memory: connection is a separate database.
	database, err := open(config.DatabaseDriverSQLite, sqlite.Open(cfg.SQLitePath), pool{maxOpen: 1})
	if err != nil {
		return nil, err
	}

	slog.Info("Database connection established",
		"driver", config.DatabaseDriverSQLite,
		"path", cfg.SQLitePath,
	)
	return database, nil
}

// NewConnection opens the database selected by cfg.Driver.
func NewConnection(cfg *config.DatabaseConfig) (*Database, error) {
	switch cfg.Driver {
	case config.DatabaseDriverSQLite:
		return NewSQLiteConnection(cfg)
	case config.DatabaseDriverPostgres, "":
		return NewPostgresConnection(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != DatabaseDriverPostgres {
		t.Errorf("database driver = %s, want %s", cfg.Database.Driver, DatabaseDriverPostgres)
	}
	if cfg.Storage.Driver != StorageDriverFS {
		t.Errorf("storage driver = %s, want %s", cfg.Storage.Driver, StorageDriverFS)
	}
	if cfg.Redis.Enabled {
		t.Error("redis cache should be disabled by default")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics path = %s", cfg.Metrics.Path)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("ANALYTICS_CACHE_TTL", "30s")
	t.Setenv("STORAGE_DRIVER", "s3")

	cfg := Load()

	if cfg.Database.Driver != DatabaseDriverSQLite {
		t.Errorf("database driver = %s", cfg.Database.Driver)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if !cfg.Redis.Enabled || cfg.Redis.TTL != 30*time.Second {
		t.Errorf("redis = %+v", cfg.Redis)
	}
	if cfg.Storage.Driver != StorageDriverS3 {
		t.Errorf("storage driver = %s", cfg.Storage.Driver)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Server.Port)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should fall back to enabled")
	}
}

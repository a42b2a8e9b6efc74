// Package main is the entry point for the Wardrobe Manager API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wardrobe-manager/backend/config"
	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/infra/db"
	"github.com/wardrobe-manager/backend/internal/infra/dependency"
	"github.com/wardrobe-manager/backend/internal/infra/server/router"
	"github.com/wardrobe-manager/backend/internal/integration/cache"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/controller"
	"github.com/wardrobe-manager/backend/internal/integration/metrics"
	"github.com/wardrobe-manager/backend/internal/integration/persistence/model"
	"github.com/wardrobe-manager/backend/internal/integration/storage"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Wardrobe Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ctx := context.Background()

	// Metrics
	var usageMetrics adapter.UsageMetrics = metrics.Noop{}
	var prom *metrics.PrometheusMetrics
	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheusMetrics()
		usageMetrics = prom
	}

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	var r *router.Router
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		r = router.NewRouter(router.Controllers{
			Health: controller.NewHealthController(func() bool { return false }, nil),
		}, nil, nil)
	} else {
		if err := database.AutoMigrate(model.All()...); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		images, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			slog.Error("Failed to initialize image storage", "driver", cfg.Storage.Driver, "error", err)
			os.Exit(1)
		}

		infra := dependency.Infrastructure{
			Images:   images,
			Metrics:  usageMetrics,
			DBHealth: database.HealthCheck,
		}

		// Analytics cache is optional; the API works without it
		if cfg.Redis.Enabled {
			client, err := cache.Connect(ctx, cfg.Redis)
			if err != nil {
				slog.Warn("Redis connection failed, analytics cache disabled", "error", err)
			} else {
				defer client.Close()
				infra.Cache = cache.NewRedisAnalyticsCache(client, cfg.Redis.TTL)
				infra.CacheHealth = func() bool {
					pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
					defer cancel()
					return client.Ping(pingCtx).Err() == nil
				}
				slog.Info("Analytics cache enabled", "ttl", cfg.Redis.TTL)
			}
		}

		r = dependency.NewInjector(cfg, database.DB(), infra).Router
		if cfg.Storage.Driver == config.StorageDriverFS {
			r.WithUploads(uploadsRoute(cfg.Storage.PublicURL), cfg.Storage.Dir)
		}

		slog.Info("Wardrobe systems initialized successfully")
	}

	if prom != nil {
		r.WithMetrics(cfg.Metrics.Path, prom.Handler())
	}
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// uploadsRoute returns the URL path under which local images are served.
func uploadsRoute(publicURL string) string {
	u, err := url.Parse(publicURL)
	if err != nil || u.Path == "" {
		return "/uploads"
	}
	return u.Path
}

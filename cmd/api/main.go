// Package main is the entry point for the Finance Tracker API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/rbac-backend/config"
	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/infra/db"
	"github.com/finance-tracker/rbac-backend/internal/infra/dependency"
	"github.com/finance-tracker/rbac-backend/internal/integration/cachestore"
)

const rateLimiterCleanupInterval = 10 * time.Minute

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Finance Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
	)

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func run(cfg *config.Config) error {
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.MigrateAll(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	slog.Info("Database migrations completed successfully")

	store := newCacheStore(&cfg.Redis)

	injector := dependency.NewInjector(cfg, database.DB(), dependency.Options{
		Store:    store,
		Clock:    adapter.SystemClock{},
		DBHealth: database.HealthCheck,
	})
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		injector.Recorder.Start(gctx)
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(rateLimiterCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				injector.CleanupRateLimiters()
			}
		}
	})

	g.Go(func() error {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
		if err := injector.Recorder.Close(shutdownCtx); err != nil {
			slog.Error("Audit recorder did not drain", "error", err, "dropped", injector.Recorder.Dropped())
		}
		return nil
	})

	return g.Wait()
}

// newCacheStore returns a Redis-backed store, or a no-op store when caching is
// disabled or Redis is unreachable at startup.
func newCacheStore(cfg *config.RedisConfig) adapter.CacheStore {
	if !cfg.Enabled {
		slog.Info("Cache disabled by configuration")
		return cachestore.NewNoopStore()
	}

	client, err := cachestore.NewRedisClient(cfg)
	if err != nil {
		slog.Warn("Invalid Redis configuration, running without cache", "error", err)
		return cachestore.NewNoopStore()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	store := cachestore.NewRedisStore(client)
	if err := store.Ping(ctx); err != nil {
		slog.Warn("Redis connection failed, running without cache", "error", err)
		_ = client.Close()
		return cachestore.NewNoopStore()
	}

	slog.Info("Redis connection established")
	return store
}

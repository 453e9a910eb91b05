// Package main is the entry point for the Owner Portal forecasting API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/owner-portal/backend/config"
	"github.com/owner-portal/backend/internal/infra/db"
	"github.com/owner-portal/backend/internal/infra/dependency"
	"github.com/owner-portal/backend/internal/infra/redisdb"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Owner Portal API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"horizons", cfg.Forecast.Horizons,
	)

	opts := dependency.Options{
		DBHealthChecker: func() bool { return false },
	}

	// Initialize database connection
	var gormDB *gorm.DB
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
	} else {
		if err := database.AutoMigrate(); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		gormDB = database.DB()
		opts.DBHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize the snapshot cache; the API works without it
	if cfg.Redis.URL != "" {
		redisConn, err := redisdb.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, snapshot cache disabled", "error", err)
		} else {
			opts.RedisClient = redisConn.Client()
			opts.CacheHealthChecker = redisConn.HealthCheck
			defer func() {
				if err := redisConn.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
		}
	}

	injector := dependency.NewInjector(cfg, gormDB, opts)
	engine := injector.Router.Setup(cfg.Server.Environment)

	if injector.Scheduler != nil {
		if err := injector.Scheduler.Start(); err != nil {
			slog.Error("Snapshot warm job not started", "error", err)
		} else {
			// Warm once at startup so the first dashboard loads hit the cache.
			go injector.Scheduler.WarmSnapshots()
		}
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if injector.Scheduler != nil {
		select {
		case <-injector.Scheduler.Stop().Done():
		case <-ctx.Done():
			slog.Warn("Snapshot warm job still running at shutdown")
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

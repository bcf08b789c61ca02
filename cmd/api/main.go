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

	"github.com/rentfolio/backend/config"
	"github.com/rentfolio/backend/internal/infra/cache"
	"github.com/rentfolio/backend/internal/infra/db"
	"github.com/rentfolio/backend/internal/infra/dependency"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	// A nil database handle is a degraded start: the health endpoint
	// reports it and data routes fail until the store comes back.
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		slog.Warn("database unavailable, starting degraded", "error", err)
	} else {
		defer database.Close()

		if err := database.Migrate(); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	injector := dependency.NewInjector(cfg, database.Gorm(), redisClient, database.Healthy)
	injector.Router.Setup(cfg.Server.Environment)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      injector.Router.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

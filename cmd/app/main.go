package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tunestream/analytics/internal/bootstrap"
	"github.com/tunestream/analytics/internal/config"
	"github.com/tunestream/analytics/internal/database"
	"github.com/tunestream/analytics/internal/handler"
	"github.com/tunestream/analytics/internal/server"

	_ "github.com/tunestream/analytics/docs"
)

// @title Listening Analytics API
// @version 1.0
// @description Event ingestion and ranking queries over the user activity log
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	dbPool, err := database.NewPool(cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(dbPool); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(repos)

	srv := server.NewServer(cfg.Port, dbPool, services.Analytics, services.Recommend)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, srv, dbPool)
}

// Package bootstrap wires configuration, logging, storage and services
// together for the application entrypoint.
package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tunestream/analytics/internal/analytics"
	"github.com/tunestream/analytics/internal/config"
	"github.com/tunestream/analytics/internal/database"
	"github.com/tunestream/analytics/internal/database/postgres"
	"github.com/tunestream/analytics/internal/logger"
	"github.com/tunestream/analytics/internal/recommend"
	"github.com/tunestream/analytics/internal/repository"
	"github.com/tunestream/analytics/internal/server"
)

// SetupLogger initializes the process-wide slog logger from config.
func SetupLogger(cfg *config.Config) {
	log := logger.New(os.Stdout, logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(log)

	slog.Info("Logging initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)
}

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	UserEvents repository.UserEvents
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserEvents: postgres.NewUserEventsRepository(dbPool),
	}
}

// Services holds the application services built over the repositories.
type Services struct {
	Analytics analytics.Service
	Recommend recommend.Service
}

// InitializeServices creates the service layer.
func InitializeServices(repos *Repositories) *Services {
	return &Services{
		Analytics: analytics.NewService(repos.UserEvents),
		Recommend: recommend.NewService(repos.UserEvents),
	}
}

// GracefulShutdown stops the HTTP server and closes the database pool.
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, srv *server.Server, dbPool database.Pool) {
	slog.Info("Shutting down server")

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}

	dbPool.Close()
	slog.Info("Server stopped")
}

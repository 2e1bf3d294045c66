package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tunestream/analytics/db"
)

// Migrate applies all pending goose migrations from the embedded
// db/migrations directory. It borrows a database/sql handle from the
// pool's config; the pool itself stays untouched.
func Migrate(pool *pgxpool.Pool) error {
	conn := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("Failed to close migration connection", "error", err)
		}
	}()

	return migrateDB(conn)
}

func migrateDB(conn *sql.DB) error {
	goose.SetBaseFS(db.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	slog.Info(LogMsgMigrationsApplied)
	return nil
}

package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config controls how the process-wide slog logger is built.
type Config struct {
	Level     string // "debug", "info", "warn", "error"
	Format    string // "json", "text"
	AddSource bool
}

// SlogLevel converts the configured level string to a slog.Level.
// Unrecognized values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a slog.Logger writing to w according to the config.
func New(w io.Writer, c Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     c.SlogLevel(),
		AddSource: c.AddSource,
	}
	if strings.ToLower(c.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

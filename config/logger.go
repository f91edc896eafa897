package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns the application logger configured from GO_ENV and
// LOG_LEVEL. Production logs JSON, everything else logs text. Every
// record carries a service attribute so aggregated logs stay searchable.
func NewLogger() *slog.Logger {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With("service", "eventboard")
}

// parseLevel maps a LOG_LEVEL value onto a slog level, defaulting to
// info for empty or unknown input.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

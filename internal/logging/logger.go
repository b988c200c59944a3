// Package logging builds the process-wide slog logger from configuration.
package logging

import (
	"io"
	"log/slog"

	"github.com/ahrav/go-ballot/internal/configuration"
)

// New returns a logger writing to w at the configured level and format.
// Unknown levels fall back to info; any format other than "json" is text.
func New(cfg configuration.ObservabilityConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(level string) slog.Level {
	switch level {
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

// Init builds a logger with New and installs it as slog's default.
func Init(cfg configuration.ObservabilityConfig, w io.Writer) *slog.Logger {
	logger := New(cfg, w)
	slog.SetDefault(logger)
	return logger
}

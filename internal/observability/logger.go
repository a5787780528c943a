// Package observability builds the process logger.
package observability

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexiusacademia/gowind/internal/config"
	"github.com/lmittmann/tint"
)

// NewLogger returns a logger writing to w: colorized text through tint, or
// JSON when cfg.LogFormat is "json".
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to warn.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Package obs contains observability utilities such as logging and tracing.
package obs

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the global structured logger used by the service.
//
// It falls back to slog's default logger until InitLogger runs, so packages
// exercised directly from tests can log without setup.
var Logger = slog.Default()

// InitLogger initializes the global Logger with a JSON handler at the given
// level ("debug", "info", "warn", "error"); unknown levels mean info.
func InitLogger(level string) {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: ParseLevel(level)})
	Logger = slog.New(h)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

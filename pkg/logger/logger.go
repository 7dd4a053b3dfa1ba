package logger

import (
	"log/slog"
	"strings"
)

// New builds a logger from a textual level ("debug", "info", "warn",
// "error") and a handler constructor. Unknown levels fall back to info.
func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	return slog.New(handler(parseLevel(level)))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

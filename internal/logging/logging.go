// Package logging builds the slog logger used for stderr diagnostics.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel keeps stderr quiet unless something goes wrong.
const DefaultLevel = "error"

// ParseLevel maps a level name to a slog.Level. Unknown names map to error.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// New creates a text logger writing to w. It does not touch the global
// logger.
func New(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

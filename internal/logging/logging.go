package logging

import (
	"io"
	"log"
	"log/slog"
	"strings"
)

// Init builds the process logger and installs it as the slog default.
// Production gets JSON lines, everything else human readable text.
func Init(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Route the standard log package (used by config loading) through the same writer.
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	return logger
}

func parseLevel(level string) slog.Level {
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

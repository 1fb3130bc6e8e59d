package logger

import (
	"log/slog"
	"os"
	"strings"
)

const envLocal = "local"

// SetupLogger builds the root logger. Local environments get a human-readable
// text handler at debug level; everything else honors the configured level
// and format (json for log collectors, text otherwise).
func SetupLogger(env, level, format string, debug bool) *slog.Logger {
	if env == envLocal {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	lvl := parseLevel(level)
	if debug {
		lvl = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

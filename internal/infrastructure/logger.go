// Package infrastructure wires up cross-cutting runtime concerns:
// structured logging and trace export.
package infrastructure

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gridlift/internal/config"
)

var (
	globalLogger     *slog.Logger
	globalLoggerOnce sync.Once
)

// InitializeLogger creates and installs the global slog logger. Safe to
// call more than once; only the first call takes effect.
func InitializeLogger(cfg config.LoggingConfig) *slog.Logger {
	globalLoggerOnce.Do(func() {
		globalLogger = createLogger(cfg)
		slog.SetDefault(globalLogger)
	})
	return globalLogger
}

// GetLogger returns the global logger, or slog.Default() before
// initialization.
func GetLogger() *slog.Logger {
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}

func createLogger(cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	}

	var output io.Writer = os.Stdout
	if strings.EqualFold(cfg.Output, "stderr") {
		output = os.Stderr
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	return slog.New(handler)
}

func parseLogLevel(level string) slog.Level {
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

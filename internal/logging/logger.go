package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joseph-ayodele/resume-site/internal/common"
)

// New builds a logger from the logging config.
// Format "json" is meant for log aggregation; anything else uses the text handler.
func New(cfg common.LoggingConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init configures the global slog logger and returns it.
func Init(cfg common.LoggingConfig) *slog.Logger {
	logger := New(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps LOG_LEVEL values onto slog levels. Unknown values mean info.
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

// WithRequest returns a logger scoped to one HTTP request.
func WithRequest(logger *slog.Logger, reqID, method, path string) *slog.Logger {
	return logger.With(
		"req_id", reqID,
		"method", method,
		"path", path,
	)
}

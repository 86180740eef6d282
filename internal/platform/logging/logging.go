// Package logging builds the service's slog logger and carries request-scoped
// child loggers through context.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "task toggled")
//
// Error logs in services name the operation and the entity ids and attach the
// full chain:
//
//	logger.ErrorContext(ctx, "toggle failed",
//	    slog.String("operation", "ToggleTask"),
//	    slog.String("user_id", owner),
//	    slog.Int64("task_id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler is wrapped with masq redaction, so credentials that reach a
// log attribute by accident are replaced with "[REDACTED]".
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// FormatText selects the key=value handler. Anything else logs JSON.
const FormatText = "text"

type loggerKey struct{}

// New creates the root logger writing to w. level accepts the slog names
// (debug, info, warn, error) in any case; unknown values log at info.
// Debug logging also records the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a config string to a slog.Level, falling back to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a context whose logger is the context logger enriched with
// args. Middleware uses it to attach identifiers such as user_id once per
// request.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

// Logging brackets every request with a start and a completion entry. The
// request-scoped logger it stores via logging.WithLogger carries the request
// and correlation ids, so handler and service logs can be joined to them.
//
// Completion is logged at Info below 400, Warn for 4xx and Error for 5xx.
// At Debug the (redacted) request headers are logged as well.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			scoped := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, scoped)

			route := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			}
			scoped.LogAttrs(ctx, slog.LevelInfo, "request started", route...)
			logHeaders(ctx, scoped, r.Header)

			rw := record(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			scoped.LogAttrs(ctx, completionLevel(rw.status), "request completed", append(route,
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			)...)
		})
	}
}

func logHeaders(ctx context.Context, logger *slog.Logger, h http.Header) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "request headers",
		slog.Attr{Key: "headers", Value: slog.GroupValue(RedactHeaders(h)...)},
	)
}

func completionLevel(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	if status >= http.StatusBadRequest {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

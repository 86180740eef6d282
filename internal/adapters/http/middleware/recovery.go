package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
)

// errPanic is what the client sees for a recovered panic. The panic value
// and stack only reach the log.
var errPanic = errors.New("handler panicked")

// Recovery turns a handler panic into a logged stack trace and a 500
// problem response. When the handler already sent its status, nothing more
// is written.
//
// http.ErrAbortHandler passes through untouched so net/http can drop the
// connection, which is how an aborted progress stream ends.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := record(w)
			defer func() {
				if v := recover(); v != nil {
					handlePanic(logger, rw, r, v)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func handlePanic(logger *slog.Logger, rw *statusRecorder, r *http.Request, v any) {
	if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
		panic(v)
	}

	ctx := r.Context()
	logger.LogAttrs(ctx, slog.LevelError, "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestIDFromContext(ctx)),
		slog.String("stack", string(debug.Stack())),
	)

	if !rw.sent {
		dto.WriteErrorResponse(rw, r, errPanic)
	}
}

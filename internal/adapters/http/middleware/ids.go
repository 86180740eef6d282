package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/httpclient"
)

// maxIDLen bounds caller-supplied ids so they stay log friendly.
const maxIDLen = 128

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id on ctx for logging and for the X-Request-ID
// header on dashboard API calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id on ctx for logging and for the
// X-Correlation-ID header on dashboard API calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation id, or "" outside a
// request.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID gives every request an X-Request-ID: the caller's when usable,
// otherwise a fresh UUID v4. The id is echoed on the response.
func RequestID() func(http.Handler) http.Handler {
	return idMiddleware(httpclient.HeaderRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID gives every request an X-Correlation-ID: the caller's when
// usable, otherwise the request id, so a browser session can be followed
// into the dashboard API logs. It must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return idMiddleware(httpclient.HeaderCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func idMiddleware(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !usableID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// usableID accepts 1 to maxIDLen bytes of visible ASCII.
func usableID(id string) bool {
	if id == "" || len(id) > maxIDLen {
		return false
	}
	for _, c := range []byte(id) {
		if c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}

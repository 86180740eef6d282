package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "bearer "

	// queryAccessToken carries the token for browser WebSocket clients, which
	// cannot set request headers.
	queryAccessToken = "access_token"
)

// TokenVerifier turns a raw bearer token into an identity.
type TokenVerifier interface {
	Verify(raw string) (*domain.Identity, error)
}

// Authenticate returns middleware that resolves the caller's identity.
// A request without a token continues anonymously; a request with an invalid
// token is rejected with 401. On success the identity is stored with
// domain.WithIdentity and the request logger gains a user_id attribute.
//
// Register after Logging so the enriched logger is the one in context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			id, err := verifier.Verify(raw)
			if err != nil {
				logging.FromContext(r.Context()).InfoContext(r.Context(), "rejected bearer token",
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := domain.WithIdentity(r.Context(), id)
			ctx = logging.With(ctx, slog.String("user_id", id.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns the token from the Authorization header, falling back
// to the access_token query parameter. ok is false when neither is present.
// A non-bearer Authorization header is returned as-is so that it fails
// verification instead of silently downgrading to anonymous.
func bearerToken(r *http.Request) (string, bool) {
	if h := strings.TrimSpace(r.Header.Get(headerAuthorization)); h != "" {
		if len(h) >= len(bearerPrefix) && strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(h[len(bearerPrefix):]), true
		}
		return h, true
	}
	if q := r.URL.Query().Get(queryAccessToken); q != "" {
		return q, true
	}
	return "", false
}

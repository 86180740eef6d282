package middleware

import (
	"net/http"

	appctx "github.com/Yukimura-Hanzo/konoha-project/internal/app/context"
)

// AppContext returns middleware that gives each request its own
// RequestContext: the per-request fetch memo and staged action list the task
// service uses to toggle with rollback. Services read it via appctx.From.
//
// Register after CorrelationID so the RequestContext captures the request
// and correlation IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

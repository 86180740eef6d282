package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/telemetry"
)

// Pipeline describes the dashboard's inbound middleware. Zero-valued optional
// fields drop their stage: a nil Verifier serves every caller anonymously and
// a zero RequestTimeout disables the deadline.
type Pipeline struct {
	Logger         *slog.Logger
	Metrics        *telemetry.Metrics
	Verifier       TokenVerifier
	RequestTimeout time.Duration
}

// Middlewares returns the stages in execution order, outermost first.
// Authenticate runs after Logging so rejected tokens are still logged with
// their request id.
func (p Pipeline) Middlewares() []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		Recovery(p.Logger),
		RequestID(),
		CorrelationID(),
		AppContext(),
		OpenTelemetry(p.Metrics),
		Logging(p.Logger),
	}
	if p.Verifier != nil {
		mws = append(mws, Authenticate(p.Verifier))
	}
	if p.RequestTimeout > 0 {
		mws = append(mws, Timeout(p.RequestTimeout))
	}
	return mws
}

// Wrap applies the pipeline to h.
func (p Pipeline) Wrap(h http.Handler) http.Handler {
	mws := p.Middlewares()
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Package health tracks the health of the dashboard's dependencies (the
// downstream dashboard API and Redis) for the readiness endpoint.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// DefaultCheckTimeout bounds a single probe when no option overrides it.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the deadline each probe runs under. Non-positive
// values leave probes bounded only by the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// Registry runs the registered probes for readiness. It is safe for
// concurrent use.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a checker. A later checker with the same name replaces the
// earlier one's result.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

func (r *Registry) snapshot() []ports.HealthChecker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ports.HealthChecker(nil), r.checkers...)
}

// CheckAll probes every checker in parallel and reports the outcome by name;
// a nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	checkers := r.snapshot()

	type outcome struct {
		name string
		err  error
	}
	outcomes := make([]outcome, len(checkers))

	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			outcomes[i] = outcome{name: c.Name(), err: r.probe(ctx, c)}
		})
	}
	wg.Wait()

	results := make(map[string]error, len(outcomes))
	for _, o := range outcomes {
		results[o.name] = o.err
	}
	return results
}

// probe runs one check under the registry deadline. A panicking checker is
// reported as unhealthy rather than taking the process down.
func (r *Registry) probe(ctx context.Context, c ports.HealthChecker) (err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("health check panicked: %v", v)
		}
	}()
	return c.HealthCheck(ctx)
}

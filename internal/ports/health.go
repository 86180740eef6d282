package ports

import "context"

// HealthChecker is a dependency that can say whether the service is ready
// to use it: the dashboard API client, the redis view store.
type HealthChecker interface {
	// Name keys the checker in the readiness report.
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give
	// up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker once. A nil entry means ready.
	CheckAll(ctx context.Context) map[string]error
}

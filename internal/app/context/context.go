// Package appctx provides request-scoped context for orchestration services.
//
// RequestContext wraps a context.Context with an in-memory cache for
// memoized downstream reads and a queue of staged writes that Commit runs in
// order, rolling back earlier writes when a later one fails:
//
//	rc := appctx.From(ctx)
//
//	// Read once per request.
//	tasks, err := appctx.GetOrFetch(rc, "tasks:u1", listTasks)
//
//	// Stage a write; reads of the same key now see the staged entity.
//	err = rc.Stage("task:u1:7", &updated, action)
//
//	// Execute the queue.
//	err = rc.Commit(ctx)
//
//	// Drop the stale list so the next read re-fetches.
//	rc.Invalidate("tasks:u1")
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

var (
	// ErrAlreadyCommitted is returned when Stage or Commit is called on a
	// RequestContext that has already been committed.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when Stage receives a nil action.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch is returned by GetOrFetch when a key was cached with a
	// different type than the one requested.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext is a request-scoped cache and write queue.
//
// The cache is meant for the sequential orchestration inside one request and
// is not safe for concurrent use. The write queue is guarded so fan-out
// workers may Stage concurrently.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	queue     []domain.Action
	committed bool
}

// cacheEntry stores the result of a fetch. Errors are cached too so a failing
// dependency is called at most once per request.
type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type requestContextKey struct{}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// From returns the RequestContext stored in ctx, creating a detached one when
// the caller is not behind the AppContext middleware (CLI, tests).
func From(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the cached value for key or calls fetchFn and caches its
// result. The same key must always be used with the same T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Invalidate drops the cached entries for keys so the next GetOrFetch
// re-fetches them.
func (rc *RequestContext) Invalidate(keys ...string) {
	for _, k := range keys {
		delete(rc.cache, k)
	}
}

// Stage caches entity under key and queues action for Commit. Reads of key
// return the staged entity until it is invalidated.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.cache[key] = cacheEntry{value: entity}
	rc.queue = append(rc.queue, action)
	return nil
}

// Pending returns the number of staged actions awaiting Commit.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.queue)
}

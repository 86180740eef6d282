package ports

import (
	"context"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/blog"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
)

// ViewStore persists blog view counters.
type ViewStore interface {
	// Increment adds one view to slug and returns the new count.
	Increment(ctx context.Context, slug string) (int64, error)

	// Counts returns every counter, ordered by slug.
	Counts(ctx context.Context) ([]blog.ViewCount, error)
}

// ProgressPublisher pushes freshly computed progression to live subscribers.
// Publishing is best effort: a slow or absent subscriber never fails the
// mutation that triggered it.
type ProgressPublisher interface {
	PublishProgress(ctx context.Context, ownerID string, state progression.State)
}

// ProgressSubscriber opens and closes live progression streams for an owner.
type ProgressSubscriber interface {
	// Subscribe returns a stream id and a channel receiving every state
	// published for owner. The channel is closed by Unsubscribe.
	Subscribe(owner string, buffer int) (uint64, <-chan progression.State)

	Unsubscribe(id uint64)
}

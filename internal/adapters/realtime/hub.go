// Package realtime fans freshly computed progression out to live
// subscribers, one stream per task owner.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ProgressPublisher  = (*Hub)(nil)
	_ ports.ProgressSubscriber = (*Hub)(nil)
)

// DefaultBuffer is used when Subscribe is called with a non-positive buffer.
const DefaultBuffer = 16

type subscription struct {
	owner string
	ch    chan progression.State
}

// Hub is an in-process pub/sub keyed by owner id. Publishing never blocks:
// when a subscriber's buffer is full the oldest pending state is discarded
// so the newest one is always delivered.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]subscription
	next   uint64
	logger *slog.Logger
}

// NewHub creates an empty hub. A nil logger discards output.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		subs:   make(map[uint64]subscription),
		logger: logger,
	}
}

// Subscribe registers a stream for owner. The returned channel is closed by
// Unsubscribe.
func (h *Hub) Subscribe(owner string, buffer int) (uint64, <-chan progression.State) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	id := h.next
	ch := make(chan progression.State, buffer)
	h.subs[id] = subscription{owner: owner, ch: ch}
	return id, ch
}

// Unsubscribe removes a stream and closes its channel. Unknown ids are
// ignored.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(sub.ch)
	}
}

// Close ends every stream. Subscribers see their channel closed and exit.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.ch)
	}
}

// Subscribers returns the number of open streams for owner.
func (h *Hub) Subscribers(owner string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, sub := range h.subs {
		if sub.owner == owner {
			n++
		}
	}
	return n
}

// PublishProgress delivers state to every stream of ownerID.
// Sends happen under the read lock so Unsubscribe cannot close a channel
// mid-send.
func (h *Hub) PublishProgress(ctx context.Context, ownerID string, state progression.State) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, sub := range h.subs {
		if sub.owner != ownerID {
			continue
		}
		if offer(sub.ch, state) {
			delivered++
		} else {
			h.logger.WarnContext(ctx, "progress update dropped",
				slog.String("user_id", ownerID),
			)
		}
	}

	if delivered > 0 {
		h.logger.DebugContext(ctx, "progress published",
			slog.String("user_id", ownerID),
			slog.Int("subscribers", delivered),
		)
	}
}

// offer is a non-blocking send that evicts the oldest buffered value once.
func offer(ch chan progression.State, state progression.State) bool {
	select {
	case ch <- state:
		return true
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- state:
		return true
	default:
		return false
	}
}

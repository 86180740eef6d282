package realtime_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/realtime"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
)

func TestHub_SubscribePublishUnsubscribe(t *testing.T) {
	t.Parallel()

	h := realtime.NewHub(nil)
	id, ch := h.Subscribe("naruto", 1)

	want := progression.FromTotal(400)
	h.PublishProgress(context.Background(), "naruto", want)

	got := <-ch
	assert.Equal(t, want, got)

	h.Unsubscribe(id)
	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after Unsubscribe")
	assert.Equal(t, 0, h.Subscribers("naruto"))
}

func TestHub_PublishOnlyReachesOwner(t *testing.T) {
	t.Parallel()

	h := realtime.NewHub(nil)
	_, narutoCh := h.Subscribe("naruto", 1)
	_, sasukeCh := h.Subscribe("sasuke", 1)

	h.PublishProgress(context.Background(), "naruto", progression.FromTotal(150))

	require.Len(t, narutoCh, 1)
	assert.Empty(t, sasukeCh)
}

func TestHub_FullBufferKeepsLatest(t *testing.T) {
	t.Parallel()

	h := realtime.NewHub(nil)
	_, ch := h.Subscribe("naruto", 1)

	h.PublishProgress(context.Background(), "naruto", progression.FromTotal(10))
	h.PublishProgress(context.Background(), "naruto", progression.FromTotal(20))
	h.PublishProgress(context.Background(), "naruto", progression.FromTotal(30))

	require.Len(t, ch, 1)
	assert.Equal(t, int64(30), (<-ch).TotalXP)
}

func TestHub_DefaultBuffer(t *testing.T) {
	t.Parallel()

	h := realtime.NewHub(nil)
	_, ch := h.Subscribe("naruto", 0)

	assert.Equal(t, realtime.DefaultBuffer, cap(ch))
}

func TestHub_UnsubscribeUnknownIsNoop(t *testing.T) {
	t.Parallel()

	h := realtime.NewHub(nil)
	id, _ := h.Subscribe("naruto", 1)

	h.Unsubscribe(id)
	h.Unsubscribe(id)
	h.Unsubscribe(999)
}

func TestHub_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	t.Parallel()

	h := realtime.NewHub(nil)
	ids := make([]uint64, 20)
	for i := range ids {
		ids[i], _ = h.Subscribe("naruto", 1)
	}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			h.PublishProgress(context.Background(), "naruto", progression.FromTotal(int64(i)))
		})
	}
	for _, id := range ids {
		wg.Go(func() {
			h.Unsubscribe(id)
		})
	}
	wg.Wait()

	assert.Equal(t, 0, h.Subscribers("naruto"))
}

func TestHub_CloseEndsAllStreams(t *testing.T) {
	t.Parallel()

	h := realtime.NewHub(nil)
	id, a := h.Subscribe("naruto", 1)
	_, b := h.Subscribe("sasuke", 1)

	h.Close()

	_, okA := <-a
	_, okB := <-b
	assert.False(t, okA)
	assert.False(t, okB)
	assert.Equal(t, 0, h.Subscribers("naruto"))

	h.Unsubscribe(id)
	h.PublishProgress(context.Background(), "naruto", progression.Initial)
}

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/handlers"
	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/realtime"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/config"
	"github.com/Yukimura-Hanzo/konoha-project/mocks"
)

var testRealtimeConfig = &config.RealtimeConfig{
	BufferSize:   4,
	WriteTimeout: time.Second,
	PingInterval: time.Second,
}

// streamServer serves the stream handler behind a stub that injects the
// test identity, standing in for the Authenticate middleware.
func streamServer(t *testing.T, h *handlers.StreamHandler) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.StreamProgress(w, authed(r))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialStream(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readProgress(t *testing.T, conn *websocket.Conn) dto.ProgressResponse {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got dto.ProgressResponse
	require.NoError(t, conn.ReadJSON(&got))
	return got
}

func waitForSubscriber(t *testing.T, hub *realtime.Hub) {
	t.Helper()

	require.Eventually(t, func() bool {
		return hub.Subscribers(testUser) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestStreamProgress_SendsSnapshotThenUpdates(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	hub := realtime.NewHub(nil)
	svc.EXPECT().Progress(mock.Anything, testIdentity).Return(progression.FromTotal(149), nil)

	srv := streamServer(t, handlers.NewStreamHandler(svc, hub, testRealtimeConfig))
	conn := dialStream(t, srv)

	first := readProgress(t, conn)
	assert.Equal(t, int64(149), first.TotalXP)
	assert.Equal(t, int64(1), first.Level)

	waitForSubscriber(t, hub)
	hub.PublishProgress(t.Context(), testUser, progression.FromTotal(400))

	second := readProgress(t, conn)
	assert.Equal(t, int64(3), second.Level)
	assert.InDelta(t, 20.0, second.ProgressPercent, 1e-9)
}

func TestStreamProgress_IgnoresOtherUsers(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	hub := realtime.NewHub(nil)
	svc.EXPECT().Progress(mock.Anything, testIdentity).Return(progression.Initial, nil)

	srv := streamServer(t, handlers.NewStreamHandler(svc, hub, testRealtimeConfig))
	conn := dialStream(t, srv)
	_ = readProgress(t, conn)
	waitForSubscriber(t, hub)

	hub.PublishProgress(t.Context(), "sasuke", progression.FromTotal(1000))
	hub.PublishProgress(t.Context(), testUser, progression.FromTotal(150))

	got := readProgress(t, conn)
	assert.Equal(t, int64(150), got.TotalXP)
}

func TestStreamProgress_UnsubscribesOnClose(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	hub := realtime.NewHub(nil)
	svc.EXPECT().Progress(mock.Anything, testIdentity).Return(progression.Initial, nil)

	srv := streamServer(t, handlers.NewStreamHandler(svc, hub, testRealtimeConfig))
	conn := dialStream(t, srv)
	_ = readProgress(t, conn)
	waitForSubscriber(t, hub)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.Subscribers(testUser) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStreamProgress_AnonymousIsUnauthorized(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	hub := realtime.NewHub(nil)
	h := handlers.NewStreamHandler(svc, hub, testRealtimeConfig)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progress/stream", nil)
	h.StreamProgress(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, 0, hub.Subscribers(testUser))
}

func TestStreamProgress_SnapshotErrorBeforeUpgrade(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	hub := realtime.NewHub(nil)
	svc.EXPECT().Progress(mock.Anything, testIdentity).Return(progression.State{}, domain.ErrUnavailable)
	h := handlers.NewStreamHandler(svc, hub, testRealtimeConfig)

	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/progress/stream", nil))
	h.StreamProgress(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
	assert.Equal(t, 0, hub.Subscribers(testUser))
}

func TestStreamProgress_SubscribesWithConfiguredBuffer(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	svc.EXPECT().Progress(mock.Anything, testIdentity).Return(progression.State{}, domain.ErrNotFound)

	updates := make(chan progression.State)
	subs := mocks.NewMockProgressSubscriber(t)
	subs.EXPECT().Subscribe(testUser, testRealtimeConfig.BufferSize).Return(uint64(7), updates)
	subs.EXPECT().Unsubscribe(uint64(7)).Return()

	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/progress/stream", nil))
	handlers.NewStreamHandler(svc, subs, testRealtimeConfig).StreamProgress(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

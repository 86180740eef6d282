package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/config"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

const (
	defaultStreamWriteTimeout = 5 * time.Second
	defaultStreamPingInterval = 30 * time.Second

	// maxStreamReadBytes bounds client frames; the stream is server-push only.
	maxStreamReadBytes = 512
)

// StreamHandler pushes progression updates over a WebSocket.
type StreamHandler struct {
	svc          ports.TaskService
	subs         ports.ProgressSubscriber
	upgrader     websocket.Upgrader
	buffer       int
	writeTimeout time.Duration
	pingInterval time.Duration
}

// NewStreamHandler creates a StreamHandler. Zero durations in cfg fall back
// to 5s writes and 30s pings.
func NewStreamHandler(svc ports.TaskService, subs ports.ProgressSubscriber, cfg *config.RealtimeConfig) *StreamHandler {
	h := &StreamHandler{
		svc:          svc,
		subs:         subs,
		buffer:       cfg.BufferSize,
		writeTimeout: cfg.WriteTimeout,
		pingInterval: cfg.PingInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if h.writeTimeout <= 0 {
		h.writeTimeout = defaultStreamWriteTimeout
	}
	if h.pingInterval <= 0 {
		h.pingInterval = defaultStreamPingInterval
	}
	return h
}

// StreamProgress handles GET /api/v1/progress/stream. The caller must be
// authenticated. The current progression is sent immediately after the
// upgrade, then again after every mutation of the caller's tasks.
func (h *StreamHandler) StreamProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := identity(r)
	if id == nil {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthorized)
		return
	}

	// Subscribe before reading the snapshot so no update falls in between.
	subID, updates := h.subs.Subscribe(id.UserID, h.buffer)
	defer h.subs.Unsubscribe(subID)

	initial, err := h.svc.Progress(ctx, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	logger := logging.FromContext(ctx)
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		logger.InfoContext(ctx, "progress stream upgrade failed", slog.Any("error", err))
		return
	}
	defer func() { _ = conn.Close() }()

	logger.InfoContext(ctx, "progress stream opened")
	defer logger.InfoContext(ctx, "progress stream closed")

	closed := h.readLoop(conn)

	if err := h.send(conn, dto.ToProgressResponse(initial)); err != nil {
		return
	}

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			if err := h.send(conn, dto.ToProgressResponse(state)); err != nil {
				logger.DebugContext(ctx, "progress stream write failed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (h *StreamHandler) send(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}

// readLoop drains client frames so control messages are processed, and
// closes the returned channel once the peer goes away or stops answering
// pings.
func (h *StreamHandler) readLoop(conn *websocket.Conn) <-chan struct{} {
	closed := make(chan struct{})
	pongWait := 2 * h.pingInterval

	conn.SetReadLimit(maxStreamReadBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()
	return closed
}

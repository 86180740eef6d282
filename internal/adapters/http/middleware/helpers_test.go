package middleware_test

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/config"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/httpclient"
)

// testLogger writes text records at debug level so header dumps are visible.
func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestClient is a single-attempt dashboard API client for baseURL.
func newTestClient(baseURL string) *httpclient.Client {
	return httpclient.New(&config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1,
		},
	}, "dashboard-api", nil, nil)
}

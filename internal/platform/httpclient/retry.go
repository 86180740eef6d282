package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/config"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// retryPolicy decides how often and how long to wait between attempts.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	ceiling     time.Duration
	multiplier  float64
	jitter      func() float64 // uniform in [0, 1)
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		ceiling:     cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
		jitter:      rand.Float64,
	}
}

// attempts returns how many times a request with method may be sent.
func (p retryPolicy) attempts(method string) int {
	if !idempotent(method) {
		return min(p.maxAttempts, 1)
	}
	return p.maxAttempts
}

// backoff returns the jittered exponential delay before retry number n
// (n = 1 is the first retry), capped at the ceiling before jitter.
func (p retryPolicy) backoff(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = math.Min(d, float64(p.ceiling))
	d += d * jitterFraction * (2*p.jitter() - 1)
	return time.Duration(math.Max(d, 0))
}

// delay is backoff stretched to the server's Retry-After hint, never past
// the ceiling.
func (p retryPolicy) delay(n int, resp *http.Response) time.Duration {
	d := p.backoff(n)
	if hint, ok := retryAfter(resp, time.Now()); ok && hint > d {
		d = min(hint, p.ceiling)
	}
	return d
}

// retryAfter reads a Retry-After header given in seconds or as an HTTP date.
func retryAfter(resp *http.Response, now time.Time) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second, secs > 0
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d, true
		}
	}
	return 0, false
}

// send runs the retry loop for one request.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	attempts := c.retry.attempts(req.Method)
	if attempts < 1 {
		return nil, fmt.Errorf("%s: retry.max_attempts must be >= 1, got %d", c.name, attempts)
	}
	if err := makeReplayable(req); err != nil {
		return nil, err
	}

	for n := 1; ; n++ {
		resp, err := c.http.Do(req)
		if !shouldRetry(resp, err) {
			return resp, err
		}
		if n == attempts {
			if err != nil {
				return nil, err
			}
			return resp, fmt.Errorf("%s: HTTP %d after %d attempts", c.name, resp.StatusCode, n)
		}

		wait := c.retry.delay(n, resp)
		c.logRetry(ctx, req, n+1, attempts, wait, resp, err)
		if resp != nil {
			discard(resp)
		}

		if err := sleep(ctx, wait); err != nil {
			return nil, err
		}
		if err := rewind(req); err != nil {
			return nil, err
		}
	}
}

func (c *Client) logRetry(ctx context.Context, req *http.Request, next, attempts int, wait time.Duration, resp *http.Response, err error) {
	attrs := []any{
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.name),
		slog.Int("attempt", next),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", wait),
	}
	if resp != nil {
		attrs = append(attrs, slog.Int("status", resp.StatusCode))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	logging.FromContext(ctx).WarnContext(ctx, "retrying downstream request", attrs...)
}

// shouldRetry reports whether the outcome of one attempt is worth repeating.
// Cancellation and deadlines belong to the caller and are final.
func shouldRetry(resp *http.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// makeReplayable ensures req.GetBody can recreate the body for a retry.
// Bodies built from bytes or strings already can; anything else is buffered.
func makeReplayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}
	raw, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("buffering request body: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(raw)), nil
	}
	req.Body, _ = req.GetBody()
	req.ContentLength = int64(len(raw))
	return nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// discard drains resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

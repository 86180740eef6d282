// Package httpclient is the resilient HTTP client the anti-corruption layer
// uses to reach the downstream dashboard API. Every call passes through
//
//	circuit breaker, rate limiter, metadata headers, client span, retry loop
//
// in that order. Idempotent methods are retried on network errors, 429 and
// 5xx; POST is sent once so a flaky downstream cannot create a task twice.
//
//	client := httpclient.New(&cfg.Client, "dashboard-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware attaches the ids forwarded on every call:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/config"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/telemetry"
)

// Headers forwarded to the downstream API.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

const tracerName = "github.com/Yukimura-Hanzo/konoha-project/internal/platform/httpclient"

type metadataKey struct{}

// metadata is the request-scoped identification copied onto outbound calls.
type metadata struct {
	requestID     string
	correlationID string
}

func metadataFrom(ctx context.Context) metadata {
	md, _ := ctx.Value(metadataKey{}).(metadata)
	return md
}

func (md metadata) apply(h http.Header) {
	if md.requestID != "" {
		h.Set(HeaderRequestID, md.requestID)
	}
	if md.correlationID != "" {
		h.Set(HeaderCorrelationID, md.correlationID)
	}
}

// WithRequestID returns ctx carrying id for the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	md := metadataFrom(ctx)
	md.requestID = id
	return context.WithValue(ctx, metadataKey{}, md)
}

// WithCorrelationID returns ctx carrying id for the X-Correlation-ID header.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	md := metadataFrom(ctx)
	md.correlationID = id
	return context.WithValue(ctx, metadataKey{}, md)
}

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil when rate limiting is disabled
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Client for the service called name. name labels traces,
// metrics, breaker logs and the readiness entry. metrics may be nil.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		IsSuccessful:  countsAsSuccess,
		OnStateChange: c.breakerChanged,
	})

	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(cfg.RateLimit.BurstSize, 1))
	}

	return c
}

// Do sends req. On success the caller owns resp.Body. When retries run out
// on a retryable status both resp and err are non-nil so the caller can
// translate the downstream problem body. Breaker rejections, rate limit
// failures and transport errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s: waiting for rate limiter: %w", c.name, err)
			}
		}

		metadataFrom(ctx).apply(req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, resp, err)
		return resp, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the downstream root URL requests are built against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name identifies the downstream in readiness reports.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reports the breaker state without touching the network.
// Half-open means the downstream is being probed after a failure streak.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded, circuit half-open", c.name)
	default:
		return fmt.Errorf("%s: failing, circuit %s", c.name, state)
	}
}

// countsAsSuccess keeps callers that hang up from tripping the breaker.
func countsAsSuccess(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

func (c *Client) breakerChanged(name string, from, to gobreaker.State) {
	level := slog.LevelWarn
	if to == gobreaker.StateClosed {
		level = slog.LevelInfo
	}
	c.logger.Log(context.Background(), level, "circuit breaker state change",
		slog.String("breaker", name),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.URL.Path),
			attribute.String("peer.service", c.name),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record emits the client request metrics. It runs outside the breaker so
// rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := outcome(resp, err)
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// outcome classifies a call for the result metric label.
func outcome(resp *http.Response, err error) (status int, result string) {
	if resp != nil {
		status = resp.StatusCode
	}
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return status, "circuit_open"
	case errors.Is(err, context.Canceled):
		return status, "canceled"
	case err != nil, resp == nil, status >= http.StatusBadRequest:
		return status, "error"
	default:
		return status, "success"
	}
}

func clampUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(min(int64(v), math.MaxUint32))
}

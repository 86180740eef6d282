package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// meterName scopes every instrument to the module path.
const meterName = "github.com/Yukimura-Hanzo/konoha-project"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrService     = attribute.Key("service.name")
	AttrEntity      = attribute.Key("dashboard.entity")
	AttrOperation   = attribute.Key("dashboard.operation")
	AttrLevel       = attribute.Key("dashboard.level")
)

// Compile-time interface check.
var _ ports.DashboardMetrics = (*Metrics)(nil)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// Dashboard domain counters.
	Mutations metric.Int64Counter
	LevelUps  metric.Int64Counter

	service attribute.KeyValue
}

// NewMetrics creates all metric instruments from mp. serviceName is attached
// to the domain counters so several deployments can share one backend.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterName)

	serverDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	serverTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	clientDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of outgoing HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.client.request.duration: %w", err)
	}

	clientTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of outgoing HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.client.request.total: %w", err)
	}

	mutations, err := meter.Int64Counter(
		"dashboard.task.mutations",
		metric.WithDescription("Successful dashboard mutations by entity and operation"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dashboard.task.mutations: %w", err)
	}

	levelUps, err := meter.Int64Counter(
		"dashboard.level.ups",
		metric.WithDescription("Level increases observed after a mutation"),
		metric.WithUnit("{level}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dashboard.level.ups: %w", err)
	}

	return &Metrics{
		ServerRequestDuration: serverDuration,
		ServerRequestTotal:    serverTotal,
		ClientRequestDuration: clientDuration,
		ClientRequestTotal:    clientTotal,
		Mutations:             mutations,
		LevelUps:              levelUps,
		service:               AttrService.String(serviceName),
	}, nil
}

// RecordMutation counts one successful mutation of entity ("task", "budget",
// "view") by operation ("create", "toggle", ...).
func (m *Metrics) RecordMutation(ctx context.Context, entity, operation string) {
	m.Mutations.Add(ctx, 1, metric.WithAttributes(
		m.service,
		AttrEntity.String(entity),
		AttrOperation.String(operation),
	))
}

// RecordLevelUp counts a transition into level.
func (m *Metrics) RecordLevelUp(ctx context.Context, level int64) {
	m.LevelUps.Add(ctx, 1, metric.WithAttributes(
		m.service,
		AttrLevel.Int64(level),
	))
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/middleware"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/telemetry"
)

// Tests that install a global tracer provider do not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

// routed mounts status-returning handlers on a chi router behind the
// OpenTelemetry middleware.
func routed(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	reply := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(status) }
	r.Post("/api/v1/tasks/{id}/toggle", reply)
	r.Get("/api/v1/progress/stream", reply)
	return r
}

func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter) tracetest.SpanStub {
	t.Helper()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	return spans[0]
}

func spanAttrs(span tracetest.SpanStub) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value, len(span.Attributes))
	for _, kv := range span.Attributes {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestOpenTelemetry_SpanNamedByRoute(t *testing.T) {
	exporter := installTracer(t)

	routed(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPost, "/api/v1/tasks/42/toggle", http.NoBody))

	span := onlySpan(t, exporter)
	assert.Equal(t, "POST /api/v1/tasks/{id}/toggle", span.Name)

	attrs := spanAttrs(span)
	assert.Equal(t, "POST", attrs["http.request.method"].AsString())
	assert.Equal(t, "/api/v1/tasks/{id}/toggle", attrs["http.route"].AsString())
	assert.Equal(t, int64(http.StatusOK), attrs["http.response.status_code"].AsInt64())
	assert.NotEqual(t, codes.Error, span.Status.Code)
}

func TestOpenTelemetry_UnroutedKeepsPath(t *testing.T) {
	exporter := installTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	span := onlySpan(t, exporter)
	assert.Equal(t, "GET /nowhere", span.Name)
	assert.NotContains(t, spanAttrs(span), attribute.Key("http.route"))
}

func TestOpenTelemetry_ServerErrorMarksSpan(t *testing.T) {
	exporter := installTracer(t)

	routed(nil, http.StatusBadGateway).ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPost, "/api/v1/tasks/1/toggle", http.NoBody))

	span := onlySpan(t, exporter)
	assert.Equal(t, codes.Error, span.Status.Code)
	assert.Equal(t, "Bad Gateway", span.Status.Description)
}

func TestOpenTelemetry_ContinuesCallerTrace(t *testing.T) {
	exporter := installTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/7/toggle", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	routed(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	span := onlySpan(t, exporter)
	assert.Equal(t, traceID, span.SpanContext.TraceID().String())
	assert.True(t, span.Parent.IsRemote())
}

func TestOpenTelemetry_MasksAccessToken(t *testing.T) {
	exporter := installTracer(t)

	routed(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/api/v1/progress/stream?access_token=eyJhbGciOiJIUzI1NiJ9.e30.sig&since=1", http.NoBody))

	full := spanAttrs(onlySpan(t, exporter))["url.full"].AsString()
	assert.NotContains(t, full, "eyJhbGciOiJIUzI1NiJ9")
	assert.Contains(t, full, "access_token=%5BREDACTED%5D")
	assert.Contains(t, full, "since=1")
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	metrics, err := telemetry.NewMetrics(mp, "konoha-test")
	require.NoError(t, err)

	routed(metrics, http.StatusNotFound).ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPost, "/api/v1/tasks/404/toggle", http.NoBody))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))

	var total *metricdata.DataPoint[int64]
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "http.server.request.total" {
				require.Len(t, sum.DataPoints, 1)
				total = &sum.DataPoints[0]
			}
		}
	}
	require.NotNil(t, total)
	assert.Equal(t, int64(1), total.Value)

	route, _ := total.Attributes.Value(telemetry.AttrHTTPRoute)
	result, _ := total.Attributes.Value(telemetry.AttrResult)
	assert.Equal(t, "/api/v1/tasks/{id}/toggle", route.AsString())
	assert.Equal(t, "error", result.AsString())
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		routed(nil, http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tasks/1/toggle", http.NoBody))
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

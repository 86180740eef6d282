package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/handlers"
	"github.com/Yukimura-Hanzo/konoha-project/mocks"
)

type probeReport struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type readinessBody struct {
	Status string                 `json:"status"`
	Checks map[string]probeReport `json:"checks"`
}

func TestHealthHandler_Liveness(t *testing.T) {
	t.Parallel()

	// Liveness never consults the registry; the mock fails on any call.
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeJSON[map[string]string](t, rec))
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]probeReport
	}{
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]probeReport{},
		},
		{
			name:       "all healthy",
			results:    map[string]error{"dashboard-api": nil, "redis": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]probeReport{
				"dashboard-api": {Status: "ok"},
				"redis":         {Status: "ok"},
			},
		},
		{
			name:       "redis down",
			results:    map[string]error{"dashboard-api": nil, "redis": errors.New("connection refused")},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]probeReport{
				"dashboard-api": {Status: "ok"},
				"redis":         {Status: "down", Error: "connection refused"},
			},
		},
		{
			name: "everything down",
			results: map[string]error{
				"dashboard-api": errors.New("circuit breaker is open"),
				"redis":         errors.New("i/o timeout"),
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]probeReport{
				"dashboard-api": {Status: "down", Error: "circuit breaker is open"},
				"redis":         {Status: "down", Error: "i/o timeout"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).
				Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			body := decodeJSON[readinessBody](t, rec)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantChecks, body.Checks)
		})
	}
}

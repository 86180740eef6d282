package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// componentStatus is one entry of the readiness report.
type componentStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// readinessResponse is the body of GET /health/ready.
type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]componentStatus `json:"checks"`
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 when the dashboard API
// and the view store both answer, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{
		Status: statusReady,
		Checks: make(map[string]componentStatus, len(results)),
	}
	var failing []string
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = componentStatus{Status: statusDown, Error: err.Error()}
			failing = append(failing, name)
			continue
		}
		resp.Checks[name] = componentStatus{Status: statusOK}
	}

	code := http.StatusOK
	if len(failing) > 0 {
		slices.Sort(failing)
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("components", failing),
		)
	}

	writeJSON(w, r, code, resp)
}

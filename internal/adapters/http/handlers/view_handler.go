package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// ViewHandler handles the public blog view counter endpoints.
type ViewHandler struct {
	svc ports.ViewService
}

// NewViewHandler creates a new ViewHandler with the given service port.
func NewViewHandler(svc ports.ViewService) *ViewHandler {
	return &ViewHandler{svc: svc}
}

// RecordView handles POST /api/v1/views/{slug}.
func (h *ViewHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.RecordView(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToViewCountResponse(count))
}

// ListViews handles GET /api/v1/views.
func (h *ViewHandler) ListViews(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Views(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToViewsResponse(report))
}

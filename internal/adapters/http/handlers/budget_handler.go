package handlers

import (
	"net/http"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// BudgetHandler handles HTTP requests for the budget ledger.
type BudgetHandler struct {
	svc ports.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler with the given service port.
func NewBudgetHandler(svc ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{svc: svc}
}

// GetLedger handles GET /api/v1/budget.
func (h *BudgetHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.svc.Ledger(r.Context(), identity(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToLedgerResponse(ledger))
}

// AddEntry handles POST /api/v1/budget.
func (h *BudgetHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ledger, err := h.svc.AddEntry(r.Context(), identity(r), req.ToEntry())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToLedgerResponse(ledger))
}

// EditEntry handles PATCH /api/v1/budget/{id}.
func (h *BudgetHandler) EditEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ledger, err := h.svc.EditEntry(r.Context(), identity(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToLedgerResponse(ledger))
}

// DeleteEntry handles DELETE /api/v1/budget/{id}.
func (h *BudgetHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ledger, err := h.svc.DeleteEntry(r.Context(), identity(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToLedgerResponse(ledger))
}

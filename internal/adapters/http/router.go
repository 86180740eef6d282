// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/handlers"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Health *handlers.HealthHandler
	Tasks  *handlers.TaskHandler
	Budget *handlers.BudgetHandler
	Views  *handlers.ViewHandler
	Stream *handlers.StreamHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes answer
// with a problem+json 404.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s: %w", req.URL.Path, domain.ErrNotFound))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Task board. The static /complete route wins over /{id}.
		r.Get("/tasks", h.Tasks.ListTasks)
		r.Post("/tasks", h.Tasks.CreateTask)
		r.Post("/tasks/complete", h.Tasks.CompleteTasks)
		r.Patch("/tasks/{id}", h.Tasks.EditTask)
		r.Delete("/tasks/{id}", h.Tasks.DeleteTask)
		r.Post("/tasks/{id}/toggle", h.Tasks.ToggleTask)

		// Progression.
		r.Get("/progress", h.Tasks.GetProgress)
		r.Get("/progress/stream", h.Stream.StreamProgress)

		// Budget ledger.
		r.Get("/budget", h.Budget.GetLedger)
		r.Post("/budget", h.Budget.AddEntry)
		r.Patch("/budget/{id}", h.Budget.EditEntry)
		r.Delete("/budget/{id}", h.Budget.DeleteEntry)

		// Blog views (public).
		r.Get("/views", h.Views.ListViews)
		r.Post("/views/{slug}", h.Views.RecordView)
	})

	return r
}

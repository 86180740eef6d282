package handlers

import (
	"net/http"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// TaskHandler handles HTTP requests for the task board and its progression.
// Every mutation responds with the refreshed board.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := taskFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	board, err := h.svc.Board(r.Context(), identity(r), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(board))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	board, err := h.svc.CreateTask(r.Context(), identity(r), req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBoardResponse(board))
}

// EditTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) EditTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	board, err := h.svc.EditTask(r.Context(), identity(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(board))
}

// ToggleTask handles POST /api/v1/tasks/{id}/toggle.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	board, err := h.svc.ToggleTask(r.Context(), identity(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(board))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	board, err := h.svc.DeleteTask(r.Context(), identity(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(board))
}

// CompleteTasks handles POST /api/v1/tasks/complete. Partial failures are
// reported in the body with 200; only request-level errors change the status.
func (h *TaskHandler) CompleteTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteTasksRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.CompleteTasks(r.Context(), identity(r), req.TaskIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBulkCompleteResponse(result))
}

// GetProgress handles GET /api/v1/progress.
func (h *TaskHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Progress(r.Context(), identity(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProgressResponse(state))
}

// Package task translates the downstream dashboard API's task resources.
package task

// TaskDTO matches the downstream Task schema. Timestamps are RFC 3339.
type TaskDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	XP          int64   `json:"xp"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// CreateTaskRequestDTO matches the downstream CreateTaskRequest schema.
type CreateTaskRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	XP          int64  `json:"xp"`
}

// UpdateTaskRequestDTO matches the downstream UpdateTaskRequest schema.
// PUT replaces the task, so every field is sent.
type UpdateTaskRequestDTO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	XP          int64   `json:"xp"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at"`
}

// TaskListResponseDTO matches the downstream TaskListResponse schema.
type TaskListResponseDTO struct {
	Tasks []TaskDTO `json:"tasks"`
	Count int64     `json:"count"`
}

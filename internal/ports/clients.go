package ports

import (
	"context"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/budget"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
)

// TaskClient defines the client port for downstream task storage.
// Implemented by the ACL adapter; called by the application layer.
// Every call is scoped to a single owner: the downstream API never returns
// another user's tasks.
type TaskClient interface {
	// ListTasks returns the owner's tasks matching the filter.
	// Pass a zero-value Filter to list all tasks.
	ListTasks(ctx context.Context, ownerID string, filter task.Filter) ([]task.Task, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, ownerID string, id int64) (*task.Task, error)

	// CreateTask stores a new task and returns it with server-assigned fields.
	CreateTask(ctx context.Context, ownerID string, t *task.Task) (*task.Task, error)

	// UpdateTask replaces an existing task and returns the stored entity.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, ownerID string, id int64, t *task.Task) (*task.Task, error)

	// DeleteTask removes a task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, ownerID string, id int64) error
}

// BudgetClient defines the client port for downstream budget ledger storage.
type BudgetClient interface {
	ListEntries(ctx context.Context, ownerID string) ([]budget.Entry, error)

	// GetEntry returns domain.ErrNotFound if the entry does not exist.
	GetEntry(ctx context.Context, ownerID string, id int64) (*budget.Entry, error)

	CreateEntry(ctx context.Context, ownerID string, e *budget.Entry) (*budget.Entry, error)

	UpdateEntry(ctx context.Context, ownerID string, id int64, e *budget.Entry) (*budget.Entry, error)

	DeleteEntry(ctx context.Context, ownerID string, id int64) error
}

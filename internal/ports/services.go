package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/blog"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/budget"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
)

// TaskService defines the service port for the task board.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// A nil identity is anonymous: reads return an empty board and mutations
// return domain.ErrUnauthorized. Every mutation re-fetches the task list and
// recomputes progression before returning.
type TaskService interface {
	// Board returns the owner's tasks matching filter together with the
	// progression computed over all of their tasks.
	Board(ctx context.Context, id *domain.Identity, filter task.Filter) (*Board, error)

	// Progress returns only the progression state.
	Progress(ctx context.Context, id *domain.Identity) (progression.State, error)

	// CreateTask adds an open task with a rolled XP reward.
	// Returns domain.ErrValidation if the draft fails validation.
	CreateTask(ctx context.Context, id *domain.Identity, draft TaskDraft) (*Board, error)

	// EditTask changes the title or description of a task. XP and completion
	// are not editable here.
	// Returns domain.ErrNotFound if the task does not exist.
	EditTask(ctx context.Context, id *domain.Identity, taskID int64, patch TaskPatch) (*Board, error)

	// ToggleTask flips a task between open and completed.
	// Returns domain.ErrNotFound if the task does not exist.
	ToggleTask(ctx context.Context, id *domain.Identity, taskID int64) (*Board, error)

	// DeleteTask removes a task.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id *domain.Identity, taskID int64) (*Board, error)

	// CompleteTasks marks several tasks completed concurrently. Uses partial
	// success semantics: each completion succeeds or fails independently and
	// failures are collected in BulkCompleteResult.Errors. A hard error is
	// returned only for request-level failures.
	CompleteTasks(ctx context.Context, id *domain.Identity, taskIDs []int64) (*BulkCompleteResult, error)
}

// Board is the task list view with its derived projection.
type Board struct {
	Tasks    []task.Task
	Progress progression.State
	Stats    task.Stats
}

// TaskDraft carries the user-supplied fields of a new task.
type TaskDraft struct {
	Title       string
	Description string
}

// TaskPatch carries optional task edits. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
}

// BulkCompleteError records a single failed completion within a bulk operation.
type BulkCompleteError struct {
	TaskID int64
	Err    error
}

// BulkCompleteResult holds the outcomes of a bulk completion.
type BulkCompleteResult struct {
	Completed []int64
	Errors    []BulkCompleteError
	Board     *Board
}

// BudgetService defines the service port for the budget ledger.
// Identity rules match TaskService.
type BudgetService interface {
	Ledger(ctx context.Context, id *domain.Identity) (*Ledger, error)

	// AddEntry records a new entry. The amount sign is normalized from Kind.
	AddEntry(ctx context.Context, id *domain.Identity, entry *budget.Entry) (*Ledger, error)

	// EditEntry applies patch to an existing entry.
	// Returns domain.ErrNotFound if the entry does not exist.
	EditEntry(ctx context.Context, id *domain.Identity, entryID int64, patch EntryPatch) (*Ledger, error)

	DeleteEntry(ctx context.Context, id *domain.Identity, entryID int64) (*Ledger, error)
}

// Ledger is the entry list with its aggregates.
type Ledger struct {
	Entries []budget.Entry
	Summary budget.Summary
}

// EntryPatch carries optional entry edits. Nil fields are left unchanged.
type EntryPatch struct {
	Title  *string
	Amount *decimal.Decimal
	Kind   *budget.Kind
}

// ViewService defines the service port for blog view counting.
// Views are public: no identity is required.
type ViewService interface {
	// RecordView counts one view of slug and returns the updated counter.
	// Returns domain.ErrValidation for malformed slugs.
	RecordView(ctx context.Context, slug string) (*blog.ViewCount, error)

	Views(ctx context.Context) (*ViewReport, error)
}

// ViewReport lists every counter and the site total.
type ViewReport struct {
	Counts []blog.ViewCount
	Total  int64
}

package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

// Task is a unit of work that awards XP once completed.
type Task struct {
	ID          int64
	Title       string
	Description string
	XP          int64
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.XP < 0 {
		fields["xp"] = fmt.Sprintf("must not be negative, got %d", t.XP)
	}
	if !t.Completed && t.CompletedAt != nil {
		fields["completed_at"] = "must be empty while the task is open"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ClampXP lifts a negative stored reward to zero. Progression already counts
// such rewards as zero; clamping on read keeps a legacy record editable.
func (t *Task) ClampXP() {
	t.XP = max(t.XP, 0)
}

// MarkCompleted flips the task to done and stamps CompletedAt.
func (t *Task) MarkCompleted(now time.Time) {
	t.Completed = true
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// Reopen flips the task back to open and clears CompletedAt.
func (t *Task) Reopen(now time.Time) {
	t.Completed = false
	t.CompletedAt = nil
	t.UpdatedAt = now
}

// Toggle inverts the completion state.
func (t *Task) Toggle(now time.Time) {
	if t.Completed {
		t.Reopen(now)
		return
	}
	t.MarkCompleted(now)
}

// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/blog"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/budget"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// moneyPlaces is the number of decimal places amounts are rendered with.
const moneyPlaces = 2

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	XP          int64   `json:"xp"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	CompletedAt *string `json:"completed_at"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		XP:          t.XP,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.CompletedAt != nil {
		s := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

// ProgressResponse is the level projection shown on the dashboard.
type ProgressResponse struct {
	TotalXP         int64   `json:"total_xp"`
	Level           int64   `json:"level"`
	ProgressPercent float64 `json:"progress_percent"`
	LevelXP         int64   `json:"level_xp"`
	XPToNextLevel   int64   `json:"xp_to_next_level"`
}

// ToProgressResponse converts a progression State to an HTTP response DTO.
// LevelXP is the size of the current level's bar.
func ToProgressResponse(s progression.State) ProgressResponse {
	return ProgressResponse{
		TotalXP:         s.TotalXP,
		Level:           s.Level,
		ProgressPercent: s.ProgressPercent,
		LevelXP:         progression.RequiredXP(s.Level),
		XPToNextLevel:   progression.XPToNextLevel(s),
	}
}

// StatsResponse holds the task count tiles.
type StatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Open      int `json:"open"`
}

// BoardResponse is the task list with its projection.
type BoardResponse struct {
	Tasks    []TaskResponse   `json:"tasks"`
	Count    int              `json:"count"`
	Progress ProgressResponse `json:"progress"`
	Stats    StatsResponse    `json:"stats"`
}

// ToBoardResponse converts a ports.Board to an HTTP response DTO.
func ToBoardResponse(b *ports.Board) BoardResponse {
	items := make([]TaskResponse, len(b.Tasks))
	for i := range b.Tasks {
		items[i] = ToTaskResponse(&b.Tasks[i])
	}
	return BoardResponse{
		Tasks:    items,
		Count:    len(items),
		Progress: ToProgressResponse(b.Progress),
		Stats: StatsResponse{
			Total:     b.Stats.Total,
			Completed: b.Stats.Completed,
			Open:      b.Stats.Open(),
		},
	}
}

// BulkCompleteResponse is the result of a bulk completion, including the
// refreshed board.
type BulkCompleteResponse struct {
	Completed []int64               `json:"completed"`
	Errors    []BulkCompleteErrItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Board     *BoardResponse        `json:"board,omitempty"`
}

// BulkCompleteErrItem is one failed completion.
type BulkCompleteErrItem struct {
	TaskID  int64  `json:"task_id"`
	Message string `json:"message"`
}

// ToBulkCompleteResponse converts a ports.BulkCompleteResult to an HTTP
// response DTO.
func ToBulkCompleteResponse(result *ports.BulkCompleteResult) BulkCompleteResponse {
	completed := make([]int64, len(result.Completed))
	copy(completed, result.Completed)

	errs := make([]BulkCompleteErrItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkCompleteErrItem{TaskID: e.TaskID, Message: e.Err.Error()}
	}

	resp := BulkCompleteResponse{
		Completed: completed,
		Errors:    errs,
		Total:     len(completed) + len(errs),
		Succeeded: len(completed),
		Failed:    len(errs),
	}
	if result.Board != nil {
		board := ToBoardResponse(result.Board)
		resp.Board = &board
	}
	return resp
}

// EntryResponse represents a single ledger entry. Amount is signed and
// rendered with two decimal places.
type EntryResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToEntryResponse converts a domain Entry to an HTTP response DTO.
func ToEntryResponse(e *budget.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    e.Amount.StringFixed(moneyPlaces),
		Type:      e.Kind.String(),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

// SummaryResponse holds the ledger aggregates.
type SummaryResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// LedgerResponse is the entry list with its aggregates.
type LedgerResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
	Summary SummaryResponse `json:"summary"`
}

// ToLedgerResponse converts a ports.Ledger to an HTTP response DTO.
func ToLedgerResponse(l *ports.Ledger) LedgerResponse {
	items := make([]EntryResponse, len(l.Entries))
	for i := range l.Entries {
		items[i] = ToEntryResponse(&l.Entries[i])
	}
	return LedgerResponse{
		Entries: items,
		Count:   len(items),
		Summary: SummaryResponse{
			Income:  l.Summary.Income.StringFixed(moneyPlaces),
			Expense: l.Summary.Expense.StringFixed(moneyPlaces),
			Balance: l.Summary.Balance.StringFixed(moneyPlaces),
		},
	}
}

// ViewCountResponse is one post's counter.
type ViewCountResponse struct {
	Slug  string `json:"slug"`
	Count int64  `json:"count"`
}

// ToViewCountResponse converts a blog.ViewCount to an HTTP response DTO.
func ToViewCountResponse(c *blog.ViewCount) ViewCountResponse {
	return ViewCountResponse{Slug: c.Slug, Count: c.Count}
}

// ViewsResponse lists every counter and the site total.
type ViewsResponse struct {
	Views []ViewCountResponse `json:"views"`
	Total int64               `json:"total"`
}

// ToViewsResponse converts a ports.ViewReport to an HTTP response DTO.
func ToViewsResponse(r *ports.ViewReport) ViewsResponse {
	items := make([]ViewCountResponse, len(r.Counts))
	for i := range r.Counts {
		items[i] = ToViewCountResponse(&r.Counts[i])
	}
	return ViewsResponse{Views: items, Total: r.Total}
}

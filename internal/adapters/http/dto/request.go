package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/budget"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

const (
	msgMustNotEmpty = "must not be empty"

	// MaxBulkTaskIDs caps a single bulk completion request.
	MaxBulkTaskIDs = 100
)

// CreateTaskRequest is the JSON body for creating a task. XP is rolled by
// the server and cannot be supplied.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
func (r *CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.Invalid("title", domain.MsgRequired)
	}
	return nil
}

// ToDraft converts the request to the service input.
func (r *CreateTaskRequest) ToDraft() ports.TaskDraft {
	return ports.TaskDraft{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
	}
}

// UpdateTaskRequest is the JSON body for editing a task. Nil fields are left
// unchanged; completion has its own toggle endpoint.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that at least one field is set and the title is not blank.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title == nil && r.Description == nil {
		fields["body"] = "at least one of title or description is required"
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to the service input.
func (r *UpdateTaskRequest) ToPatch() ports.TaskPatch {
	return ports.TaskPatch{Title: r.Title, Description: r.Description}
}

// CompleteTasksRequest is the JSON body for bulk completion.
type CompleteTasksRequest struct {
	TaskIDs []int64 `json:"task_ids"`
}

// Validate checks the id list size.
func (r *CompleteTasksRequest) Validate() error {
	switch {
	case len(r.TaskIDs) == 0:
		return domain.Invalid("task_ids", domain.MsgRequired)
	case len(r.TaskIDs) > MaxBulkTaskIDs:
		return domain.Invalid("task_ids", fmt.Sprintf("must contain at most %d ids, got %d", MaxBulkTaskIDs, len(r.TaskIDs)))
	}
	return nil
}

// CreateEntryRequest is the JSON body for a new ledger entry. Amount accepts
// a JSON number or string; its sign is normalized from Type.
type CreateEntryRequest struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

// Validate checks the title, type and a non-zero amount.
func (r *CreateEntryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.Amount.IsZero() {
		fields["amount"] = "must not be zero"
	}
	if !budget.Kind(r.Type).IsValid() {
		fields["type"] = fmt.Sprintf("must be income or expense, got %q", r.Type)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToEntry converts the request to a domain Entry.
func (r *CreateEntryRequest) ToEntry() *budget.Entry {
	kind := budget.Kind(r.Type)
	return &budget.Entry{
		Title:  strings.TrimSpace(r.Title),
		Amount: budget.SignedAmount(kind, r.Amount),
		Kind:   kind,
	}
}

// UpdateEntryRequest is the JSON body for editing a ledger entry. Nil fields
// are left unchanged.
type UpdateEntryRequest struct {
	Title  *string          `json:"title,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Type   *string          `json:"type,omitempty"`
}

// Validate checks any provided fields.
func (r *UpdateEntryRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title == nil && r.Amount == nil && r.Type == nil {
		fields["body"] = "at least one of title, amount or type is required"
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.Amount != nil && r.Amount.IsZero() {
		fields["amount"] = "must not be zero"
	}
	if r.Type != nil && !budget.Kind(*r.Type).IsValid() {
		fields["type"] = fmt.Sprintf("must be income or expense, got %q", *r.Type)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to the service input.
func (r *UpdateEntryRequest) ToPatch() ports.EntryPatch {
	patch := ports.EntryPatch{Title: r.Title, Amount: r.Amount}
	if r.Type != nil {
		kind := budget.Kind(*r.Type)
		patch.Kind = &kind
	}
	return patch
}

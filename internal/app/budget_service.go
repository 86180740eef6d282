package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/budget"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// Compile-time check that BudgetService implements ports.BudgetService.
var _ ports.BudgetService = (*BudgetService)(nil)

// BudgetService implements ports.BudgetService. Summaries are derived from
// the entry list on every call.
type BudgetService struct {
	client  ports.BudgetClient
	metrics ports.DashboardMetrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewBudgetService creates a BudgetService. metrics may be nil.
func NewBudgetService(client ports.BudgetClient, metrics ports.DashboardMetrics, logger *slog.Logger) *BudgetService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &BudgetService{
		client:  client,
		metrics: metrics,
		logger:  loggerOrDiscard(logger),
		now:     time.Now,
	}
}

// Ledger returns the owner's entries and their summary.
func (s *BudgetService) Ledger(ctx context.Context, id *domain.Identity) (*ports.Ledger, error) {
	if !id.Valid() {
		return &ports.Ledger{Entries: []budget.Entry{}, Summary: budget.Summarize(nil)}, nil
	}

	s.logger.InfoContext(ctx, "loading ledger", slog.String("user_id", id.UserID))

	l, err := s.ledger(ctx, id.UserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load ledger",
			slog.String("operation", "Ledger"),
			slog.String("user_id", id.UserID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return l, nil
}

// AddEntry records a new entry with its amount signed by kind.
func (s *BudgetService) AddEntry(ctx context.Context, id *domain.Identity, entry *budget.Entry) (*ports.Ledger, error) {
	if !id.Valid() {
		return nil, domain.ErrUnauthorized
	}
	if entry == nil {
		return nil, domain.Invalid("body", domain.MsgRequired)
	}
	owner := id.UserID

	e := *entry
	e.Title = strings.TrimSpace(e.Title)
	if e.Kind.IsValid() {
		e.Amount = budget.SignedAmount(e.Kind, e.Amount)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	now := s.now()
	e.CreatedAt, e.UpdatedAt = now, now

	created, err := s.client.CreateEntry(ctx, owner, &e)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create budget entry",
			slog.String("operation", "AddEntry"),
			slog.String("user_id", owner),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating entry: %w", err)
	}

	s.logger.InfoContext(ctx, "budget entry created",
		slog.String("user_id", owner),
		slog.Int64("entry_id", created.ID),
		slog.String("kind", created.Kind.String()),
	)
	s.metrics.RecordMutation(ctx, "budget", "create")

	return s.ledger(ctx, owner)
}

// EditEntry applies patch to an existing entry. Changing only the kind
// re-signs the stored amount.
func (s *BudgetService) EditEntry(ctx context.Context, id *domain.Identity, entryID int64, patch ports.EntryPatch) (*ports.Ledger, error) {
	if !id.Valid() {
		return nil, domain.ErrUnauthorized
	}
	if patch.Title == nil && patch.Amount == nil && patch.Kind == nil {
		return nil, domain.Invalid("body", "at least one of title, amount or kind is required")
	}
	owner := id.UserID

	current, err := s.client.GetEntry(ctx, owner, entryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch budget entry",
			slog.String("operation", "EditEntry"),
			slog.String("user_id", owner),
			slog.Int64("entry_id", entryID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching entry: %w", err)
	}

	updated := *current
	if patch.Title != nil {
		updated.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Kind != nil {
		updated.Kind = *patch.Kind
	}
	if patch.Amount != nil {
		updated.Amount = *patch.Amount
	}
	if updated.Kind.IsValid() {
		updated.Amount = budget.SignedAmount(updated.Kind, updated.Amount)
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.UpdatedAt = s.now()

	if _, err := s.client.UpdateEntry(ctx, owner, entryID, &updated); err != nil {
		s.logger.ErrorContext(ctx, "failed to update budget entry",
			slog.String("operation", "EditEntry"),
			slog.String("user_id", owner),
			slog.Int64("entry_id", entryID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	s.metrics.RecordMutation(ctx, "budget", "edit")

	return s.ledger(ctx, owner)
}

// DeleteEntry removes an entry.
func (s *BudgetService) DeleteEntry(ctx context.Context, id *domain.Identity, entryID int64) (*ports.Ledger, error) {
	if !id.Valid() {
		return nil, domain.ErrUnauthorized
	}
	owner := id.UserID

	if err := s.client.DeleteEntry(ctx, owner, entryID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete budget entry",
			slog.String("operation", "DeleteEntry"),
			slog.String("user_id", owner),
			slog.Int64("entry_id", entryID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("deleting entry: %w", err)
	}
	s.metrics.RecordMutation(ctx, "budget", "delete")

	return s.ledger(ctx, owner)
}

func (s *BudgetService) ledger(ctx context.Context, owner string) (*ports.Ledger, error) {
	entries, err := s.client.ListEntries(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	if entries == nil {
		entries = []budget.Entry{}
	}
	return &ports.Ledger{Entries: entries, Summary: budget.Summarize(entries)}, nil
}

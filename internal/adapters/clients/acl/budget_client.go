package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	aclbudget "github.com/Yukimura-Hanzo/konoha-project/internal/adapters/clients/acl/budget"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/budget"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/httpclient"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// Compile-time interface check.
var _ ports.BudgetClient = (*BudgetClient)(nil)

// BudgetClient is the outbound adapter for the downstream ledger:
//
//	/api/v1/users/{owner}/budget/entries[/{id}]
type BudgetClient struct {
	req *Requester
}

// NewBudgetClient creates a BudgetClient that sends requests through client.
func NewBudgetClient(client *httpclient.Client, logger *slog.Logger) *BudgetClient {
	return &BudgetClient{req: NewRequester(client, logger)}
}

// ListEntries fetches the owner's whole ledger.
func (c *BudgetClient) ListEntries(ctx context.Context, ownerID string) ([]budget.Entry, error) {
	var dto aclbudget.EntryListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, entriesPath(ownerID), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	entries, err := aclbudget.ToDomainEntryList(dto)
	if err != nil {
		return nil, fmt.Errorf("translating ledger: %w", err)
	}
	return entries, nil
}

// GetEntry fetches one entry. Returns domain.ErrNotFound on 404.
func (c *BudgetClient) GetEntry(ctx context.Context, ownerID string, id int64) (*budget.Entry, error) {
	var dto aclbudget.EntryDTO
	if err := c.req.Do(ctx, http.MethodGet, entryPath(ownerID, id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return toEntry(&dto)
}

// CreateEntry posts a new ledger line.
func (c *BudgetClient) CreateEntry(ctx context.Context, ownerID string, e *budget.Entry) (*budget.Entry, error) {
	var dto aclbudget.EntryDTO
	if err := c.req.Do(ctx, http.MethodPost, entriesPath(ownerID), http.StatusCreated, aclbudget.ToEntryRequest(e), &dto); err != nil {
		return nil, err
	}
	return toEntry(&dto)
}

// UpdateEntry replaces a ledger line with PUT.
func (c *BudgetClient) UpdateEntry(ctx context.Context, ownerID string, id int64, e *budget.Entry) (*budget.Entry, error) {
	var dto aclbudget.EntryDTO
	if err := c.req.Do(ctx, http.MethodPut, entryPath(ownerID, id), http.StatusOK, aclbudget.ToEntryRequest(e), &dto); err != nil {
		return nil, err
	}
	return toEntry(&dto)
}

// DeleteEntry removes a ledger line. Returns domain.ErrNotFound on 404.
func (c *BudgetClient) DeleteEntry(ctx context.Context, ownerID string, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, entryPath(ownerID, id), http.StatusNoContent, nil, nil)
}

func toEntry(dto *aclbudget.EntryDTO) (*budget.Entry, error) {
	e, err := aclbudget.ToDomainEntry(dto)
	if err != nil {
		return nil, fmt.Errorf("translating entry: %w", err)
	}
	return &e, nil
}

func entriesPath(ownerID string) string {
	return ownerPath(ownerID) + "/budget/entries"
}

func entryPath(ownerID string, id int64) string {
	return fmt.Sprintf("%s/%d", entriesPath(ownerID), id)
}

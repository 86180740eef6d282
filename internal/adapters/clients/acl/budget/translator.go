package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	dombudget "github.com/Yukimura-Hanzo/konoha-project/internal/domain/budget"
)

// ToDomainEntry converts a downstream EntryDTO to a domain Entry. The amount
// is re-signed from the entry type, so a downstream that stores magnitudes
// and one that stores signed values translate the same way.
func ToDomainEntry(dto *EntryDTO) (dombudget.Entry, error) {
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		return dombudget.Entry{}, fmt.Errorf("entry %d amount %q: %w", dto.ID, dto.Amount, err)
	}
	kind := dombudget.Kind(dto.Type)

	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return dombudget.Entry{
		ID:        dto.ID,
		Title:     dto.Title,
		Amount:    dombudget.SignedAmount(kind, amount),
		Kind:      kind,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// ToDomainEntryList converts a downstream list. One malformed amount fails
// the whole list; a ledger with a silently dropped line would misreport the
// balance.
func ToDomainEntryList(dto EntryListResponseDTO) ([]dombudget.Entry, error) {
	entries := make([]dombudget.Entry, len(dto.Entries))
	for i := range dto.Entries {
		e, err := ToDomainEntry(&dto.Entries[i])
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}

// ToEntryRequest converts a domain Entry to the create/replace payload.
func ToEntryRequest(e *dombudget.Entry) EntryRequestDTO {
	return EntryRequestDTO{
		Title:  e.Title,
		Amount: dombudget.SignedAmount(e.Kind, e.Amount).String(),
		Type:   e.Kind.String(),
	}
}

// Package budget translates the downstream dashboard API's ledger entries.
package budget

// EntryDTO matches the downstream LedgerEntry schema. Amount is a decimal
// string so no precision is lost in transit.
type EntryDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EntryRequestDTO is the body of both create (POST) and replace (PUT).
type EntryRequestDTO struct {
	Title  string `json:"title"`
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// EntryListResponseDTO matches the downstream LedgerResponse schema.
type EntryListResponseDTO struct {
	Entries []EntryDTO `json:"entries"`
	Count   int64      `json:"count"`
}

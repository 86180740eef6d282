package budget

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

// Entry is a single line in the budget ledger. Amount carries its sign:
// income is positive and expense is negative once normalized by SignedAmount.
type Entry struct {
	ID        int64
	Title     string
	Amount    decimal.Decimal
	Kind      Kind
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Entry entity.
func (e *Entry) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !e.Kind.IsValid() {
		fields["kind"] = fmt.Sprintf("invalid: %q", e.Kind)
	}
	if e.Amount.IsZero() {
		fields["amount"] = "must not be zero"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SignedAmount normalizes amount so income is positive and expense negative,
// whatever sign the caller typed.
func SignedAmount(kind Kind, amount decimal.Decimal) decimal.Decimal {
	if kind == KindExpense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// Summary aggregates a ledger. Expense is reported as a positive magnitude.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Summarize totals income and expense over entries.
func Summarize(entries []Entry) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for i := range entries {
		switch entries[i].Kind {
		case KindIncome:
			income = income.Add(entries[i].Amount.Abs())
		case KindExpense:
			expense = expense.Add(entries[i].Amount.Abs())
		}
	}
	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

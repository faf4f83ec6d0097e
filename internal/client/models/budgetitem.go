package models

import "time"

// BudgetItemType is the direction of a budget item. The amount itself is
// always a non-negative magnitude; only the type carries the sign.
type BudgetItemType string

const (
	TypeIncome  BudgetItemType = "income"
	TypeOutcome BudgetItemType = "outcome"
)

// Valid reports whether t is one of the two known directions.
func (t BudgetItemType) Valid() bool {
	return t == TypeIncome || t == TypeOutcome
}

// Toggled returns the opposite direction.
func (t BudgetItemType) Toggled() BudgetItemType {
	if t == TypeIncome {
		return TypeOutcome
	}
	return TypeIncome
}

// BudgetItem is one row of the budget_items collection.
type BudgetItem struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Amount    float64        `json:"amount"`
	Type      BudgetItemType `json:"type"`
	Currency  string         `json:"currency"`
	CreatedAt time.Time      `json:"created_at"`
	UserID    string         `json:"user_id"`
}

// BudgetItemPatch is a partial update: only non-nil fields are written.
type BudgetItemPatch struct {
	Title    *string         `json:"title,omitempty"`
	Amount   *float64        `json:"amount,omitempty"`
	Type     *BudgetItemType `json:"type,omitempty"`
	Currency *string         `json:"currency,omitempty"`
}

// IsEmpty reports whether the patch names no fields at all.
func (p BudgetItemPatch) IsEmpty() bool {
	return p.Title == nil && p.Amount == nil && p.Type == nil && p.Currency == nil
}

// ApplyTo returns a copy of b with the named fields replaced.
func (p BudgetItemPatch) ApplyTo(b BudgetItem) BudgetItem {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Currency != nil {
		b.Currency = *p.Currency
	}
	return b
}

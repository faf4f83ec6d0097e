package models

import "time"

// BudgetItem is one row of the budget_items collection. Amount is a
// non-negative magnitude; the direction is carried by Type.
type BudgetItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
}

// BudgetItemPatch is a partial update decoded from a PATCH body; only fields
// present in the JSON are applied.
type BudgetItemPatch struct {
	Title    *string  `json:"title"`
	Amount   *float64 `json:"amount"`
	Type     *string  `json:"type"`
	Currency *string  `json:"currency"`
}

// IsEmpty reports whether the patch names no fields at all.
func (p BudgetItemPatch) IsEmpty() bool {
	return p.Title == nil && p.Amount == nil && p.Type == nil && p.Currency == nil
}

// Package budgetitems provides the PostgreSQL-backed repository for budget
// item rows.
package budgetitems

import (
	"context"

	"taskpurse/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]models.BudgetItem, error)
	Get(ctx context.Context, userID, id string) (*models.BudgetItem, error)
	Create(ctx context.Context, item *models.BudgetItem) (*models.BudgetItem, error)
	Update(ctx context.Context, userID, id string, patch models.BudgetItemPatch) error
	Delete(ctx context.Context, userID, id string) error
}

package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"taskpurse/internal/common"
	"taskpurse/internal/currency"
	"taskpurse/internal/server/models"
	"taskpurse/internal/server/repositories/repomanager"
)

// BudgetItemService implements user-scoped CRUD over the budget_items
// collection. Amounts are non-negative magnitudes; the type column carries
// the direction and only ever holds income or outcome.
type BudgetItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBudgetItemService(db *sql.DB, m repomanager.RepositoryManager) *BudgetItemService {
	return &BudgetItemService{db: db, repomanager: m}
}

func validItemType(t string) bool {
	return t == "income" || t == "outcome"
}

func (s *BudgetItemService) List(ctx context.Context, userID string) ([]models.BudgetItem, error) {
	return s.repomanager.BudgetItems(s.db).ListByUser(ctx, userID)
}

func (s *BudgetItemService) Get(ctx context.Context, userID, id string) (*models.BudgetItem, error) {
	return s.repomanager.BudgetItems(s.db).Get(ctx, userID, id)
}

func (s *BudgetItemService) Create(ctx context.Context, userID string, draft models.BudgetItem) (*models.BudgetItem, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if draft.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", common.ErrValidation)
	}
	if !validItemType(draft.Type) {
		return nil, fmt.Errorf("%w: unknown budget item type %q", common.ErrValidation, draft.Type)
	}
	if !currency.Supported(draft.Currency) {
		return nil, fmt.Errorf("%w: unsupported currency %q", common.ErrValidation, draft.Currency)
	}
	draft.ID = uuid.NewString()
	draft.UserID = userID
	return s.repomanager.BudgetItems(s.db).Create(ctx, &draft)
}

func (s *BudgetItemService) Update(ctx context.Context, userID, id string, patch models.BudgetItemPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if patch.Amount != nil && *patch.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", common.ErrValidation)
	}
	if patch.Type != nil && !validItemType(*patch.Type) {
		return fmt.Errorf("%w: unknown budget item type %q", common.ErrValidation, *patch.Type)
	}
	if patch.Currency != nil && !currency.Supported(*patch.Currency) {
		return fmt.Errorf("%w: unsupported currency %q", common.ErrValidation, *patch.Currency)
	}
	return s.repomanager.BudgetItems(s.db).Update(ctx, userID, id, patch)
}

func (s *BudgetItemService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.BudgetItems(s.db).Delete(ctx, userID, id)
}

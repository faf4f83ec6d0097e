package services

import (
	"context"
	"fmt"

	"taskpurse/internal/client/client"
	"taskpurse/internal/client/models"
	"taskpurse/internal/client/store"
	"taskpurse/internal/client/views"
	"taskpurse/internal/common"
	"taskpurse/internal/currency"
	"taskpurse/internal/logging"
)

// BudgetService owns the shared budget_items collection, mirroring
// TaskService's reconciliation behavior.
type BudgetService struct {
	client client.Client
	rows   *store.Collection[models.BudgetItem]
	log    logging.Logger
}

func NewBudgetService(c client.Client, log logging.Logger) *BudgetService {
	return &BudgetService{
		client: c,
		rows:   store.NewCollection(func(b models.BudgetItem) string { return b.ID }),
		log:    log.With("module", "budget"),
	}
}

func (s *BudgetService) Refresh(ctx context.Context) error {
	rows, err := s.client.ListBudgetItems(ctx)
	if err != nil {
		s.log.Error(ctx, "budget fetch failed", "error", err)
		return err
	}
	s.rows.Replace(rows)
	return nil
}

func (s *BudgetService) Items() []models.BudgetItem {
	return s.rows.Snapshot()
}

// Sections partitions the current snapshot into Income / Outcome.
func (s *BudgetService) Sections() views.BudgetSections {
	return views.BuildBudgetSections(s.rows.Snapshot())
}

func (s *BudgetService) Get(id string) (models.BudgetItem, bool) {
	return s.rows.Get(id)
}

// Fetch point-reads an item from the remote store.
func (s *BudgetService) Fetch(ctx context.Context, id string) (*models.BudgetItem, error) {
	return s.client.GetBudgetItem(ctx, id)
}

func validateDraft(draft models.BudgetItem) error {
	if err := common.ValidateTitle(draft.Title); err != nil {
		return err
	}
	if draft.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", common.ErrValidation)
	}
	if !draft.Type.Valid() {
		return fmt.Errorf("%w: unknown budget item type %q", common.ErrValidation, draft.Type)
	}
	if !currency.Supported(draft.Currency) {
		return fmt.Errorf("%w: unsupported currency %q", common.ErrValidation, draft.Currency)
	}
	return nil
}

func (s *BudgetService) Create(ctx context.Context, draft models.BudgetItem) (*models.BudgetItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	created, err := s.client.CreateBudgetItem(ctx, draft)
	if err != nil {
		s.log.Error(ctx, "budget item create failed", "error", err)
		return nil, err
	}
	s.rows.Insert(*created)
	return created, nil
}

func (s *BudgetService) Update(ctx context.Context, id string, patch models.BudgetItemPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if patch.Title != nil {
		if err := common.ValidateTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Amount != nil && *patch.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", common.ErrValidation)
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return fmt.Errorf("%w: unknown budget item type %q", common.ErrValidation, *patch.Type)
	}
	if patch.Currency != nil && !currency.Supported(*patch.Currency) {
		return fmt.Errorf("%w: unsupported currency %q", common.ErrValidation, *patch.Currency)
	}

	err := s.rows.Apply(ctx, id, patch.ApplyTo, func(ctx context.Context) error {
		return s.client.UpdateBudgetItem(ctx, id, patch)
	})
	if err != nil {
		s.log.Error(ctx, "budget item update failed", "id", id, "error", err)
	}
	return err
}

// ToggleType flips an item between income and outcome.
func (s *BudgetService) ToggleType(ctx context.Context, id string) error {
	current, ok := s.rows.Get(id)
	if !ok {
		return common.ErrorNotFound
	}
	next := current.Type.Toggled()
	return s.Update(ctx, id, models.BudgetItemPatch{Type: &next})
}

func (s *BudgetService) Delete(ctx context.Context, id string) error {
	err := s.rows.Delete(ctx, id, func(ctx context.Context) error {
		return s.client.DeleteBudgetItem(ctx, id)
	})
	if err != nil {
		s.log.Error(ctx, "budget item delete failed", "id", id, "error", err)
	}
	return err
}

func (s *BudgetService) Subscribe(fn func()) func() {
	return s.rows.Subscribe(fn)
}

func (s *BudgetService) Clear() {
	s.rows.Clear()
}

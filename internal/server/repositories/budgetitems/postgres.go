package budgetitems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"taskpurse/internal/common"
	"taskpurse/internal/dbx"
	"taskpurse/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByUser returns the user's budget items, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.BudgetItem, error) {
	query := `
		SELECT id, title, amount, type, currency, created_at, user_id
		FROM budget_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.BudgetItem{}
	for rows.Next() {
		var b models.BudgetItem
		if err := rows.Scan(&b.ID, &b.Title, &b.Amount, &b.Type, &b.Currency, &b.CreatedAt, &b.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.BudgetItem, error) {
	query := `
		SELECT id, title, amount, type, currency, created_at, user_id
		FROM budget_items
		WHERE user_id = $1 AND id = $2
	`
	b := &models.BudgetItem{}
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&b.ID, &b.Title, &b.Amount, &b.Type, &b.Currency, &b.CreatedAt, &b.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.BudgetItem) (*models.BudgetItem, error) {
	query := `
		INSERT INTO budget_items (id, user_id, title, amount, type, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.UserID, item.Title, item.Amount, item.Type, item.Currency).
		Scan(&item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// Update writes only the fields the patch names. It returns
// common.ErrorNotFound when the row does not exist or belongs to another
// user.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch models.BudgetItemPatch) error {
	set := []string{}
	args := []any{userID, id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}
	if len(set) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE budget_items SET %s WHERE user_id = $1 AND id = $2`, strings.Join(set, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM budget_items
		WHERE user_id = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

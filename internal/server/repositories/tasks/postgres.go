package tasks

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

// ListByUser returns the user's tasks, newest first. The order is part of
// the API contract: clients render list snapshots without re-sorting.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	query := `
		SELECT id, title, description, completed, category, deadline, created_at, user_id
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Category, &t.Deadline, &t.CreatedAt, &t.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tasks, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Task, error) {
	query := `
		SELECT id, title, description, completed, category, deadline, created_at, user_id
		FROM tasks
		WHERE user_id = $1 AND id = $2
	`
	t := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Category, &t.Deadline, &t.CreatedAt, &t.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		INSERT INTO tasks (id, user_id, title, description, completed, category, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Completed, task.Category, task.Deadline).
		Scan(&task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// Update writes only the fields the patch names. It returns
// common.ErrorNotFound when the row does not exist or belongs to another
// user.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch models.TaskPatch) error {
	set := []string{}
	args := []any{userID, id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Completed != nil {
		add("completed", *patch.Completed)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.DeadlineSet {
		add("deadline", patch.Deadline)
	}
	if len(set) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE user_id = $1 AND id = $2`, strings.Join(set, ", "))
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
		DELETE FROM tasks
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

// Package tasks provides the PostgreSQL-backed repository for task rows.
package tasks

import (
	"context"

	"taskpurse/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	Get(ctx context.Context, userID, id string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, userID, id string, patch models.TaskPatch) error
	Delete(ctx context.Context, userID, id string) error
}

package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"taskpurse/internal/common"
	"taskpurse/internal/server/models"
	"taskpurse/internal/server/repositories/repomanager"
)

// TaskService implements user-scoped CRUD over the tasks collection. Every
// operation takes the owning userID; rows of other users are invisible and
// surface as not-found.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	return s.repomanager.Tasks(s.db).ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, userID, id string) (*models.Task, error) {
	return s.repomanager.Tasks(s.db).Get(ctx, userID, id)
}

func (s *TaskService) Create(ctx context.Context, userID string, draft models.Task) (*models.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	draft.ID = uuid.NewString()
	draft.UserID = userID
	return s.repomanager.Tasks(s.db).Create(ctx, &draft)
}

func (s *TaskService) Update(ctx context.Context, userID, id string, patch models.TaskPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	return s.repomanager.Tasks(s.db).Update(ctx, userID, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Tasks(s.db).Delete(ctx, userID, id)
}

package services

import (
	"context"
	"time"

	"taskpurse/internal/client/client"
	"taskpurse/internal/client/models"
	"taskpurse/internal/client/store"
	"taskpurse/internal/client/views"
	"taskpurse/internal/common"
	"taskpurse/internal/logging"
)

// TaskService owns the shared tasks collection. All screens read the same
// snapshot and every mutation follows the uniform optimistic
// patch-with-rollback rule from the store.
type TaskService struct {
	client client.Client
	rows   *store.Collection[models.Task]
	log    logging.Logger
}

func NewTaskService(c client.Client, log logging.Logger) *TaskService {
	return &TaskService{
		client: c,
		rows:   store.NewCollection(func(t models.Task) string { return t.ID }),
		log:    log.With("module", "tasks"),
	}
}

// Refresh fetches the collection (server order: created desc) and
// reconciles the shared store.
func (s *TaskService) Refresh(ctx context.Context) error {
	rows, err := s.client.ListTasks(ctx)
	if err != nil {
		s.log.Error(ctx, "task fetch failed", "error", err)
		return err
	}
	s.rows.Replace(rows)
	return nil
}

// Tasks returns the current snapshot.
func (s *TaskService) Tasks() []models.Task {
	return s.rows.Snapshot()
}

// Sections partitions the current snapshot for display.
func (s *TaskService) Sections(now time.Time) views.TaskSections {
	return views.BuildTaskSections(s.rows.Snapshot(), now)
}

// Get returns a task from the local store.
func (s *TaskService) Get(id string) (models.Task, bool) {
	return s.rows.Get(id)
}

// Fetch point-reads a task from the remote store. A missing row surfaces as
// client.ErrNotFound; the screen decides what to do with it.
func (s *TaskService) Fetch(ctx context.Context, id string) (*models.Task, error) {
	return s.client.GetTask(ctx, id)
}

// Create validates the draft, inserts it remotely, and applies the
// server-confirmed row (with its assigned id) to the store.
func (s *TaskService) Create(ctx context.Context, draft models.Task) (*models.Task, error) {
	if err := common.ValidateTitle(draft.Title); err != nil {
		return nil, err
	}
	created, err := s.client.CreateTask(ctx, draft)
	if err != nil {
		s.log.Error(ctx, "task create failed", "error", err)
		return nil, err
	}
	s.rows.Insert(*created)
	return created, nil
}

// Update applies a partial update optimistically and commits it remotely.
func (s *TaskService) Update(ctx context.Context, id string, patch models.TaskPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if patch.Title != nil {
		if err := common.ValidateTitle(*patch.Title); err != nil {
			return err
		}
	}
	err := s.rows.Apply(ctx, id, patch.ApplyTo, func(ctx context.Context) error {
		return s.client.UpdateTask(ctx, id, patch)
	})
	if err != nil {
		s.log.Error(ctx, "task update failed", "id", id, "error", err)
	}
	return err
}

// ToggleCompleted flips the completion flag of one row.
func (s *TaskService) ToggleCompleted(ctx context.Context, id string) error {
	current, ok := s.rows.Get(id)
	if !ok {
		return common.ErrorNotFound
	}
	completed := !current.Completed
	return s.Update(ctx, id, models.TaskPatch{Completed: &completed})
}

// Delete removes the row optimistically; on commit failure it reappears.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	err := s.rows.Delete(ctx, id, func(ctx context.Context) error {
		return s.client.DeleteTask(ctx, id)
	})
	if err != nil {
		s.log.Error(ctx, "task delete failed", "id", id, "error", err)
	}
	return err
}

// Subscribe registers a change listener on the shared collection.
func (s *TaskService) Subscribe(fn func()) func() {
	return s.rows.Subscribe(fn)
}

// Clear drops local rows, e.g. on sign-out.
func (s *TaskService) Clear() {
	s.rows.Clear()
}

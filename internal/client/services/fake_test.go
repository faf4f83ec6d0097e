package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"taskpurse/internal/client/client"
	"taskpurse/internal/client/models"
	"taskpurse/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient is an in-memory client.Client with per-call error injection.
type fakeClient struct {
	mu    sync.Mutex
	tasks []models.Task
	items []models.BudgetItem

	nextID  int
	session *client.Session

	SignUpErr     error
	SignInErr     error
	SignOutErr    error
	PingErr       error
	ListErr       error
	GetErr        error
	CreateErr     error
	UpdateErr     error
	DeleteErr     error
	UpdateCalls   int
	LastSignUpPwd string
}

func newFakeClient() *fakeClient {
	return &fakeClient{session: &client.Session{UserID: "u1", Email: "u@example.com"}}
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) SignUp(ctx context.Context, email string, password []byte) error {
	f.LastSignUpPwd = string(password)
	return f.SignUpErr
}

func (f *fakeClient) SignIn(ctx context.Context, email string, password []byte) error {
	return f.SignInErr
}

func (f *fakeClient) SignOut(ctx context.Context) error { return f.SignOutErr }

func (f *fakeClient) CurrentUser(ctx context.Context) (*client.Session, error) {
	return f.session, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) assignID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

// --- tasks ---

func (f *fakeClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]models.Task(nil), f.tasks...), nil
}

func (f *fakeClient) GetTask(ctx context.Context, id string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	for _, t := range f.tasks {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeClient) CreateTask(ctx context.Context, draft models.Task) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	draft.ID = f.assignID()
	draft.UserID = "u1"
	f.tasks = append([]models.Task{draft}, f.tasks...)
	return &draft, nil
}

func (f *fakeClient) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i] = patch.ApplyTo(t)
			return nil
		}
	}
	return client.ErrNotFound
}

func (f *fakeClient) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

// --- budget items ---

func (f *fakeClient) ListBudgetItems(ctx context.Context) ([]models.BudgetItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]models.BudgetItem(nil), f.items...), nil
}

func (f *fakeClient) GetBudgetItem(ctx context.Context, id string) (*models.BudgetItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	for _, b := range f.items {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeClient) CreateBudgetItem(ctx context.Context, draft models.BudgetItem) (*models.BudgetItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	draft.ID = f.assignID()
	draft.UserID = "u1"
	f.items = append([]models.BudgetItem{draft}, f.items...)
	return &draft, nil
}

func (f *fakeClient) UpdateBudgetItem(ctx context.Context, id string, patch models.BudgetItemPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i, b := range f.items {
		if b.ID == id {
			f.items[i] = patch.ApplyTo(b)
			return nil
		}
	}
	return client.ErrNotFound
}

func (f *fakeClient) DeleteBudgetItem(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i, b := range f.items {
		if b.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

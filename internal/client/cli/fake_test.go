package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"taskpurse/internal/client/client"
	"taskpurse/internal/client/config"
	"taskpurse/internal/client/models"
	"taskpurse/internal/client/prefs"
	"taskpurse/internal/client/services"
	"taskpurse/internal/common"
	"taskpurse/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// stubClient is an in-memory remote store for screen tests.
type stubClient struct {
	session *client.Session
	tasks   []models.Task
	items   []models.BudgetItem
	nextID  int

	ListErr    error
	GetTaskErr error
	UpdateErr  error
	SignInErr  error

	signUpEmail string
}

func (c *stubClient) Close() error { return nil }

func (c *stubClient) SignUp(_ context.Context, email string, _ []byte) error {
	c.signUpEmail = email
	return nil
}
func (c *stubClient) SignIn(_ context.Context, email string, _ []byte) error {
	if c.SignInErr != nil {
		return c.SignInErr
	}
	c.session = &client.Session{UserID: "u1", Email: email}
	return nil
}
func (c *stubClient) SignOut(context.Context) error { c.session = nil; return nil }
func (c *stubClient) CurrentUser(context.Context) (*client.Session, error) {
	return c.session, nil
}
func (c *stubClient) Ping(context.Context) error { return nil }

func (c *stubClient) assignID() string {
	c.nextID++
	return fmt.Sprintf("id-%d", c.nextID)
}

func (c *stubClient) ListTasks(context.Context) ([]models.Task, error) {
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	return append([]models.Task(nil), c.tasks...), nil
}

func (c *stubClient) GetTask(_ context.Context, id string) (*models.Task, error) {
	if c.GetTaskErr != nil {
		return nil, c.GetTaskErr
	}
	for _, t := range c.tasks {
		if t.ID == id {
			row := t
			return &row, nil
		}
	}
	return nil, client.ErrNotFound
}

func (c *stubClient) CreateTask(_ context.Context, draft models.Task) (*models.Task, error) {
	draft.ID = c.assignID()
	draft.CreatedAt = time.Now()
	c.tasks = append([]models.Task{draft}, c.tasks...)
	return &draft, nil
}

func (c *stubClient) UpdateTask(_ context.Context, id string, patch models.TaskPatch) error {
	if c.UpdateErr != nil {
		return c.UpdateErr
	}
	for i, t := range c.tasks {
		if t.ID == id {
			c.tasks[i] = patch.ApplyTo(t)
			return nil
		}
	}
	return client.ErrNotFound
}

func (c *stubClient) DeleteTask(_ context.Context, id string) error {
	for i, t := range c.tasks {
		if t.ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

func (c *stubClient) ListBudgetItems(context.Context) ([]models.BudgetItem, error) {
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	return append([]models.BudgetItem(nil), c.items...), nil
}

func (c *stubClient) GetBudgetItem(_ context.Context, id string) (*models.BudgetItem, error) {
	for _, item := range c.items {
		if item.ID == id {
			row := item
			return &row, nil
		}
	}
	return nil, client.ErrNotFound
}

func (c *stubClient) CreateBudgetItem(_ context.Context, draft models.BudgetItem) (*models.BudgetItem, error) {
	draft.ID = c.assignID()
	draft.CreatedAt = time.Now()
	c.items = append([]models.BudgetItem{draft}, c.items...)
	return &draft, nil
}

func (c *stubClient) UpdateBudgetItem(_ context.Context, id string, patch models.BudgetItemPatch) error {
	if c.UpdateErr != nil {
		return c.UpdateErr
	}
	for i, item := range c.items {
		if item.ID == id {
			c.items[i] = patch.ApplyTo(item)
			return nil
		}
	}
	return client.ErrNotFound
}

func (c *stubClient) DeleteBudgetItem(_ context.Context, id string) error {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

// memRepo is an in-memory preference repository.
type memRepo struct {
	values map[string]string
}

func newMemRepo() *memRepo { return &memRepo{values: make(map[string]string)} }

func (r *memRepo) Get(_ context.Context, key string) (string, error) {
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return "", common.ErrorNotFound
}

func (r *memRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

func (r *memRepo) Clear(context.Context) error {
	r.values = make(map[string]string)
	return nil
}

// newTestApp wires a full App over the stub client with buffered I/O.
func newTestApp(t *testing.T, stub *stubClient, input string) (*App, *bytes.Buffer) {
	t.Helper()
	log := discardLogger()
	out := &bytes.Buffer{}

	a := &App{
		config:        &config.Config{OnlineCheckInterval: time.Hour},
		authService:   services.NewAuthService(stub, log),
		taskService:   services.NewTaskService(stub, log),
		budgetService: services.NewBudgetService(stub, log),
		prefs:         prefs.NewStore(newMemRepo(), log),
		log:           log,
		in:            bufio.NewReader(strings.NewReader(input)),
		out:           out,
	}
	return a, out
}

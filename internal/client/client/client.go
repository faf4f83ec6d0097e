// Package client implements the remote store boundary. The rest of the
// client never sees the wire format: it talks to the Client interface and
// receives sentinel errors.
package client

import (
	"context"

	"taskpurse/internal/client/models"
)

// Client is the remote store and authentication boundary. All operations on
// rows are implicitly scoped to the authenticated session by the server.
type Client interface {
	Close() error

	// auth session
	SignUp(ctx context.Context, email string, password []byte) error
	SignIn(ctx context.Context, email string, password []byte) error
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*Session, error)
	Ping(ctx context.Context) error

	// tasks collection
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	CreateTask(ctx context.Context, draft models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error
	DeleteTask(ctx context.Context, id string) error

	// budget_items collection
	ListBudgetItems(ctx context.Context) ([]models.BudgetItem, error)
	GetBudgetItem(ctx context.Context, id string) (*models.BudgetItem, error)
	CreateBudgetItem(ctx context.Context, draft models.BudgetItem) (*models.BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, id string, patch models.BudgetItemPatch) error
	DeleteBudgetItem(ctx context.Context, id string) error
}

// Session describes the currently authenticated user.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Package cli implements the interactive terminal client: a REPL over the
// application services, with screens for auth, tasks, budget and settings.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"taskpurse/internal/client/client"
	"taskpurse/internal/client/config"
	"taskpurse/internal/client/prefs"
	"taskpurse/internal/client/services"
	"taskpurse/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	taskService   *services.TaskService
	budgetService *services.BudgetService
	prefs         *prefs.Store
	log           logging.Logger
	Mode          Mode

	in     *bufio.Reader
	out    io.Writer
	closed func()
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := prefs.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewRESTClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:        c,
		authService:   services.NewAuthService(apiClient, log),
		taskService:   services.NewTaskService(apiClient, log),
		budgetService: services.NewBudgetService(apiClient, log),
		prefs:         prefs.NewStore(prefs.NewSQLiteRepository(db), log),
		log:           log,
		in:            bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}

	// local rows must not outlive the session they belong to
	a.closed = a.authService.OnChange(func(ev services.SessionEvent) {
		if ev == services.EventSignedOut {
			a.taskService.Clear()
			a.budgetService.Clear()
		}
	})

	return a, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	if a.closed != nil {
		defer a.closed()
	}
	a.Root(ctx)
}

func (a *App) isSignedIn() bool {
	return a.authService.CurrentUser() != nil
}

// StartOnlineStatusWatcher pings the server on a fixed interval and flips
// Mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

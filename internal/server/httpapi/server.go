// Package httpapi exposes the remote store over HTTP/JSON. Routes are
// versioned under /api/v1; every collection route requires a Bearer access
// token.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"taskpurse/internal/logging"
	"taskpurse/internal/server/services"
)

type Server struct {
	address   string
	users     *services.UserService
	tasks     *services.TaskService
	budget    *services.BudgetItemService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *services.UserService, ts *services.TaskService, bs *services.BudgetItemService, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		budget:    bs,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Handler builds the route table. Method-qualified patterns keep the
// dispatch in the mux; handlers only see requests they can serve.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/ping", s.handlePing)
	mux.HandleFunc("POST /api/v1/auth/signup", s.handleSignUp)
	mux.HandleFunc("POST /api/v1/auth/signin", s.handleSignIn)
	mux.HandleFunc("POST /api/v1/auth/refresh", s.handleRefresh)

	mux.Handle("POST /api/v1/auth/signout", s.requireAuth(s.handleSignOut))
	mux.Handle("GET /api/v1/session", s.requireAuth(s.handleSession))

	mux.Handle("GET /api/v1/tasks", s.requireAuth(s.handleTaskList))
	mux.Handle("POST /api/v1/tasks", s.requireAuth(s.handleTaskCreate))
	mux.Handle("GET /api/v1/tasks/{id}", s.requireAuth(s.handleTaskGet))
	mux.Handle("PATCH /api/v1/tasks/{id}", s.requireAuth(s.handleTaskUpdate))
	mux.Handle("DELETE /api/v1/tasks/{id}", s.requireAuth(s.handleTaskDelete))

	mux.Handle("GET /api/v1/budget-items", s.requireAuth(s.handleBudgetList))
	mux.Handle("POST /api/v1/budget-items", s.requireAuth(s.handleBudgetCreate))
	mux.Handle("GET /api/v1/budget-items/{id}", s.requireAuth(s.handleBudgetGet))
	mux.Handle("PATCH /api/v1/budget-items/{id}", s.requireAuth(s.handleBudgetUpdate))
	mux.Handle("DELETE /api/v1/budget-items/{id}", s.requireAuth(s.handleBudgetDelete))

	return mux
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

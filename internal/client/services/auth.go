// Package services contains the application services the screens talk to.
// This file defines authentication: sign-up, sign-in/out, session queries,
// and the session-change notification stream.
package services

import (
	"context"
	"strings"
	"sync"

	"taskpurse/internal/client/client"
	"taskpurse/internal/common"
	"taskpurse/internal/logging"
)

// SessionEvent is delivered to session-change subscribers.
type SessionEvent string

const (
	EventSignedIn  SessionEvent = "signed_in"
	EventSignedOut SessionEvent = "signed_out"
)

// AuthService handles the authentication boundary for the screens.
//
// Contract:
//   - SignUp validates email and the password complexity rule locally and
//     only then calls the remote store.
//   - SignIn authenticates and caches the session.
//   - SignOut revokes the session and notifies subscribers.
//   - OnChange subscribes to session-change events; the returned function
//     unsubscribes.
type AuthService interface {
	SignUp(ctx context.Context, email string, password []byte) error
	SignIn(ctx context.Context, email string, password []byte) error
	SignOut(ctx context.Context) error
	CurrentUser() *client.Session
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	OnChange(fn func(SessionEvent)) func()
}

type authService struct {
	client client.Client
	log    logging.Logger

	mu      sync.Mutex
	session *client.Session

	subMu   sync.Mutex
	subs    map[int]func(SessionEvent)
	nextSub int
}

func NewAuthService(c client.Client, log logging.Logger) AuthService {
	return &authService{
		client: c,
		log:    log.With("module", "auth"),
		subs:   make(map[int]func(SessionEvent)),
	}
}

func (a *authService) SignUp(ctx context.Context, email string, password []byte) error {
	if strings.TrimSpace(email) == "" {
		return common.ErrValidation
	}
	if err := common.ValidatePassword(string(password)); err != nil {
		return err
	}
	return a.client.SignUp(ctx, email, password)
}

func (a *authService) SignIn(ctx context.Context, email string, password []byte) error {
	if err := a.client.SignIn(ctx, email, password); err != nil {
		return err
	}

	session, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.log.Error(ctx, "session query after sign-in failed", "error", err)
		return err
	}

	a.mu.Lock()
	a.session = session
	a.mu.Unlock()

	a.notify(EventSignedIn)
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	err := a.client.SignOut(ctx)
	if err != nil {
		a.log.Error(ctx, "sign-out failed", "error", err)
	}

	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()

	a.notify(EventSignedOut)
	return err
}

func (a *authService) CurrentUser() *client.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func (a *authService) OnChange(fn func(SessionEvent)) func() {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	n := a.nextSub
	a.nextSub++
	a.subs[n] = fn
	return func() {
		a.subMu.Lock()
		defer a.subMu.Unlock()
		delete(a.subs, n)
	}
}

func (a *authService) notify(ev SessionEvent) {
	a.subMu.Lock()
	fns := make([]func(SessionEvent), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

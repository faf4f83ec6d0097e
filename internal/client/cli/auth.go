package cli

import (
	"context"
	"errors"

	"taskpurse/internal/client/client"
	"taskpurse/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account. The password complexity rule is checked before any network
// call, so a rejected password never leaves the client.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.SignUp(ctx, email, password); err != nil {
		return err
	}

	a.println("Success! You can log in now.")
	return nil
}

// Login prompts for credentials and signs in. On success the task and budget
// collections are fetched so the screens have data to show, and Mode is set
// to online. If the server is unreachable the app drops to offline mode and
// reports it; any other error is returned to the caller.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.SignIn(ctx, email, password); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.println("Server unavailable, try again later")
			a.setMode(ModeOffline)
			return nil
		}
		return err
	}

	a.setMode(ModeOnline)
	a.refresh(ctx)
	a.println("Welcome back!")
	return nil
}

// Logout revokes the session. Local collections are cleared through the
// session-change subscription, not here.
func (a *App) Logout(ctx context.Context) error {
	return a.authService.SignOut(ctx)
}

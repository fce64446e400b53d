package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/geofeed/internal/client/services"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and creates the account. On
// success the new user is signed in.
func (a *App) Register(ctx context.Context, _ []string) error {
	var r services.Registration
	var err error

	if r.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if r.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	r.Password, r.ConfirmPassword = string(password), string(confirm)

	if err := a.authService.Register(ctx, r); err != nil {
		return err
	}

	a.resetViews()
	a.authenticated.Store(true)
	printlnFn("Welcome, @" + r.Username + "!")
	return nil
}

// Login signs in. The username comes from the argument, or is prompted for
// with the last used username as the default.
func (a *App) Login(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		last := a.authService.LastUsername(ctx)
		prompt := "Enter username"
		if last != "" {
			prompt += " [" + last + "]"
		}

		var err error
		if username, err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return err
		}
		if username == "" {
			username = last
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, username, string(password)); err != nil {
		return err
	}

	a.resetViews()
	a.takeInvalidated()
	a.authenticated.Store(true)
	printlnFn("Signed in as @" + username)
	return nil
}

// LoginGoogle signs in with a Google authorization code. Without an
// argument it prints the consent URL, when configured, and prompts for the
// code the redirect delivers.
func (a *App) LoginGoogle(ctx context.Context, args []string) error {
	var code string
	if len(args) > 0 {
		code = args[0]
	} else {
		if a.googleOAuth != nil {
			printlnFn("Open this URL and approve access:")
			printlnFn(a.googleOAuth.AuthCodeURL(uuid.NewString(), oauth2.AccessTypeOnline))
		}
		var err error
		if code, err = getSimpleText(a.reader, "Enter the code from the redirect", a.out); err != nil {
			return err
		}
	}

	res, err := a.authService.LoginWithGoogle(ctx, code)
	if err != nil {
		return err
	}

	a.resetViews()
	a.takeInvalidated()
	if res.NewAccount {
		a.authenticated.Store(false)
		printlnFn("This Google account has no geofeed profile yet. Finish sign-up in the web app, then sign in again.")
		return nil
	}
	a.authenticated.Store(true)
	printlnFn("Signed in as @" + res.Username)
	return nil
}

// Logout ends the session. Local state is cleared even when the server
// cannot be reached.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.resetViews()
	a.authenticated.Store(false)
	printlnFn("Signed out.")
	return nil
}

// Forget signs out and erases everything stored locally, including the
// remembered username.
func (a *App) Forget(ctx context.Context, _ []string) error {
	a.authenticated.Store(false)
	a.resetViews()
	if err := a.authService.Forget(ctx); err != nil {
		return err
	}
	printlnFn("Signed out and local state erased.")
	return nil
}

// State lists the locally stored client state. The token is shown by size
// only.
func (a *App) State(ctx context.Context, _ []string) error {
	entries, err := a.authService.LocalState(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printlnFn("No local state.")
		return nil
	}
	for _, e := range entries {
		if e.Secret {
			printlnFn(fmt.Sprintf("  %-16s <hidden, %d bytes>", e.Key, e.Size))
			continue
		}
		printlnFn(fmt.Sprintf("  %-16s %s", e.Key, e.Value))
	}
	return nil
}

func (a *App) WhoAmI(_ context.Context, _ []string) error {
	if u, ok := a.authService.CurrentUsername(); ok {
		printlnFn("@" + u)
	}
	return nil
}

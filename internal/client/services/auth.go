package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
	"github.com/dmitrijs2005/geofeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/geofeed/internal/client/session"
	"github.com/dmitrijs2005/geofeed/internal/common"
	"github.com/dmitrijs2005/geofeed/internal/logging"
)

// lastUsernameKey remembers who logged in last so the prompt can offer it.
const lastUsernameKey = "last_username"

// GoogleSignIn is the outcome of a Google login. NewAccount is set when the
// Google identity has no geofeed profile yet; the session then only holds a
// short-lived token and Username is empty.
type GoogleSignIn struct {
	Username   string
	NewAccount bool
}

// StateEntry describes one record of local client state. Secret values are
// not exposed; only their size is.
type StateEntry struct {
	Key    string
	Value  string
	Size   int
	Secret bool
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/Register: validate input locally, then authenticate and store
//     the access token.
//   - Logout: revoke server-side when possible; local state is always cleared.
//   - Restore: report whether a session from a previous run is usable,
//     refreshing it once if it has expired.
//   - Forget: log out and erase all local state.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, r Registration) error
	LoginWithGoogle(ctx context.Context, code string) (GoogleSignIn, error)
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
	LocalState(ctx context.Context) ([]StateEntry, error)
	Restore(ctx context.Context) bool
	CurrentUsername() (string, bool)
	LastUsername(ctx context.Context) string
}

type authService struct {
	client  client.Client
	guard   *session.Guard
	meta    metadata.Repository
	queries *QueryStore
	log     logging.Logger
}

// NewAuthService constructs an AuthService. meta may be nil.
func NewAuthService(c client.Client, guard *session.Guard, meta metadata.Repository, queries *QueryStore, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, guard: guard, meta: meta, queries: queries, log: log}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if err := ValidateLogin(username, password); err != nil {
		return err
	}

	if err := a.client.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	a.startSession(ctx, username)
	return nil
}

func (a *authService) Register(ctx context.Context, r Registration) error {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
	if err := ValidateRegistration(r); err != nil {
		return err
	}

	if err := a.client.Register(ctx, r.Email, r.Username, r.Password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	a.startSession(ctx, r.Username)
	return nil
}

func (a *authService) LoginWithGoogle(ctx context.Context, code string) (GoogleSignIn, error) {
	code = strings.TrimSpace(code)
	if err := required("code", code); err != nil {
		return GoogleSignIn{}, err
	}

	if err := a.client.LoginWithGoogle(ctx, code); err != nil {
		return GoogleSignIn{}, fmt.Errorf("google login error: %w", err)
	}

	username, ok := a.guard.CurrentUsername()
	if !ok {
		a.queries.Clear()
		a.log.Info(ctx, "google account has no profile yet")
		return GoogleSignIn{NewAccount: true}, nil
	}

	a.startSession(ctx, username)
	return GoogleSignIn{Username: username}, nil
}

// startSession drops queries cached for a previous user.
func (a *authService) startSession(ctx context.Context, username string) {
	a.queries.Clear()
	a.log.Info(ctx, "logged in", "username", username)

	if a.meta == nil {
		return
	}
	if err := a.meta.Set(ctx, lastUsernameKey, []byte(username)); err != nil {
		a.log.Warn(ctx, "failed to remember username", "error", err)
	}
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout failed (may already be logged out)", "error", err)
	}
	a.queries.Clear()
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Forget(ctx context.Context) error {
	_ = a.Logout(ctx)
	if a.meta == nil {
		return nil
	}
	if err := a.meta.Clear(ctx); err != nil {
		return fmt.Errorf("forget local state: %w", err)
	}
	a.log.Info(ctx, "local state erased")
	return nil
}

func (a *authService) LocalState(ctx context.Context) ([]StateEntry, error) {
	if a.meta == nil {
		return nil, errors.New("no local state store")
	}
	entries, err := a.meta.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local state: %w", err)
	}

	out := make([]StateEntry, 0, len(entries))
	for _, e := range entries {
		se := StateEntry{Key: e.Key, Size: len(e.Value)}
		if e.Key == common.AccessTokenKey {
			se.Secret = true
		} else {
			se.Value = string(e.Value)
		}
		out = append(out, se)
	}
	return out, nil
}

func (a *authService) Restore(ctx context.Context) bool {
	return a.guard.IsAuthenticated(ctx)
}

func (a *authService) CurrentUsername() (string, bool) {
	return a.guard.CurrentUsername()
}

func (a *authService) LastUsername(ctx context.Context) string {
	if a.meta == nil {
		return ""
	}
	v, err := a.meta.Get(ctx, lastUsernameKey)
	if err != nil {
		a.log.Warn(ctx, "failed to read last username", "error", err)
		return ""
	}
	return string(v)
}

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/geofeed/internal/common"
	"github.com/dmitrijs2005/geofeed/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// TokenSource yields the current access token.
type TokenSource interface {
	Get() (string, bool)
}

// Refresher exchanges the refresh cookie for a new access token and reports
// whether it succeeded.
type Refresher interface {
	Refresh(ctx context.Context) bool
}

// Claims are the fields the client reads from an access token.
type Claims struct {
	Subject   string
	Username  string
	ExpiresAt time.Time
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// DecodeClaims reads the token payload without verifying the signature;
// the client never holds the signing key.
func DecodeClaims(token string) (Claims, error) {
	tc := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, tc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	c := Claims{Subject: tc.Subject, Username: tc.Username}
	if tc.ExpiresAt != nil {
		c.ExpiresAt = tc.ExpiresAt.Time
	}
	return c, nil
}

// Guard decides whether the current session is usable.
type Guard struct {
	tokens    TokenSource
	refresher Refresher
	now       func() time.Time
	log       logging.Logger
}

// GuardOption customizes a Guard.
type GuardOption func(*Guard)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) GuardOption {
	return func(g *Guard) { g.now = now }
}

// WithLogger sets the guard's logger.
func WithLogger(l logging.Logger) GuardOption {
	return func(g *Guard) { g.log = l }
}

func NewGuard(tokens TokenSource, refresher Refresher, opts ...GuardOption) *Guard {
	g := &Guard{
		tokens:    tokens,
		refresher: refresher,
		now:       time.Now,
		log:       logging.Nop(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// IsAuthenticated reports whether a usable session exists. A token whose
// expiry lies in the future is accepted without any network call. An
// expired token triggers exactly one refresh attempt whose result is
// returned. An undecodable token counts as logged out.
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	token, ok := g.tokens.Get()
	if !ok {
		return false
	}

	c, err := DecodeClaims(token)
	if err != nil {
		g.log.Debug(ctx, "access token undecodable", "error", err)
		return false
	}

	if !c.ExpiresAt.IsZero() && c.ExpiresAt.After(g.now()) {
		return true
	}

	return g.refresh(ctx)
}

func (g *Guard) refresh(ctx context.Context) bool {
	if g.refresher == nil {
		return false
	}
	return g.refresher.Refresh(ctx)
}

// CurrentUsername returns the username claim of the current token,
// ignoring expiry.
func (g *Guard) CurrentUsername() (string, bool) {
	c, err := g.Claims()
	if err != nil || c.Username == "" {
		return "", false
	}
	return c.Username, true
}

// Claims decodes the current token.
func (g *Guard) Claims() (Claims, error) {
	token, ok := g.tokens.Get()
	if !ok {
		return Claims{}, common.ErrInvalidToken
	}
	return DecodeClaims(token)
}

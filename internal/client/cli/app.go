package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
	"github.com/dmitrijs2005/geofeed/internal/client/config"
	"github.com/dmitrijs2005/geofeed/internal/client/models"
	"github.com/dmitrijs2005/geofeed/internal/client/paging"
	"github.com/dmitrijs2005/geofeed/internal/client/services"
	"github.com/dmitrijs2005/geofeed/internal/client/session"
	"github.com/dmitrijs2005/geofeed/internal/logging"
	"golang.org/x/oauth2"
)

type postService interface {
	Feed() *paging.Pager[models.Post]
	Comments(postID int64) *paging.Pager[models.Comment]
	Nearby(ctx context.Context, q client.NearbyQuery) ([]models.Post, error)
	Upload(ctx context.Context, filename string, r io.Reader) (models.FileReference, error)
	Create(ctx context.Context, in client.NewPost) (int64, error)
	AddComment(ctx context.Context, postID int64, content string) (models.Comment, error)
	Delete(ctx context.Context, postID int64) error
	Like(ctx context.Context, postID int64) error
	Unlike(ctx context.Context, postID int64) error
	Save(ctx context.Context, postID int64) error
	Unsave(ctx context.Context, postID int64) error
	LikeComment(ctx context.Context, commentID int64) error
	UnlikeComment(ctx context.Context, commentID int64) error
}

type userService interface {
	Profile(ctx context.Context, username string) (models.User, error)
	Posts(username string, coll client.PostCollection) *paging.Pager[models.Post]
	Suggestions(ctx context.Context) ([]models.User, error)
	Follow(ctx context.Context, userID int64) error
	Unfollow(ctx context.Context, userID int64) error
	UpdateProfile(ctx context.Context, in client.ProfileUpdate) (models.User, error)
}

type App struct {
	config      *config.Config
	authService services.AuthService
	posts       postService
	users       userService
	googleOAuth *oauth2.Config
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	now         func() time.Time
	closeFn     func() error

	// list is the post pager that "more" continues.
	list *paging.Pager[models.Post]
	// comments is the comment pager that "morecomments" continues.
	comments *paging.Pager[models.Comment]

	invalidated atomic.Bool
	// authenticated is the verified session state: set by a successful
	// restore or sign-in, reset by logout and invalidation. A token whose
	// username is still decodable does not count on its own.
	authenticated atomic.Bool
}

// NewApp wires the state store, token store, API client, session guard,
// query cache and services from cfg.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	meta, closeFn, err := client.OpenMetadata(ctx, c.StateDSN)
	if err != nil {
		return nil, fmt.Errorf("open client state: %w", err)
	}

	tokens := session.NewTokenStore(meta, log)
	if err := tokens.Load(ctx); err != nil {
		log.Warn(ctx, "could not load saved session", "error", err)
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, tokens,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	if err != nil {
		_ = closeFn()
		return nil, err
	}

	guard := session.NewGuard(tokens, apiClient.Refresher(), session.WithLogger(log))
	queries := services.NewQueryStore(c.CacheCapacity, log)

	a := &App{
		config:      c,
		authService: services.NewAuthService(apiClient, guard, meta, queries, log),
		posts:       services.NewPostService(apiClient, queries, log),
		users:       services.NewUserService(apiClient, queries, log),
		googleOAuth: c.GoogleOAuth(),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		now:         time.Now,
		closeFn:     closeFn,
	}
	apiClient.OnSessionInvalidated(a.sessionInvalidated)

	return a, nil
}

// Run restores a previous session if possible and then blocks in the REPL
// until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	printlnFn("Welcome to geofeed (type 'help' for commands)")
	a.restore(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close(ctx context.Context) {
	if a.closeFn == nil {
		return
	}
	if err := a.closeFn(); err != nil {
		a.log.Warn(ctx, "failed to close client state", "error", err)
	}
}

// restore adopts a saved session only if it is still usable.
func (a *App) restore(ctx context.Context) {
	ok := a.authService.Restore(ctx)
	a.authenticated.Store(ok)

	u, named := a.authService.CurrentUsername()
	switch {
	case ok && named:
		printlnFn("Signed in as @" + u)
	case !ok && named:
		printlnFn("Your previous session has expired. Please log in again.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.authenticated.Load()
}

// sessionInvalidated runs when a refresh fails and the token is cleared.
func (a *App) sessionInvalidated(context.Context) {
	a.authenticated.Store(false)
	a.invalidated.Store(true)
}

// takeInvalidated reports and resets the session-invalidated signal.
func (a *App) takeInvalidated() bool {
	return a.invalidated.Swap(false)
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if u, ok := a.authService.CurrentUsername(); ok {
		return "(@" + u + ")"
	}
	return ""
}

func (a *App) resetViews() {
	a.list = nil
	a.comments = nil
}

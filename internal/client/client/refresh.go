package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/geofeed/internal/common"
	"github.com/dmitrijs2005/geofeed/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type tokenSetter interface {
	Set(ctx context.Context, token string) error
}

// Refresher exchanges the refresh cookie for a new access token.
//
// Concurrent calls share a single request and all callers get its result.
// The shared request is detached from every caller's cancellation and
// bounded by its own timeout, so one caller giving up never fails the
// refresh for the others.
type Refresher struct {
	http    *http.Client
	url     string
	tokens  tokenSetter
	log     logging.Logger
	timeout time.Duration
	group   singleflight.Group
}

// NewRefresher builds a refresher posting to url with hc. hc must carry the
// cookie jar that received the refresh cookie and must not route through
// the auth transport.
func NewRefresher(hc *http.Client, url string, tokens tokenSetter, log logging.Logger) *Refresher {
	if log == nil {
		log = logging.Nop()
	}
	return &Refresher{http: hc, url: url, tokens: tokens, log: log, timeout: defaultTimeout}
}

// Refresh reports whether a new access token was obtained and stored.
// Any failure leaves the token store untouched. A caller whose ctx ends
// first gets false while the shared refresh keeps running; such callers
// must check ctx.Err() before treating false as a rejected session.
func (r *Refresher) Refresh(ctx context.Context) bool {
	ch := r.group.DoChan("refresh", func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()
		return r.refresh(shared), nil
	})

	select {
	case res := <-ch:
		return res.Val.(bool)
	case <-ctx.Done():
		r.log.Debug(ctx, "caller stopped waiting for refresh", "error", ctx.Err())
		return false
	}
}

func (r *Refresher) refresh(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, http.NoBody)
	if err != nil {
		r.log.Error(ctx, "failed to build refresh request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	resp, err := r.http.Do(req)
	if err != nil {
		r.log.Warn(ctx, "refresh request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn(ctx, "refresh rejected", "status", resp.StatusCode, "detail", readDetail(resp.Body))
		return false
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.AccessToken == "" {
		r.log.Warn(ctx, "refresh response did not contain an access token")
		return false
	}

	// A persistence failure is logged by the store; memory already holds the token.
	_ = r.tokens.Set(ctx, body.AccessToken)
	return true
}

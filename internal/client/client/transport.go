package client

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/geofeed/internal/common"
	"github.com/dmitrijs2005/geofeed/internal/logging"
	"github.com/google/uuid"
)

// invalidatedHeader marks a 401 returned after a failed refresh so the
// client can tell an invalidated session from a plain rejection.
const invalidatedHeader = "X-Geofeed-Session-Invalidated"

type tokenStore interface {
	Get() (string, bool)
	Clear(ctx context.Context) error
}

type refresher interface {
	Refresh(ctx context.Context) bool
}

// authTransport injects the bearer token and performs at most one
// refresh-and-resend per request.
type authTransport struct {
	base      http.RoundTripper
	authPath  string
	tokens    tokenStore
	refresher refresher
	onInvalid func(ctx context.Context)
	log       logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := req.Header.Get(common.RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	ctx := req.Context()
	log := t.log.With("request_id", id, "method", req.Method, "path", req.URL.Path)

	if strings.HasPrefix(req.URL.Path, t.authPath) {
		log.Debug(ctx, "auth request")
		out, _ := t.prepare(req, id, req.Body, false)
		return t.base.RoundTrip(out)
	}

	log.Debug(ctx, "request")
	out, hadToken := t.prepare(req, id, req.Body, true)
	resp, err := t.base.RoundTrip(out)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// Without a token there is no session to refresh or invalidate.
	if !hadToken {
		log.Debug(ctx, "unauthorized without a session")
		return resp, nil
	}

	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		log.Warn(ctx, "request body cannot be replayed, not refreshing")
		return resp, nil
	}

	log.Info(ctx, "access token rejected, refreshing")
	if !t.refresher.Refresh(ctx) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			drain(resp)
			log.Debug(ctx, "request canceled during refresh", "error", ctxErr)
			return nil, ctxErr
		}
		log.Warn(ctx, "refresh failed, session invalidated")
		if err := t.tokens.Clear(ctx); err != nil {
			log.Error(ctx, "failed to clear access token", "error", err)
		}
		if t.onInvalid != nil {
			t.onInvalid(ctx)
		}
		resp.Header.Set(invalidatedHeader, "1")
		return resp, nil
	}

	var body io.ReadCloser
	if req.GetBody != nil {
		body, err = req.GetBody()
		if err != nil {
			log.Error(ctx, "failed to rewind request body", "error", err)
			return resp, nil
		}
	}

	drain(resp)

	log.Info(ctx, "session refreshed, replaying request")
	replay, _ := t.prepare(req, id, body, true)
	return t.base.RoundTrip(replay)
}

// prepare clones req so the caller's request is never modified. It reports
// whether a bearer token was attached.
func (t *authTransport) prepare(req *http.Request, id string, body io.ReadCloser, withToken bool) (*http.Request, bool) {
	out := req.Clone(req.Context())
	out.Body = body
	out.Header.Set(common.RequestIDHeader, id)
	out.Header.Del(common.AuthorizationHeader)
	if !withToken {
		return out, false
	}
	tok, ok := t.tokens.Get()
	if ok {
		out.Header.Set(common.AuthorizationHeader, common.BearerPrefix+tok)
	}
	return out, ok
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

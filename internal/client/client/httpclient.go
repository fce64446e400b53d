package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/geofeed/internal/client/session"
	"github.com/dmitrijs2005/geofeed/internal/common"
	"github.com/dmitrijs2005/geofeed/internal/logging"
	"golang.org/x/net/publicsuffix"
)

const defaultTimeout = 10 * time.Second

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	tokens    *session.TokenStore
	refresher *Refresher
	log       logging.Logger

	mu        sync.RWMutex
	listeners []func(ctx context.Context)
}

// Option customizes an HTTPClient.
type Option func(*options)

type options struct {
	timeout time.Duration
	base    http.RoundTripper
	log     logging.Logger
}

// WithTimeout bounds every request, including its refresh and replay.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithBaseTransport replaces http.DefaultTransport.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewHTTPClient creates a client for the API at baseURL. The main client and
// the refresher share one cookie jar so the refresh cookie set at login is
// sent on refresh.
func NewHTTPClient(baseURL string, tokens *session.TokenStore, opts ...Option) (*HTTPClient, error) {
	o := options{timeout: defaultTimeout, base: http.DefaultTransport, log: logging.Nop()}
	for _, fn := range opts {
		fn(&o)
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", baseURL)
	}
	if u.Path == "" {
		u.Path = "/"
	}

	inner, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	jar := loopbackJar{CookieJar: inner}

	c := &HTTPClient{baseURL: u, tokens: tokens, log: o.log}

	plain := &http.Client{Transport: o.base, Jar: jar, Timeout: o.timeout}
	c.refresher = NewRefresher(plain, u.JoinPath("auth", "refresh").String(), tokens, o.log.With("component", "refresher"))
	if o.timeout > 0 {
		c.refresher.timeout = o.timeout
	}

	c.http = &http.Client{
		Jar:     jar,
		Timeout: o.timeout,
		Transport: &authTransport{
			base:      o.base,
			authPath:  strings.TrimRight(u.Path, "/") + common.AuthPathPrefix,
			tokens:    tokens,
			refresher: c.refresher,
			onInvalid: c.notifyInvalidated,
			log:       o.log.With("component", "transport"),
		},
	}

	return c, nil
}

// Refresh runs the refresh protocol directly.
func (c *HTTPClient) Refresh(ctx context.Context) bool {
	return c.refresher.Refresh(ctx)
}

// Refresher exposes the refresher for the session guard.
func (c *HTTPClient) Refresher() *Refresher {
	return c.refresher
}

// OnSessionInvalidated registers fn to run whenever a refresh fails and the
// session is cleared.
func (c *HTTPClient) OnSessionInvalidated(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *HTTPClient) notifyInvalidated(ctx context.Context) {
	c.mu.RLock()
	ls := make([]func(context.Context), len(c.listeners))
	copy(ls, c.listeners)
	c.mu.RUnlock()

	for _, fn := range ls {
		fn(ctx)
	}
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadResponse, req.URL.Path, err)
	}
	return nil
}

// mapStatus turns a non-2xx response into an *APIError.
func mapStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	e := &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if resp.Header.Get(invalidatedHeader) != "" {
			e.err = ErrSessionInvalidated
		} else {
			e.err = ErrUnauthorized
		}
	case http.StatusNotFound:
		e.err = ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		e.err = ErrUnavailable
	default:
		e.err = ErrRequestFailed
	}
	return e
}

// readDetail extracts the server's "detail" field. Structured details are
// returned as raw JSON, non-JSON bodies as trimmed text.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}
	return string(body.Detail)
}

// IsAuthError reports whether err means the caller must log in again.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrSessionInvalidated)
}

package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionInvalidated = errors.New("session invalidated")
	ErrNotFound           = errors.New("not found")
	ErrRequestFailed      = errors.New("request failed")
	ErrBadResponse        = errors.New("malformed response")
)

// APIError is a non-2xx response. It unwraps to one of the sentinels above
// so callers can branch with errors.Is and still show the server's detail.
type APIError struct {
	StatusCode int
	Detail     string
	err        error
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (status %d)", e.err, e.StatusCode)
	}
	return fmt.Sprintf("%v (status %d): %s", e.err, e.StatusCode, e.Detail)
}

func (e *APIError) Unwrap() error { return e.err }

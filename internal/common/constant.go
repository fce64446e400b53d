// Package common contains shared constants and sentinel errors used across
// geofeed client components.
package common

// AccessTokenKey is the metadata key under which the access token is
// persisted between runs.
const AccessTokenKey = "access_token"

// RefreshCookieName is the HTTP-only cookie carrying the refresh credential.
const RefreshCookieName = "refresh_token"

// Outbound request headers.
const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
	BearerPrefix        = "Bearer "
)

// AuthPathPrefix marks endpoints that are never retried after a refresh.
const AuthPathPrefix = "/auth/"

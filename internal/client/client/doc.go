// Package client talks to the geofeed HTTP API.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface) used by the services.
//  2. HTTPClient, a JSON-over-HTTP implementation. Its transport attaches
//     the access token to every non-auth request and, on a 401, refreshes
//     the session once and replays the request.
//  3. Refresher, which exchanges the refresh cookie for a new access token.
//     Concurrent refreshes share one request.
//  4. Local state bootstrap (InitDatabase, RunMigrations, OpenMetadata).
//
// # Error Handling
//
// Non-2xx responses become *APIError values that unwrap to a sentinel:
// ErrUnauthorized, ErrSessionInvalidated, ErrNotFound, ErrUnavailable or
// ErrRequestFailed. Network failures unwrap to ErrUnavailable.
//
// When a refresh fails the token store is cleared and every callback
// registered with OnSessionInvalidated runs before the request returns.
package client

// Package metadata stores small client-side key/value records that must
// survive restarts, such as the access token.
//
// Repositories are selected by the state DSN: a file path opens the SQLite
// implementation, a redis:// URL the Redis one.
package metadata

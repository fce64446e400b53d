// Package session owns the client's access credential.
//
// TokenStore is the single process-wide holder of the access token and
// mirrors it into durable storage. Guard answers "is the user logged in"
// by decoding the token's claims locally and falling back to one refresh
// when the token has expired.
package session

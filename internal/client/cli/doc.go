// Package cli provides the interactive geofeed command-line client.
//
// NewApp wires configuration, the client state store, the authenticated
// API client, the session guard, the query cache and the services. Run
// restores a saved session when one is usable and then starts the REPL.
//
// Commands cover the account (register, login, logout), the home feed and
// per-user post lists with "more" paging, comments, the nearby map view,
// post and comment mutations, uploads and profile edits. Type "help" in the
// REPL for the full list.
package cli

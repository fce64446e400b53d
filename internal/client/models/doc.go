// Package models defines the read-only records the client works with and the
// normalizers that build them from raw server payloads.
//
// Payload types mirror the server JSON with pointer fields so that an absent
// key and an explicit null are both visible as nil. The New* constructors are
// pure and total: they never fail, and every optional field gets a fixed
// default (0 for counts, false for flags, "" for text). A missing nested user
// or location yields a fully defaulted record rather than nil.
//
// Identity fields keep the server key names (user_id, post_id, comment_id)
// and stay *int64; a nil identity never equals a real one.
package models

// Package paging implements the offset pagination contract shared by every
// list endpoint: a request carries an offset and a fixed per-endpoint limit,
// a response carries an ordered slice of records and an end-of-stream flag.
//
// A Pager accumulates the pages of one query identity into a single ordered,
// duplicate-free sequence and serializes its fetches so that page n+1 is never
// requested before page n has resolved.
package paging

// Fixed page sizes per endpoint.
const (
	ProfilePostsLimit = 9
	FeedLimit         = 5
	CommentsLimit     = 8
	SuggestionsLimit  = 5
)

// Identified is implemented by records that carry an optional identity.
// Records reporting ok == false are never treated as duplicates.
type Identified interface {
	Identity() (id int64, ok bool)
}

// Page is one response of a paginated endpoint.
type Page[T any] struct {
	Items  []T
	Offset int
	Limit  int
	IsEnd  bool
}

// Next returns the cursor of the following page. It returns false once the
// server has signalled end of stream.
func (p Page[T]) Next() (int, bool) {
	if p.IsEnd {
		return 0, false
	}
	return p.Offset + p.Limit, true
}

package paging

import (
	"context"
	"sync"
)

// FetchFunc loads the page starting at offset.
type FetchFunc[T any] func(ctx context.Context, offset int) (Page[T], error)

// Pager accumulates pages of a single query identity.
//
// FetchNext calls are serialized: a second caller waits until the in-flight
// page has arrived and then requests the following one. Accessors never wait
// for an in-flight fetch.
type Pager[T Identified] struct {
	fetch FetchFunc[T]

	fetchMu sync.Mutex

	mu    sync.RWMutex
	items []T
	seen  map[int64]struct{}
	next  int
	done  bool
	pages int
	gen   uint64
}

// NewPager creates a pager starting at offset 0.
func NewPager[T Identified](fetch FetchFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch, seen: make(map[int64]struct{})}
}

// FetchNext loads the next page and returns the records it added to the
// accumulated sequence. Once the stream has ended it returns (nil, nil)
// without issuing a request. On error the cursor is left unchanged.
func (p *Pager[T]) FetchNext(ctx context.Context) ([]T, error) {
	p.fetchMu.Lock()
	defer p.fetchMu.Unlock()

	p.mu.RLock()
	offset, done, gen := p.next, p.done, p.gen
	p.mu.RUnlock()

	if done {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := p.fetch(ctx, offset)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// A Reset while the request was in flight makes this page stale.
	if p.gen != gen {
		return nil, nil
	}

	added := make([]T, 0, len(page.Items))
	for _, it := range page.Items {
		if id, ok := it.Identity(); ok {
			if _, dup := p.seen[id]; dup {
				continue
			}
			p.seen[id] = struct{}{}
		}
		added = append(added, it)
	}
	p.items = append(p.items, added...)
	p.pages++

	if next, ok := page.Next(); ok {
		p.next = next
	} else {
		p.done = true
	}

	return added, nil
}

// Items returns a copy of the accumulated records in server order.
func (p *Pager[T]) Items() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Done reports whether the server signalled end of stream.
func (p *Pager[T]) Done() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.done
}

// Pages returns the number of pages loaded since the last reset.
func (p *Pager[T]) Pages() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pages
}

// Reset drops the accumulated records so the next FetchNext starts again at
// offset 0. A fetch in flight during Reset is discarded on arrival.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = nil
	p.seen = make(map[int64]struct{})
	p.next = 0
	p.done = false
	p.pages = 0
	p.gen++
}

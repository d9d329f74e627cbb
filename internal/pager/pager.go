// Package pager implements the fetch/append state machine behind every
// infinite-scroll listing: one initial load, append-on-trigger, a hard guard
// against overlapping fetches, and client-side filtering over whatever has
// accumulated so far.
package pager

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when a load is requested after Close.
var ErrClosed = errors.New("pager: closed")

// Page is one fetched page plus the server's continuation flag.
type Page[T any] struct {
	Items   []T
	HasMore bool
}

// FetchPage loads the page at the given page cursor. Offset counts pages,
// not items: the initial load is page 0, the first load-more is page 1.
type FetchPage[T any] func(ctx context.Context, offset, limit int) (Page[T], error)

// Pager accumulates pages for one listing. Safe for concurrent use; at most
// one fetch (initial or more) is ever in flight per instance.
type Pager[T any] struct {
	fetch FetchPage[T]
	limit int

	mu             sync.Mutex
	items          []T
	offset         int
	hasMore        bool
	loadingInitial bool
	loadingMore    bool
	closed         bool
}

// New builds a pager over fetch with the given page size.
func New[T any](fetch FetchPage[T], limit int) *Pager[T] {
	return &Pager[T]{
		fetch:   fetch,
		limit:   limit,
		hasMore: true,
	}
}

// LoadInitial fetches page 0 and replaces the accumulated items. Used on
// first render and again after a filter change (via Reset).
func (p *Pager[T]) LoadInitial(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.loadingInitial || p.loadingMore {
		p.mu.Unlock()
		return nil
	}
	p.loadingInitial = true
	p.mu.Unlock()

	page, err := p.fetch(ctx, 0, p.limit)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadingInitial = false
	if p.closed {
		// The view is gone; never commit into disposed state.
		return ErrClosed
	}
	if err != nil {
		// Items, offset and hasMore keep their last known values so the
		// caller can surface a transient error and let the user retry.
		return err
	}
	p.items = page.Items
	p.hasMore = page.HasMore
	p.offset = 0
	return nil
}

// LoadMore appends the next page. The trigger is level-sensitive, so callers
// may fire it repeatedly; the guard turns redundant firings into no-ops.
// started reports whether a fetch was actually issued.
func (p *Pager[T]) LoadMore(ctx context.Context) (started bool, err error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false, ErrClosed
	}
	if !p.hasMore || p.loadingInitial || p.loadingMore {
		p.mu.Unlock()
		return false, nil
	}
	p.loadingMore = true
	next := p.offset + 1
	p.mu.Unlock()

	page, err := p.fetch(ctx, next, p.limit)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadingMore = false
	if p.closed {
		return true, ErrClosed
	}
	if err != nil {
		return true, err
	}
	// Append in arrival order. Pages are not de-duplicated: a backend that
	// returns overlapping pages will show duplicates.
	p.items = append(p.items, page.Items...)
	p.hasMore = page.HasMore
	p.offset = next
	return true, nil
}

// Reset returns the pager to its pristine state so the next LoadInitial
// starts from page 0. Call on filter or search changes.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.items = nil
	p.offset = 0
	p.hasMore = true
}

// Close marks the pager dead. In-flight responses are discarded instead of
// being committed, and further loads fail with ErrClosed.
func (p *Pager[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

// Items returns a copy of the accumulated items in arrival order.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Filter returns the accumulated items that satisfy pred, without fetching.
func (p *Pager[T]) Filter(pred func(T) bool) []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, 0, len(p.items))
	for _, item := range p.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// HasMore reports whether the server indicated another page.
func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// IsLoadingInitial reports whether the first page is being fetched.
func (p *Pager[T]) IsLoadingInitial() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadingInitial
}

// IsLoadingMore reports whether a follow-up page is being fetched.
func (p *Pager[T]) IsLoadingMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadingMore
}

// Offset returns the current page cursor.
func (p *Pager[T]) Offset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Len returns the number of accumulated items.
func (p *Pager[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

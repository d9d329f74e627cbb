package pager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageFetcher fabricates deterministic pages and counts calls.
type pageFetcher struct {
	mu       sync.Mutex
	calls    int
	pages    int // pages with content before hasMore goes false
	pageSize int
	fail     error
}

func (f *pageFetcher) fetch(_ context.Context, offset, limit int) (Page[string], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail != nil {
		return Page[string]{}, f.fail
	}
	items := make([]string, 0, limit)
	for i := 0; i < f.pageSize; i++ {
		items = append(items, fmt.Sprintf("book-%d-%d", offset, i))
	}
	return Page[string]{Items: items, HasMore: offset < f.pages-1}, nil
}

func (f *pageFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestInitialThenTwoMorePages(t *testing.T) {
	f := &pageFetcher{pages: 3, pageSize: 20}
	p := New(f.fetch, 20)

	require.NoError(t, p.LoadInitial(context.Background()))
	assert.Equal(t, 20, p.Len())
	assert.True(t, p.HasMore())
	assert.Equal(t, 0, p.Offset())

	started, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, 40, p.Len())
	assert.Equal(t, 1, p.Offset())

	started, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, 60, p.Len())
	assert.False(t, p.HasMore())

	// Arrival order is preserved across pages.
	items := p.Items()
	assert.Equal(t, "book-0-0", items[0])
	assert.Equal(t, "book-2-19", items[59])
}

func TestNoFetchAfterHasMoreFalse(t *testing.T) {
	f := &pageFetcher{pages: 1, pageSize: 5}
	p := New(f.fetch, 5)

	require.NoError(t, p.LoadInitial(context.Background()))
	assert.False(t, p.HasMore())
	callsBefore := f.callCount()

	// The sentinel is level-sensitive and may keep firing; none of these may
	// reach the network.
	for i := 0; i < 3; i++ {
		started, err := p.LoadMore(context.Background())
		require.NoError(t, err)
		assert.False(t, started)
	}
	assert.Equal(t, callsBefore, f.callCount())
}

func TestGuardBlocksOverlappingFetch(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var moreCalls int
	var mu sync.Mutex

	fetch := func(_ context.Context, offset, _ int) (Page[string], error) {
		if offset == 0 {
			return Page[string]{Items: []string{"x"}, HasMore: true}, nil
		}
		mu.Lock()
		moreCalls++
		first := moreCalls == 1
		mu.Unlock()
		if first {
			close(entered)
			<-release
		}
		return Page[string]{Items: []string{"y"}, HasMore: true}, nil
	}

	p := New(fetch, 1)
	require.NoError(t, p.LoadInitial(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		started, err := p.LoadMore(context.Background())
		assert.NoError(t, err)
		assert.True(t, started)
	}()

	<-entered
	// A second trigger while the first is outstanding must be a no-op, not
	// queued.
	started, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.False(t, started)

	close(release)
	<-done

	mu.Lock()
	assert.Equal(t, 1, moreCalls)
	mu.Unlock()
}

func TestFailedPageLeavesStateUntouched(t *testing.T) {
	f := &pageFetcher{pages: 3, pageSize: 10}
	p := New(f.fetch, 10)
	require.NoError(t, p.LoadInitial(context.Background()))

	f.mu.Lock()
	f.fail = errors.New("boom")
	f.mu.Unlock()

	started, err := p.LoadMore(context.Background())
	assert.True(t, started)
	assert.Error(t, err)

	assert.Equal(t, 10, p.Len())
	assert.Equal(t, 0, p.Offset())
	assert.True(t, p.HasMore(), "hasMore keeps its last known value so the user can retry")

	// Retry succeeds once the backend recovers.
	f.mu.Lock()
	f.fail = nil
	f.mu.Unlock()
	started, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, 20, p.Len())
}

func TestResetRestartsFromPageZero(t *testing.T) {
	f := &pageFetcher{pages: 3, pageSize: 4}
	p := New(f.fetch, 4)
	require.NoError(t, p.LoadInitial(context.Background()))
	_, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, p.Len())

	p.Reset()
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.HasMore())

	require.NoError(t, p.LoadInitial(context.Background()))
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 0, p.Offset())
}

func TestCloseDiscardsInFlightResponse(t *testing.T) {
	release := make(chan struct{})
	fetch := func(context.Context, int, int) (Page[string], error) {
		<-release
		return Page[string]{Items: []string{"late"}, HasMore: true}, nil
	}
	p := New(fetch, 1)

	done := make(chan error, 1)
	go func() { done <- p.LoadInitial(context.Background()) }()

	p.Close()
	close(release)
	assert.ErrorIs(t, <-done, ErrClosed)
	assert.Equal(t, 0, p.Len(), "a closed pager never commits fetched data")

	err := p.LoadInitial(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestFilterOverAccumulatedItems(t *testing.T) {
	f := &pageFetcher{pages: 2, pageSize: 20}
	p := New(f.fetch, 20)
	require.NoError(t, p.LoadInitial(context.Background()))
	_, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 40, p.Len())

	callsBefore := f.callCount()
	// Search narrows the view without touching the network or the items.
	matched := p.Filter(func(s string) bool { return strings.HasSuffix(s, "-3") })
	assert.Len(t, matched, 2)
	assert.Equal(t, 40, p.Len())
	assert.Equal(t, callsBefore, f.callCount())

	empty := p.Filter(func(string) bool { return false })
	assert.Empty(t, empty)
}

package browse

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindfulreader/internal/api"
	"mindfulreader/internal/pager"
)

// shelfFetcher serves a fixed catalogue page by page and counts calls.
type shelfFetcher struct {
	books []api.Book
	calls int
}

func (f *shelfFetcher) fetch(_ context.Context, offset, limit int) (pager.Page[api.Book], error) {
	f.calls++
	start := offset * limit
	if start >= len(f.books) {
		return pager.Page[api.Book]{Items: []api.Book{}}, nil
	}
	end := start + limit
	if end > len(f.books) {
		end = len(f.books)
	}
	return pager.Page[api.Book]{Items: f.books[start:end], HasMore: end < len(f.books)}, nil
}

func testCatalogue(n int) []api.Book {
	books := make([]api.Book, n)
	for i := range books {
		books[i] = api.Book{
			BookID: fmt.Sprintf("b-%02d", i),
			Title:  fmt.Sprintf("Quiet Volume %02d", i),
			Mood:   "Stillness",
			Author: &api.Author{FullName: "Mary Oliver"},
		}
	}
	return books
}

func loadedModel(t *testing.T, f *shelfFetcher) Model {
	t.Helper()
	m := New(Options{Fetch: f.fetch, PageSize: 20})
	msg := m.loadInitialCmd()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestScrollTriggersNextPage(t *testing.T) {
	f := &shelfFetcher{books: testCatalogue(45)}
	m := loadedModel(t, f)
	require.Equal(t, 1, f.calls)
	require.Equal(t, 20, m.pager.Len())

	// Moving within the safe zone fetches nothing.
	var cmd tea.Cmd
	var next tea.Model = m
	for i := 0; i < 10; i++ {
		next, cmd = next.(Model).Update(keyMsg("down"))
		assert.Nil(t, cmd)
	}

	// Crossing into the load-ahead zone requests the next page.
	for cmd == nil {
		next, cmd = next.(Model).Update(keyMsg("down"))
	}
	m = next.(Model)
	require.GreaterOrEqual(t, m.cursor, m.pager.Len()-loadAheadRows)

	next, _ = m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, 2, f.calls)
	assert.Equal(t, 40, m.pager.Len())
}

func TestExhaustedShelfStopsFetching(t *testing.T) {
	f := &shelfFetcher{books: testCatalogue(10)}
	m := loadedModel(t, f)
	require.Equal(t, 10, m.pager.Len())
	require.False(t, m.pager.HasMore())

	var next tea.Model = m
	var cmd tea.Cmd
	for i := 0; i < 15; i++ {
		next, cmd = next.(Model).Update(keyMsg("down"))
		assert.Nil(t, cmd)
	}
	assert.Equal(t, 1, f.calls)
}

func TestSearchNarrowsWithoutFetching(t *testing.T) {
	f := &shelfFetcher{books: testCatalogue(45)}
	f.books[3].Title = "Meditations"
	f.books[7].Title = "Meditations for Mornings"
	m := loadedModel(t, f)

	m.search.SetValue("meditations")
	assert.Len(t, m.visible(), 2)
	assert.Equal(t, 20, m.pager.Len(), "loaded items are untouched")
	assert.Equal(t, 1, f.calls)

	t.Run("ByAuthorName", func(t *testing.T) {
		m.search.SetValue("mary oliver")
		assert.Len(t, m.visible(), 20)
	})

	t.Run("ScrollWhileSearchingFetchesNothing", func(t *testing.T) {
		m.search.SetValue("meditations")
		var next tea.Model = m
		var cmd tea.Cmd
		for i := 0; i < 5; i++ {
			next, cmd = next.(Model).Update(keyMsg("down"))
			assert.Nil(t, cmd)
		}
		assert.Equal(t, 1, f.calls)
	})
}

func TestMoodChipFilters(t *testing.T) {
	f := &shelfFetcher{books: testCatalogue(12)}
	f.books[2].Mood = "Growth"
	f.books[5].Mood = "Growth"
	m := loadedModel(t, f)

	require.Equal(t, "All", Moods[m.moodIdx])
	assert.Len(t, m.visible(), 12)

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	require.Equal(t, "Stillness", Moods[m.moodIdx])
	assert.Len(t, m.visible(), 10)
	assert.Equal(t, 0, m.cursor, "mood change resets the cursor")
}

func TestEmptyShelfShowsBreather(t *testing.T) {
	f := &shelfFetcher{books: nil}
	m := loadedModel(t, f)

	view := m.View()
	assert.Contains(t, view, "Take a breath.")
	assert.NotContains(t, view, "Quiet Volume")
}

func TestFetchFailureShowsFriendlyNotice(t *testing.T) {
	m := New(Options{PageSize: 20, Fetch: func(context.Context, int, int) (pager.Page[api.Book], error) {
		return pager.Page[api.Book]{}, fmt.Errorf("boom")
	}})
	msg := m.loadInitialCmd()()
	next, _ := m.Update(msg)
	m = next.(Model)

	assert.True(t, strings.Contains(m.View(), "Something unexpected happened. Please try again later."))

	t.Run("ReloadClearsNotice", func(t *testing.T) {
		next, _ := m.Update(keyMsg("r"))
		assert.Empty(t, next.(Model).notice)
	})
}

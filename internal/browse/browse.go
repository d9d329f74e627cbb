// Package browse is the interactive discovery view: an endless, mood-filtered
// shelf of books with client-side search over everything loaded so far.
package browse

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mindfulreader/internal/api"
	"mindfulreader/internal/defaults"
	"mindfulreader/internal/pager"
	"mindfulreader/internal/session"
)

// Moods is the fixed filter strip shown above the shelf. "All" disables the
// filter.
var Moods = []string{"All", "Stillness", "Growth", "Joy", "Reflection", "Healing", "Adventure", "Trauma"}

// loadAheadRows is how close the cursor may get to the bottom of the loaded
// list before the next page is requested.
const loadAheadRows = 5

// Options configures the discovery view.
type Options struct {
	Context   context.Context
	Client    *api.Client
	Session   *session.Store
	PageSize  int
	Mood      string
	ThemeName string

	// Fetch overrides the page source; when nil, pages come from
	// Client.ListBooks. Tests use this to avoid a live server.
	Fetch pager.FetchPage[api.Book]
}

// Model is the root bubbletea state for the discovery view.
type Model struct {
	ctx     context.Context
	session *session.Store
	pager   *pager.Pager[api.Book]

	theme  Theme
	styles Styles
	width  int
	height int

	search  textinput.Model
	moodIdx int
	cursor  int

	quote  string
	notice string

	signedInName string
}

type initialLoadedMsg struct{ err error }
type moreLoadedMsg struct {
	started bool
	err     error
}

// New builds the discovery model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	fetch := opts.Fetch
	if fetch == nil {
		client := opts.Client
		fetch = func(ctx context.Context, offset, limit int) (pager.Page[api.Book], error) {
			page, err := client.ListBooks(ctx, api.ListParams{Offset: offset, Limit: limit})
			if err != nil {
				return pager.Page[api.Book]{}, err
			}
			return pager.Page[api.Book]{Items: page.Items, HasMore: page.HasMore}, nil
		}
	}

	search := textinput.New()
	search.Placeholder = "Search by title or author…"
	search.Prompt = "/ "
	search.CharLimit = 80

	moodIdx := 0
	for i, m := range Moods {
		if strings.EqualFold(m, opts.Mood) {
			moodIdx = i
		}
	}

	theme := GetTheme(opts.ThemeName)

	m := Model{
		ctx:     ctx,
		session: opts.Session,
		pager:   pager.New(fetch, pageSize),
		theme:   theme,
		styles:  theme.Styles(),
		search:  search,
		moodIdx: moodIdx,
		quote:   defaults.RandomQuote(),
	}
	if opts.Session != nil {
		if u := opts.Session.GetCurrentUser(); u != nil {
			m.signedInName = defaults.Resolve(u.Name, defaults.User.DisplayName)
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink, m.loadInitialCmd())
}

func (m Model) loadInitialCmd() tea.Cmd {
	p := m.pager
	ctx := m.ctx
	return func() tea.Msg {
		return initialLoadedMsg{err: p.LoadInitial(ctx)}
	}
}

func (m Model) loadMoreCmd() tea.Cmd {
	p := m.pager
	ctx := m.ctx
	return func() tea.Msg {
		started, err := p.LoadMore(ctx)
		return moreLoadedMsg{started: started, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case initialLoadedMsg:
		if msg.err != nil {
			m.notice = friendlyNotice(msg.err)
		} else {
			m.notice = ""
		}
		return m, nil

	case moreLoadedMsg:
		if msg.err != nil {
			m.notice = friendlyNotice(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			m.pager.Close()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.cursor = clamp(m.cursor, 0, len(m.visible())-1)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.pager.Close()
		return m, tea.Quit

	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		m.cursor = clamp(m.cursor-1, 0, len(m.visible())-1)
		return m, nil

	case "down", "j":
		m.cursor = clamp(m.cursor+1, 0, len(m.visible())-1)
		return m.maybeLoadMore()

	case "pgdown":
		m.cursor = clamp(m.cursor+10, 0, len(m.visible())-1)
		return m.maybeLoadMore()

	case "pgup":
		m.cursor = clamp(m.cursor-10, 0, len(m.visible())-1)
		return m, nil

	case "tab", "right":
		m.moodIdx = (m.moodIdx + 1) % len(Moods)
		m.cursor = 0
		return m, nil

	case "shift+tab", "left":
		m.moodIdx = (m.moodIdx - 1 + len(Moods)) % len(Moods)
		m.cursor = 0
		return m, nil

	case "t":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		return m, nil

	case "r":
		m.notice = ""
		m.pager.Reset()
		m.cursor = 0
		return m, m.loadInitialCmd()
	}
	return m, nil
}

// maybeLoadMore is the scroll sentinel: when the cursor drifts near the end
// of the unfiltered list, the next page is requested. Pager guards make
// repeated triggers harmless.
func (m Model) maybeLoadMore() (tea.Model, tea.Cmd) {
	if !m.pager.HasMore() || m.pager.IsLoadingMore() || m.pager.IsLoadingInitial() {
		return m, nil
	}
	if m.searching() {
		// Search mode works over what is already loaded.
		return m, nil
	}
	if m.cursor >= m.pager.Len()-loadAheadRows {
		return m, m.loadMoreCmd()
	}
	return m, nil
}

func (m Model) searching() bool {
	return strings.TrimSpace(m.search.Value()) != ""
}

// visible applies the mood chip and the search box to the loaded items, in
// arrival order.
func (m Model) visible() []api.Book {
	mood := Moods[m.moodIdx]
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	return m.pager.Filter(func(b api.Book) bool {
		if mood != "All" && !strings.EqualFold(b.Mood, mood) {
			return false
		}
		if query == "" {
			return true
		}
		if strings.Contains(strings.ToLower(b.Title), query) {
			return true
		}
		if b.Author != nil && strings.Contains(strings.ToLower(b.Author.FullName), query) {
			return true
		}
		return false
	})
}

func friendlyNotice(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.FriendlyMessage
	}
	return "Something unexpected happened. Please try again later."
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

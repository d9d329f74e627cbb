package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mindfulreader/internal/api"
	"mindfulreader/internal/defaults"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Mindful Reader"))
	if m.signedInName != "" {
		b.WriteString(m.styles.FaintText.Render("  welcome back, " + m.signedInName))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render(m.search.View()))
	b.WriteString("\n")
	b.WriteString(m.renderMoods())
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(m.styles.DangerText.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderShelf())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("↑/↓ move · tab mood · / search · r reload · t theme · q quit"))
	return b.String()
}

func (m Model) renderMoods() string {
	chips := make([]string, 0, len(Moods))
	for i, mood := range Moods {
		if i == m.moodIdx {
			chips = append(chips, m.styles.MoodChipActive.Render(mood))
		} else {
			chips = append(chips, m.styles.MoodChip.Render(mood))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) renderShelf() string {
	if m.pager.IsLoadingInitial() && m.pager.Len() == 0 {
		return m.styles.MutedText.Render("Gathering books…")
	}

	books := m.visible()
	if len(books) == 0 {
		var b strings.Builder
		b.WriteString(m.styles.Text.Render("Take a breath."))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("No books match this view right now."))
		b.WriteString("\n\n")
		b.WriteString(m.styles.FaintText.Render(m.quote))
		return b.String()
	}

	rows := m.rowBudget()
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(books) {
		end = len(books)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(books[i], i == m.cursor))
		b.WriteString("\n")
	}

	switch {
	case m.pager.IsLoadingMore():
		b.WriteString(m.styles.FaintText.Render("…finding more books"))
	case !m.pager.HasMore() && !m.searching():
		b.WriteString(m.styles.FaintText.Render(fmt.Sprintf("that's the whole shelf — %d books", m.pager.Len())))
	default:
		b.WriteString(m.styles.FaintText.Render(fmt.Sprintf("%d of %d loaded", len(books), m.pager.Len())))
	}
	return b.String()
}

func (m Model) renderRow(book api.Book, selected bool) string {
	title := defaults.Resolve(book.Title, defaults.Book.Title)
	author := defaults.Book.AuthorName
	if book.Author != nil {
		author = defaults.Resolve(book.Author.FullName, defaults.Book.AuthorName)
	}

	cover := "▣"
	if !defaults.ValidCoverURL(book.CoverImageURL) {
		// Placeholder art stands in for missing or mock cover URLs.
		cover = "▢"
	}

	line := fmt.Sprintf("%s %-40s %s", cover, truncate(title, 40), author)
	if book.Mood != "" {
		line += "  " + m.styles.FaintText.Render("· "+book.Mood)
	}
	if selected {
		return m.styles.Selected.Render("▸ " + line)
	}
	return m.styles.Text.Render("  " + line)
}

// rowBudget is how many shelf rows fit the current terminal, leaving room
// for the header, chips, and footer.
func (m Model) rowBudget() int {
	if m.height == 0 {
		return 15
	}
	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

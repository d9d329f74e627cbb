package browse

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the palette for the discovery view.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Text   string
	Muted  string
	Faint  string
	Accent string
	Danger string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		MoodChip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		MoodChipActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Padding(0, 1),
	}
}

// Styles holds the rendered styles for one theme.
type Styles struct {
	Title      lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	DangerText lipgloss.Style
	Selected   lipgloss.Style

	MoodChip       lipgloss.Style
	MoodChipActive lipgloss.Style

	Footer lipgloss.Style
}

var themes = map[string]Theme{
	"sage":  sageTheme(),
	"dusk":  duskTheme(),
	"paper": paperTheme(),
}

var themeOrder = []string{"sage", "dusk", "paper"}

// GetTheme returns a theme by name, falling back to sage.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return sageTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func sageTheme() Theme {
	return Theme{
		Name:          "sage",
		Background:    "#1c2420",
		Surface:       "#232d28",
		SelectionBg:   "#3a5a4a",
		SelectionText: "#e8efe9",
		Text:          "#d7e0d8",
		Muted:         "#8aa391",
		Faint:         "#5f7466",
		Accent:        "#9ec9a8",
		Danger:        "#d48a8a",
	}
}

func duskTheme() Theme {
	return Theme{
		Name:          "dusk",
		Background:    "#1d1b26",
		Surface:       "#272434",
		SelectionBg:   "#4b4368",
		SelectionText: "#ece9f4",
		Text:          "#dcd8e8",
		Muted:         "#9a92b5",
		Faint:         "#6c6585",
		Accent:        "#b3a5dd",
		Danger:        "#d98a9e",
	}
}

func paperTheme() Theme {
	return Theme{
		Name:          "paper",
		Background:    "#f4efe6",
		Surface:       "#ece5d8",
		SelectionBg:   "#c9b998",
		SelectionText: "#2b2618",
		Text:          "#3a3426",
		Muted:         "#7d7461",
		Faint:         "#a39a86",
		Accent:        "#6b7f5a",
		Danger:        "#a65353",
	}
}

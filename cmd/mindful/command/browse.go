package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mindfulreader/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive discovery shelf",
	Long: `Open the full-screen discovery view: an endless shelf of books,
filtered by mood, with search over everything loaded so far. More books
arrive as you scroll toward the bottom.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, _ := cmd.Flags().GetString("mood")
		if mood == "" {
			mood = prefs.DefaultMood
		}
		theme, _ := cmd.Flags().GetString("theme")
		if theme == "" {
			theme = prefs.Theme
		}

		model := browse.New(browse.Options{
			Context:   cmd.Context(),
			Client:    apiClient,
			Session:   sess,
			PageSize:  prefs.PageSize,
			Mood:      mood,
			ThemeName: theme,
		})

		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("running discovery view: %w", err)
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().String("mood", "", "Starting mood filter (default from preferences)")
	browseCmd.Flags().String("theme", "", "Color theme: sage, dusk, paper")

	rootCmd.AddCommand(browseCmd)
}

package command

// root.go defines the root command for the mindful CLI. Global state shared
// by every subcommand (config, session store, API client) is initialized in
// the persistent pre-run so flags are already parsed.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindfulreader/internal/api"
	"mindfulreader/internal/config"
	"mindfulreader/internal/session"
)

var (
	apiURL string // global flag for the API base URL

	cfg       *config.Config
	prefs     config.Prefs
	sess      *session.Store
	apiClient *api.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mindful",
	Short: "mindful - the Mindful Reader command line",
	Long: `mindful is the command line companion to the Mindful Reader library.
Browse an endless shelf of books by mood, read and share reflections,
and manage the catalogue if you hold an admin account.

Use "mindful <command> --help" to see all available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		if apiURL != "" {
			cfg.APIBaseURL = apiURL
		}

		prefs = config.LoadPrefs(config.PrefsPath(cfg.HomeDir))
		sess = session.NewStore(cfg.HomeDir)
		apiClient = api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sess)
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (overrides MINDFUL_API_URL)")
}

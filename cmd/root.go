// ABOUTME: Root command for the campus CLI
// ABOUTME: Handles global flags and launches the TUI when no subcommand is given

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/config"
	"github.com/campus-companion/cli/internal/credstore"
	"github.com/campus-companion/cli/internal/logging"
	"github.com/campus-companion/cli/internal/session"
	"github.com/campus-companion/cli/internal/tui"
)

var (
	apiURL     string
	jsonOutput bool
	debug      bool
)

// rootCmd is the base command. Running it without a subcommand opens the
// full-screen TUI.
var rootCmd = &cobra.Command{
	Use:   "campus",
	Short: "Terminal client for the Campus Companion record store",
	Long: `campus is a terminal client for managing your timetable, assignments,
attendance, notes, and events against a Campus Companion server.

Run without arguments to open the interactive TUI, or use the subcommands
for scripting.

Environment Variables:
  CAMPUS_API_URL     Record store base URL (default: http://localhost:5000)
  CAMPUS_CONFIG_DIR  Directory for the session token and debug log
  CAMPUS_DEBUG       Enable debug logging (true/false)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(apiURL)
		if err := logging.Init(cfg.ConfigDir, debug || cfg.Debug); err != nil {
			return err
		}
		defer logging.Close()

		sess, api := newSession()
		sess.Resolve()
		return tui.Run(sess, client.NewResources(api))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Record store base URL (overrides CAMPUS_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSession builds the client stack for one command invocation.
func newSession() (*session.Manager, *client.Client) {
	cfg := config.Load(apiURL)
	store := credstore.New(cfg.ConfigDir)
	api := client.New(cfg.APIURL, store)
	return session.NewManager(store, api), api
}

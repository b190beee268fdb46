// ABOUTME: Whoami command for the campus CLI
// ABOUTME: Shows the identity decoded from the stored session token

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/campus-companion/cli/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Long: `Show the account identity decoded from the stored session token.

Exit codes:
  0 - Signed in
  1 - No valid session (missing, malformed, or expired token)`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami resolves the stored session and reports the identity
func runWhoami(w io.Writer) int {
	sess, _ := newSession()
	sess.Resolve()

	id, ok := sess.Identity()
	if !ok {
		fmt.Fprintln(w, "Not logged in. Run 'campus login' first.")
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatWhoamiJSON(id))
	} else {
		fmt.Fprintln(w, formatWhoamiHuman(id))
	}
	return 0
}

// formatWhoamiHuman formats the identity for human readability
func formatWhoamiHuman(id session.Identity) string {
	return fmt.Sprintf("Name:  %s\nEmail: %s", id.Name, id.Email)
}

// formatWhoamiJSON formats the identity as JSON
func formatWhoamiJSON(id session.Identity) string {
	out, _ := json.MarshalIndent(map[string]string{
		"id":    id.ID,
		"name":  id.Name,
		"email": id.Email,
	}, "", "  ")
	return string(out)
}

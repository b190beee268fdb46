// ABOUTME: Logout command for the campus CLI
// ABOUTME: Clears the stored session token

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session token",
	Run: func(cmd *cobra.Command, args []string) {
		runLogout(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the credential. Logout never fails, even with no stored
// session.
func runLogout(w io.Writer) {
	sess, _ := newSession()
	sig := sess.Logout()
	fmt.Fprintln(w, sig.Message)
}

// ABOUTME: Login command for the campus CLI
// ABOUTME: Exchanges credentials for a stored session token

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/campus-companion/cli/internal/tui/forms"
	"github.com/campus-companion/cli/internal/validate"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	Long: `Sign in against the record store and persist the session token.

Exit codes:
  0 - Signed in
  1 - Rejected credentials or connectivity failure
  2 - Invalid input`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}

// runLogin executes the login exchange and returns an exit code
func runLogin(ctx context.Context, w io.Writer) int {
	if loginEmail == "" {
		fmt.Fprintln(w, "Error: --email is required")
		return 2
	}
	if loginPassword == "" {
		if err := promptPassword(&loginPassword); err != nil {
			fmt.Fprintln(w, "Error: --password is required")
			return 2
		}
	}

	sess, _ := newSession()
	ok, sig := sess.Login(ctx, loginEmail, loginPassword)
	fmt.Fprintln(w, sig.Message)
	if !ok {
		return 1
	}
	return 0
}

// promptPassword captures the password interactively when the flag is absent.
func promptPassword(dst *string) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validate.MinLen("password", 6)).
			Value(dst),
	)).WithTheme(forms.Theme())
	return form.Run()
}

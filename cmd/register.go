// ABOUTME: Register command for the campus CLI
// ABOUTME: Creates an account; a separate login follows

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/validate"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account on the record store. Registration never signs you
in; run 'campus login' afterwards.

Exit codes:
  0 - Account created
  1 - Rejected by the store or connectivity failure
  2 - Invalid input`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (6 characters minimum)")
}

// runRegister executes the registration and returns an exit code
func runRegister(ctx context.Context, w io.Writer) int {
	input := client.RegisterInput{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
	}
	if err := validate.Struct(input); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	sess, _ := newSession()
	ok, sig := sess.Register(ctx, input)
	fmt.Fprintln(w, sig.Message)
	if !ok {
		return 1
	}
	return 0
}

// ABOUTME: Entry point for the campus CLI
// ABOUTME: Terminal client for the Campus Companion record store

package main

import (
	"fmt"
	"os"

	"github.com/campus-companion/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

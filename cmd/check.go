// ABOUTME: Check command for the campus CLI
// ABOUTME: Validates attendance against a threshold for scripted alerts

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/derive"
)

var attendanceThreshold int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check attendance and due assignments",
	Long: `Check every subject's attendance percentage against a threshold and
flag pending assignments past their due date. Useful from cron or
shell scripts.

Exit codes:
  0 - All subjects at or above the threshold, nothing overdue
  1 - One or more subjects below the threshold, or overdue assignments
  2 - Error (not logged in, connectivity, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCheck(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVar(&attendanceThreshold, "attendance-threshold", 75, "Minimum attendance percentage")
}

// checkResult represents one subject's threshold check
type checkResult struct {
	subject   string
	percent   float64
	threshold float64
	passed    bool
}

// runCheck executes the attendance checks and returns an exit code
func runCheck(ctx context.Context, w io.Writer) int {
	if attendanceThreshold < 0 || attendanceThreshold > 100 {
		fmt.Fprintln(w, "Error: --attendance-threshold must be between 0 and 100")
		return 2
	}

	sess, api := newSession()
	sess.Resolve()
	if !sess.Authenticated() {
		fmt.Fprintln(w, "Not logged in. Run 'campus login' first.")
		return 2
	}

	res := client.NewResources(api)
	records, err := res.Attendance.List(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	assignments, err := res.Assignments.List(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	results := performChecks(records, float64(attendanceThreshold))
	overdue := derive.OverduePending(assignments, time.Now())

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results, overdue))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results, overdue))
	}

	if _, failed := countResults(results); failed > 0 || overdue > 0 {
		return 1
	}
	return 0
}

// performChecks evaluates every subject against the threshold
func performChecks(records []client.AttendanceSubject, threshold float64) []checkResult {
	var results []checkResult
	for _, rec := range records {
		percent := derive.SubjectPercentage(rec)
		results = append(results, checkResult{
			subject:   rec.Subject,
			percent:   percent,
			threshold: threshold,
			passed:    percent >= threshold,
		})
	}
	return results
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult, overdue int) string {
	var output string
	if len(results) == 0 {
		output = "No attendance records found\n"
	}
	for _, r := range results {
		symbol := "✓"
		if !r.passed {
			symbol = "✗"
		}
		output += fmt.Sprintf("%s %s: %.1f%% (threshold: %.0f%%)\n",
			symbol, r.subject, r.percent, r.threshold)
	}

	if overdue > 0 {
		output += fmt.Sprintf("✗ Assignments: %d overdue and still pending\n", overdue)
	} else {
		output += "✓ Assignments: nothing overdue\n"
	}

	passed, failed := countResults(results)
	switch {
	case failed > 0 && overdue > 0:
		output += fmt.Sprintf("\nFAILED: %d subject(s) below threshold, %d assignment(s) overdue", failed, overdue)
	case failed > 0:
		output += fmt.Sprintf("\nFAILED: %d subject(s) below threshold", failed)
	case overdue > 0:
		output += fmt.Sprintf("\nFAILED: %d assignment(s) overdue", overdue)
	default:
		output += fmt.Sprintf("\nPASSED: %d subject(s) on track", passed)
	}
	return output
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult, overdue int) string {
	type jsonResult struct {
		Subject   string  `json:"subject"`
		Percent   float64 `json:"percent"`
		Threshold float64 `json:"threshold"`
		Passed    bool    `json:"passed"`
	}

	payload := struct {
		Results []jsonResult `json:"results"`
		Overdue int          `json:"overdue"`
		Passed  int          `json:"passed"`
		Failed  int          `json:"failed"`
	}{Results: []jsonResult{}, Overdue: overdue}

	for _, r := range results {
		payload.Results = append(payload.Results, jsonResult{
			Subject:   r.subject,
			Percent:   r.percent,
			Threshold: r.threshold,
			Passed:    r.passed,
		})
	}
	payload.Passed, payload.Failed = countResults(results)

	out, _ := json.MarshalIndent(payload, "", "  ")
	return string(out)
}

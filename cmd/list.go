// ABOUTME: List command for the campus CLI
// ABOUTME: Prints one resource collection for scripting and quick checks

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/derive"
)

var listCmd = &cobra.Command{
	Use:   "list {timetable|assignments|attendance|notes|events}",
	Short: "List one resource collection",
	Long: `Fetch and print one of the five resource collections.

Exit codes:
  0 - Listed
  1 - Fetch failed
  2 - Not logged in or invalid resource name`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runList(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList fetches the named collection and returns an exit code
func runList(ctx context.Context, w io.Writer, resource string) int {
	sess, api := newSession()
	sess.Resolve()
	if !sess.Authenticated() {
		fmt.Fprintln(w, "Not logged in. Run 'campus login' first.")
		return 2
	}

	res := client.NewResources(api)
	var (
		out string
		err error
	)
	switch resource {
	case "timetable":
		var items []client.TimetableEntry
		if items, err = res.Timetable.List(ctx); err == nil {
			out = formatList(items, formatTimetable)
		}
	case "assignments":
		var items []client.Assignment
		if items, err = res.Assignments.List(ctx); err == nil {
			out = formatList(items, formatAssignments)
		}
	case "attendance":
		var items []client.AttendanceSubject
		if items, err = res.Attendance.List(ctx); err == nil {
			out = formatList(items, formatAttendance)
		}
	case "notes":
		var items []client.Note
		if items, err = res.Notes.List(ctx); err == nil {
			out = formatList(items, formatNotes)
		}
	case "events":
		var items []client.Event
		if items, err = res.Events.List(ctx); err == nil {
			out = formatList(items, formatEvents)
		}
	default:
		fmt.Fprintf(w, "Error: unknown resource %q\n", resource)
		return 2
	}

	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, out)
	return 0
}

// formatList renders items as JSON or via the human formatter.
func formatList[T any](items []T, human func([]T) string) string {
	if IsJSONOutput() {
		out, _ := json.MarshalIndent(items, "", "  ")
		return string(out)
	}
	if len(items) == 0 {
		return "(empty)"
	}
	return human(items)
}

// formatTimetable formats timetable entries grouped by weekday
func formatTimetable(items []client.TimetableEntry) string {
	var sb strings.Builder
	for _, day := range derive.GroupByDay(items) {
		if len(day.Entries) == 0 {
			continue
		}
		sb.WriteString(day.Day + "\n")
		for _, e := range day.Entries {
			sb.WriteString(fmt.Sprintf("  %s-%s  %s  %s  %s\n",
				derive.NormalizeClock(e.StartTime), derive.NormalizeClock(e.EndTime),
				e.Subject, e.Room, e.Instructor))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatAssignments formats assignments with status and priority
func formatAssignments(items []client.Assignment) string {
	var sb strings.Builder
	for _, a := range items {
		mark := " "
		if a.Status == client.StatusCompleted {
			mark = "x"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s  %s  %s  due %s\n",
			mark, a.Title, a.Subject, a.Priority, a.DueDate.Format("2006-01-02")))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatAttendance formats attendance records with percentages and bands
func formatAttendance(items []client.AttendanceSubject) string {
	var sb strings.Builder
	for _, rec := range items {
		percent := derive.SubjectPercentage(rec)
		sb.WriteString(fmt.Sprintf("%s  %d/%d  %.1f%%  %s\n",
			rec.Subject, rec.AttendedClasses, rec.TotalClasses, percent, derive.Classify(percent)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatNotes formats notes with tags and summaries
func formatNotes(items []client.Note) string {
	var sb strings.Builder
	for _, n := range items {
		sb.WriteString(fmt.Sprintf("%s  %s", n.Title, n.Subject))
		if len(n.Tags) > 0 {
			sb.WriteString("  #" + strings.Join(n.Tags, " #"))
		}
		sb.WriteString("\n")
		if n.Summary != "" {
			sb.WriteString("  " + n.Summary + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatEvents formats events with date, type, and location
func formatEvents(items []client.Event) string {
	var sb strings.Builder
	for _, e := range items {
		sb.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			e.Date.Format("2006-01-02"), e.Title, e.Type, e.Location))
	}
	return strings.TrimRight(sb.String(), "\n")
}

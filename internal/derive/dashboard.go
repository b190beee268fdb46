// ABOUTME: Dashboard aggregate counts over the five fetched resource lists
// ABOUTME: The upcoming-event boundary is fixed at fetch time, not render time

package derive

import (
	"time"

	"github.com/campus-companion/cli/internal/client"
)

// Stats holds the dashboard's aggregate counts.
type Stats struct {
	Assignments        int
	PendingAssignments int
	Subjects           int
	LowAttendance      int // subjects below 75%
	Notes              int
	UpcomingEvents     int // events dated now or later
}

// ComputeStats aggregates the independently-fetched lists. now is the
// wall-clock captured when the event list was fetched.
func ComputeStats(
	assignments []client.Assignment,
	attendance []client.AttendanceSubject,
	notes []client.Note,
	events []client.Event,
	now time.Time,
) Stats {
	s := Stats{
		Assignments: len(assignments),
		Subjects:    len(attendance),
		Notes:       len(notes),
	}
	for _, a := range assignments {
		if a.Status == client.StatusPending {
			s.PendingAssignments++
		}
	}
	for _, rec := range attendance {
		if SubjectPercentage(rec) < 75 {
			s.LowAttendance++
		}
	}
	for _, e := range events {
		if !e.Date.Before(now) {
			s.UpcomingEvents++
		}
	}
	return s
}

// OverduePending counts assignments still pending past their due date.
func OverduePending(assignments []client.Assignment, now time.Time) int {
	var n int
	for _, a := range assignments {
		if a.Status == client.StatusPending && a.DueDate.Before(now) {
			n++
		}
	}
	return n
}

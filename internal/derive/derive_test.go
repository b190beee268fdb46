// ABOUTME: Tests for derived view computations
// ABOUTME: Covers band boundaries, grouping invariants, and aggregate counts

package derive

import (
	"testing"
	"time"

	"github.com/campus-companion/cli/internal/client"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		attended, total int
		want            float64
	}{
		{8, 10, 80},
		{0, 10, 0},
		{10, 10, 100},
		{0, 0, 0}, // no classes yet: defined as 0, not NaN
		{3, 4, 75},
	}
	for _, tc := range cases {
		got := Percentage(tc.attended, tc.total)
		if got != tc.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", tc.attended, tc.total, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Errorf("Percentage(%d, %d) = %v out of range", tc.attended, tc.total, got)
		}
	}
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want Band
	}{
		{100, BandGood},
		{80, BandGood},
		{75, BandGood}, // closed boundary
		{74.999, BandWarning},
		{70, BandWarning},
		{65, BandWarning}, // closed boundary
		{64.999, BandCritical},
		{0, BandCritical},
	}
	for _, tc := range cases {
		if got := Classify(tc.pct); got != tc.want {
			t.Errorf("Classify(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestGroupByDay_Partition(t *testing.T) {
	entries := []client.TimetableEntry{
		{ID: "1", Day: "Monday", StartTime: "10:00", Subject: "Math"},
		{ID: "2", Day: "Monday", StartTime: "9:00", Subject: "Physics"},
		{ID: "3", Day: "Friday", StartTime: "14:00", Subject: "Chemistry"},
		{ID: "4", Day: "Monday", StartTime: "09:00", Subject: "Lab"},
	}

	grouped := GroupByDay(entries)

	if len(grouped) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(grouped))
	}
	total := 0
	seen := map[string]bool{}
	for _, day := range grouped {
		for _, e := range day.Entries {
			if seen[e.ID] {
				t.Errorf("entry %s appears twice", e.ID)
			}
			seen[e.ID] = true
			total++
		}
	}
	if total != len(entries) {
		t.Errorf("expected %d entries across buckets, got %d", len(entries), total)
	}
}

func TestGroupByDay_SortStableAscending(t *testing.T) {
	entries := []client.TimetableEntry{
		{ID: "late", Day: "Monday", StartTime: "10:00"},
		{ID: "early-a", Day: "Monday", StartTime: "9:00"},
		{ID: "early-b", Day: "Monday", StartTime: "09:00"}, // same instant as early-a
	}

	grouped := GroupByDay(entries)
	monday := grouped[0]

	if monday.Day != "Monday" {
		t.Fatalf("expected Monday first, got %s", monday.Day)
	}
	if len(monday.Entries) != 3 {
		t.Fatalf("expected 3 Monday entries, got %d", len(monday.Entries))
	}
	// Ascending by start time; the 9:00 tie keeps fetched order.
	wantOrder := []string{"early-a", "early-b", "late"}
	for i, want := range wantOrder {
		if monday.Entries[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, monday.Entries[i].ID)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	cases := map[string]string{
		"9:05":  "09:05",
		"09:05": "09:05",
		"14:30": "14:30",
	}
	for in, want := range cases {
		if got := NormalizeClock(in); got != want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assignments := []client.Assignment{
		{ID: "a1", Status: client.StatusPending},
		{ID: "a2", Status: client.StatusCompleted},
		{ID: "a3", Status: client.StatusPending},
	}
	attendance := []client.AttendanceSubject{
		{ID: "s1", TotalClasses: 10, AttendedClasses: 8, Percentage: 80},
		{ID: "s2", TotalClasses: 10, AttendedClasses: 6, Percentage: 60},
		{ID: "s3", TotalClasses: 4, AttendedClasses: 3, Percentage: 75}, // exactly 75 is not low
	}
	notes := []client.Note{{ID: "n1"}, {ID: "n2"}}
	events := []client.Event{
		{ID: "e1", Date: now.Add(24 * time.Hour)},
		{ID: "e2", Date: now},                   // boundary: today counts as upcoming
		{ID: "e3", Date: now.Add(-time.Minute)}, // already past
	}

	s := ComputeStats(assignments, attendance, notes, events, now)

	if s.Assignments != 3 || s.PendingAssignments != 2 {
		t.Errorf("assignment counts wrong: %+v", s)
	}
	if s.Subjects != 3 || s.LowAttendance != 1 {
		t.Errorf("attendance counts wrong: %+v", s)
	}
	if s.Notes != 2 {
		t.Errorf("note count wrong: %+v", s)
	}
	if s.UpcomingEvents != 2 {
		t.Errorf("upcoming events wrong: %+v", s)
	}
}

func TestSubjectPercentage_FallsBackToLocal(t *testing.T) {
	rec := client.AttendanceSubject{TotalClasses: 10, AttendedClasses: 8}
	if got := SubjectPercentage(rec); got != 80 {
		t.Errorf("expected local fallback of 80, got %v", got)
	}

	rec = client.AttendanceSubject{TotalClasses: 10, AttendedClasses: 8, Percentage: 80}
	if got := SubjectPercentage(rec); got != 80 {
		t.Errorf("expected server percentage, got %v", got)
	}
}

func TestOverduePending(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	assignments := []client.Assignment{
		{Title: "Late and pending", Status: client.StatusPending, DueDate: now.Add(-24 * time.Hour)},
		{Title: "Late but done", Status: client.StatusCompleted, DueDate: now.Add(-24 * time.Hour)},
		{Title: "Not yet due", Status: client.StatusPending, DueDate: now.Add(24 * time.Hour)},
	}

	if got := OverduePending(assignments, now); got != 1 {
		t.Errorf("OverduePending = %d, want 1", got)
	}
	if got := OverduePending(nil, now); got != 0 {
		t.Errorf("OverduePending(nil) = %d, want 0", got)
	}
}

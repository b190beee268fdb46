// ABOUTME: Day-of-week grouping and intra-day ordering for the timetable
// ABOUTME: Pure partition over a fetched entry list, no item lost or duplicated

package derive

import (
	"sort"
	"strings"

	"github.com/campus-companion/cli/internal/client"
)

// Days are the seven fixed day literals in display order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DaySchedule is one day's bucket of classes in start-time order.
type DaySchedule struct {
	Day     string
	Entries []client.TimetableEntry
}

// GroupByDay partitions entries across the seven day literals. Within each
// day the sort is stable and ascending on the zero-padded HH:MM start time,
// so same-start entries keep their fetched order. Entries carrying an
// unknown day literal are dropped rather than misfiled.
func GroupByDay(entries []client.TimetableEntry) []DaySchedule {
	buckets := make(map[string][]client.TimetableEntry, len(Days))
	for _, e := range entries {
		buckets[e.Day] = append(buckets[e.Day], e)
	}

	grouped := make([]DaySchedule, 0, len(Days))
	for _, day := range Days {
		bucket := buckets[day]
		sort.SliceStable(bucket, func(i, j int) bool {
			return NormalizeClock(bucket[i].StartTime) < NormalizeClock(bucket[j].StartTime)
		})
		grouped = append(grouped, DaySchedule{Day: day, Entries: bucket})
	}
	return grouped
}

// NormalizeClock zero-pads a wall-clock time to HH:MM so lexicographic
// comparison matches chronological order ("9:05" sorts after "10:00"
// otherwise).
func NormalizeClock(t string) string {
	if i := strings.IndexByte(t, ':'); i == 1 {
		return "0" + t
	}
	return t
}

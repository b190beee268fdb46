// ABOUTME: Attendance percentage and classification bands
// ABOUTME: Pure computations over fetched attendance records

package derive

import "github.com/campus-companion/cli/internal/client"

// Band classifies an attendance percentage.
type Band int

const (
	BandGood     Band = iota // >= 75
	BandWarning              // 65 to < 75
	BandCritical             // < 65
)

func (b Band) String() string {
	switch b {
	case BandGood:
		return "good"
	case BandWarning:
		return "warning"
	default:
		return "critical"
	}
}

// Percentage computes attended/total as a percentage. A subject with no
// classes yet is 0%, never a division by zero.
func Percentage(attended, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(attended) / float64(total) * 100
}

// Classify maps a percentage onto exactly one band. Boundaries are closed as
// displayed to students: 75 is good, 65 is warning.
func Classify(percentage float64) Band {
	switch {
	case percentage >= 75:
		return BandGood
	case percentage >= 65:
		return BandWarning
	default:
		return BandCritical
	}
}

// SubjectPercentage returns the record's server-derived percentage, falling
// back to the local computation when the store omitted it.
func SubjectPercentage(s client.AttendanceSubject) float64 {
	if s.Percentage > 0 || s.AttendedClasses == 0 {
		return s.Percentage
	}
	return Percentage(s.AttendedClasses, s.TotalClasses)
}

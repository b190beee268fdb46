// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges for priorities, bands, and event types

package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/derive"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	badgeOKBg      = lipgloss.Color("#10B981")
	badgeOKFg      = lipgloss.Color("#FFFFFF")
	badgeWarnBg    = lipgloss.Color("#F59E0B")
	badgeWarnFg    = lipgloss.Color("#000000")
	badgeCritBg    = lipgloss.Color("#EF4444")
	badgeCritFg    = lipgloss.Color("#FFFFFF")
	badgeInfoBg    = lipgloss.Color("#3B82F6")
	badgeInfoFg    = lipgloss.Color("#FFFFFF")
	badgeNeutralBg = lipgloss.Color("#6B7280")
	badgeNeutralFg = lipgloss.Color("#FFFFFF")
	badgeFestBg    = lipgloss.Color("#8B5CF6")
	badgeFestFg    = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg, fg lipgloss.Color

	switch level {
	case StatusOK:
		bg, fg = badgeOKBg, badgeOKFg
	case StatusWarning:
		bg, fg = badgeWarnBg, badgeWarnFg
	case StatusCritical:
		bg, fg = badgeCritBg, badgeCritFg
	case StatusInfo:
		bg, fg = badgeInfoBg, badgeInfoFg
	default:
		bg, fg = badgeNeutralBg, badgeNeutralFg
	}

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Render(text)
}

// PriorityBadge renders an assignment priority badge.
func PriorityBadge(priority string) string {
	switch priority {
	case client.PriorityHigh:
		return Badge("high", StatusCritical)
	case client.PriorityMedium:
		return Badge("medium", StatusWarning)
	case client.PriorityLow:
		return Badge("low", StatusOK)
	default:
		return Badge(priority, StatusNeutral)
	}
}

// BandBadge renders an attendance classification badge.
func BandBadge(band derive.Band) string {
	switch band {
	case derive.BandGood:
		return Badge("good", StatusOK)
	case derive.BandWarning:
		return Badge("warning", StatusWarning)
	default:
		return Badge("critical", StatusCritical)
	}
}

// EventBadge renders an event type badge.
func EventBadge(eventType string) string {
	switch eventType {
	case client.EventExam:
		return Badge("exam", StatusCritical)
	case client.EventFest:
		return lipgloss.NewStyle().
			Background(badgeFestBg).
			Foreground(badgeFestFg).
			Padding(0, 1).
			Render("fest")
	case client.EventHoliday:
		return Badge("holiday", StatusOK)
	default:
		return Badge("other", StatusInfo)
	}
}

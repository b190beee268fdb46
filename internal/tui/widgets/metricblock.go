// ABOUTME: Compact metric block widget for dashboard displays
// ABOUTME: Combines icon, value, and subtitle in a bordered panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/campus-companion/cli/internal/tui/icons"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       24,
		BorderColor: lipgloss.Color("#6B7280"),
		TitleColor:  lipgloss.Color("#3B82F6"),
		ValueColor:  lipgloss.Color("#F9FAFB"),
	}
}

// MetricBlock renders a compact metric display block with the title set
// into the top border.
func MetricBlock(icon icons.Icon, title string, value string, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 24
	}

	innerWidth := config.Width - 4

	titleStr := fmt.Sprintf("%s %s", icon.String(), title)
	if len(titleStr) > innerWidth {
		titleStr = titleStr[:innerWidth]
	}

	titleStyle := lipgloss.NewStyle().Foreground(config.TitleColor)

	topBorder := fmt.Sprintf("┌─ %s %s┐",
		titleStyle.Render(titleStr),
		strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1)))

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	valueLine := fmt.Sprintf("│  %s%s│", valueStyle.Render(value),
		strings.Repeat(" ", max(0, innerWidth-lipgloss.Width(value))))

	subtitleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	subtitleLine := fmt.Sprintf("│  %s%s│", subtitleStyle.Render(subtitle),
		strings.Repeat(" ", max(0, innerWidth-lipgloss.Width(subtitle))))

	bottomBorder := fmt.Sprintf("└%s┘", strings.Repeat("─", config.Width-2))

	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	return strings.Join([]string{
		borderStyle.Render(topBorder),
		borderStyle.Render(valueLine),
		borderStyle.Render(subtitleLine),
		borderStyle.Render(bottomBorder),
	}, "\n")
}

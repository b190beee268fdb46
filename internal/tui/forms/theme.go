// ABOUTME: Shared huh theme for every capture form in the TUI
// ABOUTME: Keeps form styling consistent with the app's blue palette

package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the huh theme used by every form in the app.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	blue := lipgloss.Color("#3B82F6")
	blueLight := lipgloss.Color("#60A5FA")
	gray := lipgloss.Color("#9CA3AF")
	grayLight := lipgloss.Color("#E5E7EB")
	red := lipgloss.Color("#F87171")
	slate := lipgloss.Color("#334155")

	t.Group.Title = lipgloss.NewStyle().
		Foreground(blue).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(gray).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(blue)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(blueLight).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(red).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(red)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(blue).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(grayLight)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(blue).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(blue)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(blue)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(grayLight)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(blue).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(gray).
		Background(slate).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(gray).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(gray)

	return t
}

// ABOUTME: Transient toast display for per-action success/error signals
// ABOUTME: Shows one notification at a time and expires it after a few seconds

package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campus-companion/cli/internal/notify"
	"github.com/campus-companion/cli/internal/tui/icons"
	"github.com/campus-companion/cli/internal/tui/styles"
)

// visibleFor is how long one toast stays on screen.
const visibleFor = 4 * time.Second

// ShowMsg asks the app to display one signal. Screens emit this after each
// action; a later toast replaces the current one, never stacks on it.
type ShowMsg struct {
	Signal notify.Signal
}

// Show wraps a signal in a command for screen update loops.
func Show(sig notify.Signal) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Signal: sig}
	}
}

// expireMsg hides the toast identified by seq.
type expireMsg struct {
	seq int
}

// Model is the toast display state.
type Model struct {
	current notify.Signal
	visible bool
	seq     int
}

// New creates an empty toast model.
func New() *Model {
	return &Model{}
}

// Display shows a signal and schedules its expiry. The sequence number makes
// sure an old expiry tick cannot hide a newer toast.
func (m *Model) Display(sig notify.Signal) tea.Cmd {
	m.current = sig
	m.visible = true
	m.seq++
	seq := m.seq
	return tea.Tick(visibleFor, func(time.Time) tea.Msg {
		return expireMsg{seq: seq}
	})
}

// Update handles expiry ticks.
func (m *Model) Update(msg tea.Msg) {
	if exp, ok := msg.(expireMsg); ok && exp.seq == m.seq {
		m.visible = false
	}
}

// View renders the current toast, or empty when none is visible.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	if m.current.IsError() {
		return styles.StatusCritical.Render(icons.Critical.String() + " " + m.current.Message)
	}
	return styles.StatusOK.Render(icons.CheckOK.String() + " " + m.current.Message)
}

// Visible reports whether a toast is currently shown.
func (m *Model) Visible() bool { return m.visible }

// Width returns the rendered toast width, for frame layout.
func (m *Model) Width() int {
	return lipgloss.Width(m.View())
}

// ABOUTME: Attendance screen listing per-subject counters with classification bands
// ABOUTME: Supports add, delete, present/absent marking, and refresh

package attendance

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/huh"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/derive"
	"github.com/campus-companion/cli/internal/notify"
	"github.com/campus-companion/cli/internal/tui/forms"
	"github.com/campus-companion/cli/internal/tui/icons"
	"github.com/campus-companion/cli/internal/tui/styles"
	"github.com/campus-companion/cli/internal/tui/toast"
	"github.com/campus-companion/cli/internal/tui/widgets"
	"github.com/campus-companion/cli/internal/validate"
)

const barWidth = 20

// BackMsg asks the app to return to the dashboard.
type BackMsg struct{}

// listMsg carries one fetch result, tagged by the fetch sequence number.
type listMsg struct {
	seq   int
	items []client.AttendanceSubject
	err   error
}

// mutatedMsg reports one finished mutation.
type mutatedMsg struct {
	sig     notify.Signal
	refetch bool
}

// Model is the attendance screen.
type Model struct {
	col     *client.Collection[client.AttendanceSubject]
	items   []client.AttendanceSubject
	loading bool
	failed  bool
	cursor  int
	seq     int
	width   int

	form     *huh.Form
	subject  string
	total    string
	attended string
}

// New creates the attendance screen.
func New(col *client.Collection[client.AttendanceSubject]) *Model {
	return &Model{col: col}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.fetch()
}

func (m *Model) fetch() tea.Cmd {
	m.seq++
	m.loading = true
	seq := m.seq
	return func() tea.Msg {
		items, err := m.col.List(context.Background())
		return listMsg{seq: seq, items: items, err: err}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.form == nil {
			return m, nil
		}

	case listMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.items = nil
			m.failed = true
			return m, toast.Show(notify.FromError(msg.err, "Failed to load attendance records"))
		}
		m.failed = false
		m.items = msg.items
		m.clampCursor()
		return m, nil

	case mutatedMsg:
		if msg.refetch {
			return m, tea.Batch(toast.Show(msg.sig), m.fetch())
		}
		return m, toast.Show(msg.sig)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "a":
			return m, m.startAdd()
		case "d":
			if item, ok := m.selected(); ok {
				return m, m.remove(item.ID)
			}
		case "p", " ":
			if item, ok := m.selected(); ok {
				return m, m.mark(item.ID, true)
			}
		case "x":
			if item, ok := m.selected(); ok {
				return m, m.mark(item.ID, false)
			}
		case "r":
			return m, m.fetch()
		case "b", "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	return m, nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil
		total, _ := strconv.Atoi(strings.TrimSpace(m.total))
		attended, _ := strconv.Atoi(strings.TrimSpace(m.attended))
		input := client.AttendanceInput{
			Subject:         m.subject,
			TotalClasses:    total,
			AttendedClasses: attended,
		}
		// Attended can never exceed total; enforced here at capture, not
		// trusted to the store.
		if err := validate.Struct(input); err != nil {
			return m, toast.Show(notify.Error(err.Error()))
		}
		return m, m.create(input)
	case huh.StateAborted:
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) startAdd() tea.Cmd {
	m.subject = ""
	m.total = "0"
	m.attended = "0"
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Validate(validate.NotBlank("subject")).
				Value(&m.subject),
			huh.NewInput().
				Title("Total classes").
				Validate(validate.NonNegativeInt("total classes")).
				Value(&m.total),
			huh.NewInput().
				Title("Attended classes").
				Validate(validate.NonNegativeInt("attended classes")).
				Value(&m.attended),
		).Title("New attendance record"),
	).WithTheme(forms.Theme())
	return m.form.Init()
}

func (m *Model) create(input client.AttendanceInput) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Create(context.Background(), input); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to add attendance record")}
		}
		return mutatedMsg{sig: notify.Success("Attendance record added successfully"), refetch: true}
	}
}

func (m *Model) remove(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Remove(context.Background(), id); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to delete attendance record")}
		}
		return mutatedMsg{sig: notify.Success("Attendance record deleted successfully"), refetch: true}
	}
}

// mark records one class as attended or missed.
func (m *Model) mark(id string, attended bool) tea.Cmd {
	return func() tea.Msg {
		payload := client.AttendanceMark{Attended: attended}
		if err := m.col.Patch(context.Background(), id, client.ActionUpdate, payload); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to update attendance")}
		}
		return mutatedMsg{sig: notify.Success("Attendance updated successfully"), refetch: true}
	}
}

func (m *Model) selected() (client.AttendanceSubject, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return client.AttendanceSubject{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.Attendance.String() + " Attendance"))
	sb.WriteString("\n")

	if m.form != nil {
		sb.WriteString(m.form.View())
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(styles.Subtitle.Render("Loading attendance records..."))
	case m.failed:
		sb.WriteString(styles.StatusCritical.Render("Failed to load attendance records"))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("r Retry"))
	case len(m.items) == 0:
		sb.WriteString(styles.Subtitle.Render("No attendance records found"))
	default:
		for i, item := range m.items {
			sb.WriteString(m.renderRow(i, item))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("a Add  d Delete  p Present  x Absent  r Refresh  b Back"))
	return sb.String()
}

func (m *Model) renderRow(i int, item client.AttendanceSubject) string {
	prefix := "  "
	subjectStyle := styles.ValueStyle
	if i == m.cursor {
		prefix = styles.Selected.Render("> ")
		subjectStyle = styles.Selected
	}

	percent := derive.SubjectPercentage(item)
	band := derive.Classify(percent)
	return fmt.Sprintf("%s%s  %s %5.1f%%  %d/%d  %s",
		prefix, subjectStyle.Render(item.Subject),
		styles.AttendanceBar(percent, barWidth), percent,
		item.AttendedClasses, item.TotalClasses,
		widgets.BandBadge(band))
}

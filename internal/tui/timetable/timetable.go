// ABOUTME: Timetable screen showing scheduled classes grouped by weekday
// ABOUTME: Supports add, delete, and refresh against the record store

package timetable

import (
	"context"
	"fmt"
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
	"github.com/campus-companion/cli/internal/validate"
)

// BackMsg asks the app to return to the dashboard.
type BackMsg struct{}

// listMsg carries one fetch result, tagged by the fetch sequence number.
type listMsg struct {
	seq   int
	items []client.TimetableEntry
	err   error
}

// mutatedMsg reports one finished mutation.
type mutatedMsg struct {
	sig     notify.Signal
	refetch bool
}

// Model is the timetable screen. The cursor walks entries in display order,
// which is day-of-week then start time, not fetch order.
type Model struct {
	col     *client.Collection[client.TimetableEntry]
	items   []client.TimetableEntry
	loading bool
	failed  bool
	cursor  int
	seq     int
	width   int

	form       *huh.Form
	day        string
	startTime  string
	endTime    string
	subject    string
	room       string
	instructor string
}

// New creates the timetable screen.
func New(col *client.Collection[client.TimetableEntry]) *Model {
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

// ordered returns the entries in display order: grouped by weekday, each day
// sorted by start time.
func (m *Model) ordered() []client.TimetableEntry {
	var out []client.TimetableEntry
	for _, day := range derive.GroupByDay(m.items) {
		out = append(out, day.Entries...)
	}
	return out
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
			return m, toast.Show(notify.FromError(msg.err, "Failed to load timetable"))
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
			if m.cursor < len(m.ordered())-1 {
				m.cursor++
			}
		case "a":
			return m, m.startAdd()
		case "d":
			if entry, ok := m.selected(); ok {
				return m, m.remove(entry.ID)
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
		input := client.TimetableInput{
			Day:        m.day,
			StartTime:  strings.TrimSpace(m.startTime),
			EndTime:    strings.TrimSpace(m.endTime),
			Subject:    m.subject,
			Room:       m.room,
			Instructor: m.instructor,
		}
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
	m.day = derive.Days[0]
	m.startTime = ""
	m.endTime = ""
	m.subject = ""
	m.room = ""
	m.instructor = ""

	dayOptions := make([]huh.Option[string], len(derive.Days))
	for i, d := range derive.Days {
		dayOptions[i] = huh.NewOption(d, d)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Day").
				Options(dayOptions...).
				Value(&m.day),
			huh.NewInput().
				Title("Start time").
				Placeholder("09:00").
				Validate(validate.WallClock("start time")).
				Value(&m.startTime),
			huh.NewInput().
				Title("End time").
				Placeholder("10:00").
				Validate(validate.WallClock("end time")).
				Value(&m.endTime),
			huh.NewInput().
				Title("Subject").
				Validate(validate.NotBlank("subject")).
				Value(&m.subject),
			huh.NewInput().
				Title("Room").
				Validate(validate.NotBlank("room")).
				Value(&m.room),
			huh.NewInput().
				Title("Instructor").
				Validate(validate.NotBlank("instructor")).
				Value(&m.instructor),
		).Title("New class"),
	).WithTheme(forms.Theme())
	return m.form.Init()
}

func (m *Model) create(input client.TimetableInput) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Create(context.Background(), input); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to add class")}
		}
		return mutatedMsg{sig: notify.Success("Class added successfully"), refetch: true}
	}
}

func (m *Model) remove(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Remove(context.Background(), id); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to delete class")}
		}
		return mutatedMsg{sig: notify.Success("Class deleted successfully"), refetch: true}
	}
}

func (m *Model) selected() (client.TimetableEntry, bool) {
	ordered := m.ordered()
	if m.cursor < 0 || m.cursor >= len(ordered) {
		return client.TimetableEntry{}, false
	}
	return ordered[m.cursor], true
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
	sb.WriteString(styles.Title.Render(icons.Timetable.String() + " Timetable"))
	sb.WriteString("\n")

	if m.form != nil {
		sb.WriteString(m.form.View())
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(styles.Subtitle.Render("Loading timetable..."))
	case m.failed:
		sb.WriteString(styles.StatusCritical.Render("Failed to load timetable"))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("r Retry"))
	case len(m.items) == 0:
		sb.WriteString(styles.Subtitle.Render("No classes scheduled"))
	default:
		idx := 0
		for _, day := range derive.GroupByDay(m.items) {
			if len(day.Entries) == 0 {
				continue
			}
			sb.WriteString(styles.Subtitle.Render(day.Day))
			sb.WriteString("\n")
			for _, entry := range day.Entries {
				sb.WriteString(m.renderRow(idx, entry))
				sb.WriteString("\n")
				idx++
			}
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("a Add  d Delete  r Refresh  b Back"))
	return sb.String()
}

func (m *Model) renderRow(i int, entry client.TimetableEntry) string {
	prefix := "  "
	subjectStyle := styles.ValueStyle
	if i == m.cursor {
		prefix = styles.Selected.Render("> ")
		subjectStyle = styles.Selected
	}
	window := derive.NormalizeClock(entry.StartTime) + "-" + derive.NormalizeClock(entry.EndTime)
	return fmt.Sprintf("%s%s  %s  %s  %s",
		prefix, styles.KeyStyle.Render(window), subjectStyle.Render(entry.Subject),
		entry.Room, entry.Instructor)
}

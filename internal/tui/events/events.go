// ABOUTME: Events screen listing campus events with type badges and dates
// ABOUTME: Supports add, delete, and refresh against the record store

package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/huh"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/notify"
	"github.com/campus-companion/cli/internal/tui/forms"
	"github.com/campus-companion/cli/internal/tui/icons"
	"github.com/campus-companion/cli/internal/tui/styles"
	"github.com/campus-companion/cli/internal/tui/toast"
	"github.com/campus-companion/cli/internal/tui/widgets"
	"github.com/campus-companion/cli/internal/validate"
)

const dateLayout = "2006-01-02"

// BackMsg asks the app to return to the dashboard.
type BackMsg struct{}

// listMsg carries one fetch result, tagged by the fetch sequence number.
type listMsg struct {
	seq   int
	items []client.Event
	err   error
}

// mutatedMsg reports one finished mutation.
type mutatedMsg struct {
	sig     notify.Signal
	refetch bool
}

// Model is the events screen.
type Model struct {
	col     *client.Collection[client.Event]
	items   []client.Event
	loading bool
	failed  bool
	cursor  int
	seq     int
	width   int

	form        *huh.Form
	title       string
	description string
	date        string
	eventType   string
	location    string
}

// New creates the events screen.
func New(col *client.Collection[client.Event]) *Model {
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
			return m, toast.Show(notify.FromError(msg.err, "Failed to load events"))
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
			if event, ok := m.selected(); ok {
				return m, m.remove(event.ID)
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
		date, err := time.Parse(dateLayout, strings.TrimSpace(m.date))
		m.form = nil
		if err != nil {
			return m, toast.Show(notify.Error("Failed to add event"))
		}
		input := client.EventInput{
			Title:       m.title,
			Description: m.description,
			Date:        date,
			Type:        m.eventType,
			Location:    m.location,
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
	m.title = ""
	m.description = ""
	m.date = ""
	m.eventType = client.EventOther
	m.location = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validate.NotBlank("title")).
				Value(&m.title),
			huh.NewInput().
				Title("Description").
				Validate(validate.NotBlank("description")).
				Value(&m.description),
			huh.NewInput().
				Title("Date").
				Placeholder(dateLayout).
				Validate(validate.DateTime("date", dateLayout)).
				Value(&m.date),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Exam", client.EventExam),
					huh.NewOption("Fest", client.EventFest),
					huh.NewOption("Holiday", client.EventHoliday),
					huh.NewOption("Other", client.EventOther),
				).
				Value(&m.eventType),
			huh.NewInput().
				Title("Location").
				Validate(validate.NotBlank("location")).
				Value(&m.location),
		).Title("New event"),
	).WithTheme(forms.Theme())
	return m.form.Init()
}

func (m *Model) create(input client.EventInput) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Create(context.Background(), input); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to add event")}
		}
		return mutatedMsg{sig: notify.Success("Event added successfully"), refetch: true}
	}
}

func (m *Model) remove(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Remove(context.Background(), id); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to delete event")}
		}
		return mutatedMsg{sig: notify.Success("Event deleted successfully"), refetch: true}
	}
}

func (m *Model) selected() (client.Event, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return client.Event{}, false
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
	sb.WriteString(styles.Title.Render(icons.Events.String() + " Events"))
	sb.WriteString("\n")

	if m.form != nil {
		sb.WriteString(m.form.View())
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(styles.Subtitle.Render("Loading events..."))
	case m.failed:
		sb.WriteString(styles.StatusCritical.Render("Failed to load events"))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("r Retry"))
	case len(m.items) == 0:
		sb.WriteString(styles.Subtitle.Render("No events found"))
	default:
		for i, event := range m.items {
			sb.WriteString(m.renderRow(i, event))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("a Add  d Delete  r Refresh  b Back"))
	return sb.String()
}

func (m *Model) renderRow(i int, event client.Event) string {
	prefix := "  "
	titleStyle := styles.ValueStyle
	if i == m.cursor {
		prefix = styles.Selected.Render("> ")
		titleStyle = styles.Selected
	}
	return fmt.Sprintf("%s%s  %s  %s  %s",
		prefix, styles.KeyStyle.Render(event.Date.Format(dateLayout)),
		titleStyle.Render(event.Title), widgets.EventBadge(event.Type), event.Location)
}

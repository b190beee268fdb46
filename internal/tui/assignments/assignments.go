// ABOUTME: Assignments screen listing coursework with status and priority
// ABOUTME: Supports add, delete, status toggle, and refresh against the record store

package assignments

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

const dueDateLayout = "2006-01-02"

// BackMsg asks the app to return to the dashboard.
type BackMsg struct{}

// listMsg carries one fetch result. seq ties it to the fetch that issued it
// so a stale response can never overwrite a newer one.
type listMsg struct {
	seq   int
	items []client.Assignment
	err   error
}

// mutatedMsg reports one finished mutation. refetch is set only on success;
// the list is re-fetched, never patched locally.
type mutatedMsg struct {
	sig     notify.Signal
	refetch bool
}

// Model is the assignments screen.
type Model struct {
	col     *client.Collection[client.Assignment]
	items   []client.Assignment
	loading bool
	failed  bool
	cursor  int
	seq     int
	width   int

	form        *huh.Form
	title       string
	description string
	subject     string
	dueDate     string
	priority    string
}

// New creates the assignments screen.
func New(col *client.Collection[client.Assignment]) *Model {
	return &Model{col: col}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.fetch()
}

// fetch issues a list request tagged with a fresh sequence number.
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
			return m, toast.Show(notify.FromError(msg.err, "Failed to load assignments"))
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
		case "t", " ":
			if item, ok := m.selected(); ok {
				return m, m.toggleStatus(item.ID)
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
		due, err := time.Parse(dueDateLayout, strings.TrimSpace(m.dueDate))
		m.form = nil
		if err != nil {
			return m, toast.Show(notify.Error("Failed to add assignment"))
		}
		input := client.AssignmentInput{
			Title:       m.title,
			Description: m.description,
			Subject:     m.subject,
			DueDate:     due,
			Priority:    m.priority,
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

// startAdd opens the capture form for a new assignment.
func (m *Model) startAdd() tea.Cmd {
	m.title = ""
	m.description = ""
	m.subject = ""
	m.dueDate = ""
	m.priority = client.PriorityMedium
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
				Title("Subject").
				Validate(validate.NotBlank("subject")).
				Value(&m.subject),
			huh.NewInput().
				Title("Due date").
				Placeholder(dueDateLayout).
				Validate(validate.DateTime("due date", dueDateLayout)).
				Value(&m.dueDate),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", client.PriorityLow),
					huh.NewOption("Medium", client.PriorityMedium),
					huh.NewOption("High", client.PriorityHigh),
				).
				Value(&m.priority),
		).Title("New assignment"),
	).WithTheme(forms.Theme())
	return m.form.Init()
}

func (m *Model) create(input client.AssignmentInput) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Create(context.Background(), input); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to add assignment")}
		}
		return mutatedMsg{sig: notify.Success("Assignment added successfully"), refetch: true}
	}
}

func (m *Model) remove(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Remove(context.Background(), id); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to delete assignment")}
		}
		return mutatedMsg{sig: notify.Success("Assignment deleted successfully"), refetch: true}
	}
}

func (m *Model) toggleStatus(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Patch(context.Background(), id, client.ActionStatus, nil); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to update assignment status")}
		}
		return mutatedMsg{sig: notify.Success("Assignment status updated"), refetch: true}
	}
}

func (m *Model) selected() (client.Assignment, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return client.Assignment{}, false
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
	sb.WriteString(styles.Title.Render(icons.Assignments.String() + " Assignments"))
	sb.WriteString("\n")

	if m.form != nil {
		sb.WriteString(m.form.View())
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(styles.Subtitle.Render("Loading assignments..."))
	case m.failed:
		sb.WriteString(styles.StatusCritical.Render("Failed to load assignments"))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("r Retry"))
	case len(m.items) == 0:
		sb.WriteString(styles.Subtitle.Render("No assignments found"))
	default:
		for i, item := range m.items {
			sb.WriteString(m.renderRow(i, item))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("a Add  d Delete  t Toggle status  r Refresh  b Back"))
	return sb.String()
}

func (m *Model) renderRow(i int, item client.Assignment) string {
	prefix := "  "
	titleStyle := styles.ValueStyle
	if i == m.cursor {
		prefix = styles.Selected.Render("> ")
		titleStyle = styles.Selected
	}

	title := titleStyle.Render(item.Title)
	status := " "
	if item.Status == client.StatusCompleted {
		title = styles.Dimmed.Render(item.Title)
		status = styles.StatusOK.Render(icons.CheckOK.String())
	}

	due := item.DueDate.Format(dueDateLayout)
	return fmt.Sprintf("%s%s %s  %s  %s  due %s",
		prefix, status, title, widgets.PriorityBadge(item.Priority), item.Subject, due)
}

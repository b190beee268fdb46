// ABOUTME: Notes screen listing saved notes with their generated summaries
// ABOUTME: Supports add, delete, summary regeneration, and refresh

package notes

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/charmbracelet/huh"

	"github.com/campus-companion/cli/internal/client"
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
	items []client.Note
	err   error
}

// mutatedMsg reports one finished mutation.
type mutatedMsg struct {
	sig     notify.Signal
	refetch bool
}

// Model is the notes screen. The selected note's content and summary are
// shown in a detail panel under the list.
type Model struct {
	col     *client.Collection[client.Note]
	items   []client.Note
	loading bool
	failed  bool
	cursor  int
	seq     int
	width   int

	form    *huh.Form
	subject string
	title   string
	content string
	tags    string
}

// New creates the notes screen.
func New(col *client.Collection[client.Note]) *Model {
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
			return m, toast.Show(notify.FromError(msg.err, "Failed to load notes"))
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
			if note, ok := m.selected(); ok {
				return m, m.remove(note.ID)
			}
		case "s":
			if note, ok := m.selected(); ok {
				return m, m.summarize(note.ID)
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
		input := client.NoteInput{
			Subject: m.subject,
			Title:   m.title,
			Content: m.content,
			Tags:    splitTags(m.tags),
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

// splitTags turns a comma-separated tag line into a clean slice.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (m *Model) startAdd() tea.Cmd {
	m.subject = ""
	m.title = ""
	m.content = ""
	m.tags = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Validate(validate.NotBlank("subject")).
				Value(&m.subject),
			huh.NewInput().
				Title("Title").
				Validate(validate.NotBlank("title")).
				Value(&m.title),
			huh.NewText().
				Title("Content").
				Validate(validate.NotBlank("content")).
				Value(&m.content),
			huh.NewInput().
				Title("Tags").
				Placeholder("comma, separated").
				Value(&m.tags),
		).Title("New note"),
	).WithTheme(forms.Theme())
	return m.form.Init()
}

func (m *Model) create(input client.NoteInput) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Create(context.Background(), input); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to add note")}
		}
		return mutatedMsg{sig: notify.Success("Note added successfully"), refetch: true}
	}
}

func (m *Model) remove(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Remove(context.Background(), id); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to delete note")}
		}
		return mutatedMsg{sig: notify.Success("Note deleted successfully"), refetch: true}
	}
}

// summarize asks the store to regenerate the selected note's summary.
func (m *Model) summarize(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.col.Patch(context.Background(), id, client.ActionSummarize, nil); err != nil {
			return mutatedMsg{sig: notify.FromError(err, "Failed to regenerate summary")}
		}
		return mutatedMsg{sig: notify.Success("Summary regenerated successfully"), refetch: true}
	}
}

func (m *Model) selected() (client.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return client.Note{}, false
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
	sb.WriteString(styles.Title.Render(icons.Notes.String() + " Notes"))
	sb.WriteString("\n")

	if m.form != nil {
		sb.WriteString(m.form.View())
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(styles.Subtitle.Render("Loading notes..."))
	case m.failed:
		sb.WriteString(styles.StatusCritical.Render("Failed to load notes"))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("r Retry"))
	case len(m.items) == 0:
		sb.WriteString(styles.Subtitle.Render("No notes found"))
	default:
		for i, note := range m.items {
			sb.WriteString(m.renderRow(i, note))
			sb.WriteString("\n")
		}
		if note, ok := m.selected(); ok {
			sb.WriteString("\n")
			sb.WriteString(m.renderDetail(note))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("a Add  d Delete  s Summarize  r Refresh  b Back"))
	return sb.String()
}

func (m *Model) renderRow(i int, note client.Note) string {
	prefix := "  "
	titleStyle := styles.ValueStyle
	if i == m.cursor {
		prefix = styles.Selected.Render("> ")
		titleStyle = styles.Selected
	}

	tags := ""
	if len(note.Tags) > 0 {
		tags = styles.KeyStyle.Render("#" + strings.Join(note.Tags, " #"))
	}
	return fmt.Sprintf("%s%s  %s  %s", prefix, titleStyle.Render(note.Title), note.Subject, tags)
}

func (m *Model) renderDetail(note client.Note) string {
	width := m.width - 6
	if width < 40 {
		width = 40
	}

	var sb strings.Builder
	sb.WriteString(note.Content)
	if note.Summary != "" {
		sb.WriteString("\n\n")
		sb.WriteString(styles.KeyStyle.Render("Summary"))
		sb.WriteString("\n")
		sb.WriteString(note.Summary)
	}
	return styles.Panel.Width(width).Render(lipgloss.NewStyle().Width(width - 4).Render(sb.String()))
}

// ABOUTME: Dashboard screen aggregating counts across the five resource lists
// ABOUTME: Shows metric blocks, low-attendance warnings, and navigation hints

package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/derive"
	"github.com/campus-companion/cli/internal/notify"
	"github.com/campus-companion/cli/internal/tui/icons"
	"github.com/campus-companion/cli/internal/tui/styles"
	"github.com/campus-companion/cli/internal/tui/toast"
	"github.com/campus-companion/cli/internal/tui/widgets"
)

// loadedMsg carries one aggregate fetch result, tagged by sequence number.
type loadedMsg struct {
	seq    int
	stats  derive.Stats
	events []client.Event
	now    time.Time
	err    error
}

// Model is the dashboard screen.
type Model struct {
	res      *client.Resources
	userName string
	spin     spinner.Model
	loading  bool
	failed   bool
	stats    derive.Stats
	upcoming []client.Event
	seq      int
	width    int
}

// New creates the dashboard for the signed-in student.
func New(res *client.Resources, userName string) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)
	return &Model{res: res, userName: userName, spin: sp}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.Refresh())
}

// Refresh re-fetches all the lists behind the dashboard counts. The four
// fetches are one user-visible action, so a failure produces one signal.
func (m *Model) Refresh() tea.Cmd {
	m.seq++
	m.loading = true
	seq := m.seq
	res := m.res
	return func() tea.Msg {
		ctx := context.Background()
		assignments, err := res.Assignments.List(ctx)
		if err != nil {
			return loadedMsg{seq: seq, err: err}
		}
		attendance, err := res.Attendance.List(ctx)
		if err != nil {
			return loadedMsg{seq: seq, err: err}
		}
		notes, err := res.Notes.List(ctx)
		if err != nil {
			return loadedMsg{seq: seq, err: err}
		}
		events, err := res.Events.List(ctx)
		if err != nil {
			return loadedMsg{seq: seq, err: err}
		}
		now := time.Now()
		return loadedMsg{
			seq:    seq,
			stats:  derive.ComputeStats(assignments, attendance, notes, events, now),
			events: events,
			now:    now,
		}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.failed = true
			return m, toast.Show(notify.FromError(msg.err, "Failed to load dashboard"))
		}
		m.failed = false
		m.stats = msg.stats
		m.upcoming = upcomingEvents(msg.events, msg.now, 3)
		return m, nil
	}
	return m, nil
}

// upcomingEvents returns up to limit events dated now or later, soonest
// first.
func upcomingEvents(events []client.Event, now time.Time, limit int) []client.Event {
	var next []client.Event
	for _, e := range events {
		if !e.Date.Before(now) {
			next = append(next, e)
		}
	}
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Date.Before(next[j].Date)
	})
	if len(next) > limit {
		next = next[:limit]
	}
	return next
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	welcome := "Welcome back"
	if m.userName != "" {
		welcome = "Welcome back, " + m.userName
	}
	sb.WriteString(styles.Title.Render(icons.App.String() + " Dashboard"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(welcome))
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(m.spin.View())
		sb.WriteString(" Loading your data...")
	case m.failed:
		sb.WriteString(styles.StatusCritical.Render("Failed to load dashboard"))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("r Retry"))
	default:
		sb.WriteString(m.renderMetrics())
		if len(m.upcoming) > 0 {
			sb.WriteString("\n\n")
			sb.WriteString(styles.Subtitle.Render("Upcoming events"))
			sb.WriteString("\n")
			for _, e := range m.upcoming {
				sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
					styles.KeyStyle.Render(e.Date.Format("2006-01-02")), e.Title, e.Location))
			}
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("1 Timetable  2 Assignments  3 Attendance  4 Notes  5 Events  r Refresh  L Logout  q Quit"))
	return sb.String()
}

func (m *Model) renderMetrics() string {
	cfg := widgets.DefaultMetricBlockConfig()

	assignments := widgets.MetricBlock(icons.Assignments, "Assignments",
		strconv.Itoa(m.stats.Assignments),
		fmt.Sprintf("%d pending", m.stats.PendingAssignments), cfg)

	attendanceCfg := cfg
	attendanceSub := "all on track"
	if m.stats.LowAttendance > 0 {
		attendanceCfg.BorderColor = styles.Danger
		attendanceSub = fmt.Sprintf("%d below 75%%", m.stats.LowAttendance)
	}
	attendance := widgets.MetricBlock(icons.Attendance, "Attendance",
		strconv.Itoa(m.stats.Subjects), attendanceSub, attendanceCfg)

	notes := widgets.MetricBlock(icons.Notes, "Notes",
		strconv.Itoa(m.stats.Notes), "saved", cfg)

	events := widgets.MetricBlock(icons.Events, "Events",
		strconv.Itoa(m.stats.UpcomingEvents), "upcoming", cfg)

	if m.width >= 2*cfg.Width+4 {
		top := lipgloss.JoinHorizontal(lipgloss.Top, assignments, " ", attendance)
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, notes, " ", events)
		return top + "\n" + bottom
	}
	return strings.Join([]string{assignments, attendance, notes, events}, "\n")
}

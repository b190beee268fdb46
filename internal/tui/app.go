// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Enforces the session guard and routes messages to the active screen

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/notify"
	"github.com/campus-companion/cli/internal/session"
	"github.com/campus-companion/cli/internal/tui/assignments"
	"github.com/campus-companion/cli/internal/tui/attendance"
	"github.com/campus-companion/cli/internal/tui/dashboard"
	"github.com/campus-companion/cli/internal/tui/events"
	"github.com/campus-companion/cli/internal/tui/icons"
	"github.com/campus-companion/cli/internal/tui/login"
	"github.com/campus-companion/cli/internal/tui/notes"
	"github.com/campus-companion/cli/internal/tui/styles"
	"github.com/campus-companion/cli/internal/tui/timetable"
	"github.com/campus-companion/cli/internal/tui/toast"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenDashboard
	ScreenTimetable
	ScreenAssignments
	ScreenAttendance
	ScreenNotes
	ScreenEvents
)

// Layout constants
const minTerminalWidth = 80

// authResultMsg reports one finished login exchange.
type authResultMsg struct {
	ok  bool
	sig notify.Signal
}

// registerResultMsg reports one finished registration exchange.
type registerResultMsg struct {
	ok  bool
	sig notify.Signal
}

// App is the root model for the TUI. Resource screens are created when
// entered and dropped when left, so each entry starts with a fresh fetch.
type App struct {
	sess   *session.Manager
	res    *client.Resources
	screen Screen
	width  int
	height int

	loginScreen    *login.Login
	registerScreen *login.Register
	dash           *dashboard.Model
	timetableView  *timetable.Model
	assignView     *assignments.Model
	attendView     *attendance.Model
	notesView      *notes.Model
	eventsView     *events.Model

	notifications *toast.Model
}

// New creates the TUI application. The session must already be resolved;
// an unauthenticated session lands on the login screen, never past it.
func New(sess *session.Manager, res *client.Resources) *App {
	a := &App{
		sess:          sess,
		res:           res,
		notifications: toast.New(),
	}
	if sess.State() == session.StateUnknown {
		sess.Resolve()
	}
	if sess.Authenticated() {
		a.enterDashboard()
	} else {
		a.enterLogin()
	}
	return a
}

func (a *App) enterLogin() {
	a.screen = ScreenLogin
	a.loginScreen = login.New()
	a.dash = nil
}

func (a *App) enterDashboard() {
	name := ""
	if id, ok := a.sess.Identity(); ok {
		name = id.Name
	}
	a.screen = ScreenDashboard
	a.dash = dashboard.New(a.res, name)
	a.loginScreen = nil
	a.registerScreen = nil
	a.timetableView = nil
	a.assignView = nil
	a.attendView = nil
	a.notesView = nil
	a.eventsView = nil
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	switch a.screen {
	case ScreenDashboard:
		return a.dash.Init()
	default:
		return a.loginScreen.Init()
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The toast tracks its own expiry ticks regardless of active screen.
	a.notifications.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.routeToScreen(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.screen == ScreenDashboard {
			return a.updateDashboard(msg)
		}
		return a.routeToScreen(msg)

	case toast.ShowMsg:
		return a, a.notifications.Display(msg.Signal)

	case login.SubmitMsg:
		return a, a.doLogin(msg.Email, msg.Password)

	case login.CancelledMsg:
		return a, tea.Quit

	case login.SwitchToRegisterMsg:
		a.screen = ScreenRegister
		a.registerScreen = login.NewRegister()
		return a, a.registerScreen.Init()

	case login.RegisterSubmitMsg:
		return a, a.doRegister(msg.Input)

	case login.RegisterCancelledMsg:
		a.enterLogin()
		return a, a.loginScreen.Init()

	case authResultMsg:
		cmd := a.notifications.Display(msg.sig)
		if !msg.ok {
			reset := a.loginScreen.Reset()
			return a, tea.Batch(cmd, reset)
		}
		a.enterDashboard()
		return a, tea.Batch(cmd, a.dash.Init())

	case registerResultMsg:
		cmd := a.notifications.Display(msg.sig)
		if msg.ok {
			a.enterLogin()
			return a, tea.Batch(cmd, a.loginScreen.Init())
		}
		a.registerScreen = login.NewRegister()
		return a, tea.Batch(cmd, a.registerScreen.Init())

	case timetable.BackMsg, assignments.BackMsg, attendance.BackMsg, notes.BackMsg, events.BackMsg:
		a.enterDashboard()
		return a, a.dash.Init()
	}

	return a.routeToScreen(msg)
}

// updateDashboard handles dashboard navigation keys.
func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		return a, a.dash.Refresh()
	case "1":
		a.screen = ScreenTimetable
		a.timetableView = timetable.New(a.res.Timetable)
		return a, a.timetableView.Init()
	case "2":
		a.screen = ScreenAssignments
		a.assignView = assignments.New(a.res.Assignments)
		return a, a.assignView.Init()
	case "3":
		a.screen = ScreenAttendance
		a.attendView = attendance.New(a.res.Attendance)
		return a, a.attendView.Init()
	case "4":
		a.screen = ScreenNotes
		a.notesView = notes.New(a.res.Notes)
		return a, a.notesView.Init()
	case "5":
		a.screen = ScreenEvents
		a.eventsView = events.New(a.res.Events)
		return a, a.eventsView.Init()
	case "L":
		sig := a.sess.Logout()
		cmd := a.notifications.Display(sig)
		a.enterLogin()
		return a, tea.Batch(cmd, a.loginScreen.Init())
	}
	return a.routeToScreen(msg)
}

// routeToScreen forwards a message to the active screen's update loop.
func (a *App) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var model tea.Model

	switch a.screen {
	case ScreenLogin:
		if a.loginScreen == nil {
			return a, nil
		}
		model, cmd = a.loginScreen.Update(msg)
		a.loginScreen = model.(*login.Login)
	case ScreenRegister:
		if a.registerScreen == nil {
			return a, nil
		}
		model, cmd = a.registerScreen.Update(msg)
		a.registerScreen = model.(*login.Register)
	case ScreenDashboard:
		if a.dash == nil {
			return a, nil
		}
		model, cmd = a.dash.Update(msg)
		a.dash = model.(*dashboard.Model)
	case ScreenTimetable:
		if a.timetableView == nil {
			return a, nil
		}
		model, cmd = a.timetableView.Update(msg)
		a.timetableView = model.(*timetable.Model)
	case ScreenAssignments:
		if a.assignView == nil {
			return a, nil
		}
		model, cmd = a.assignView.Update(msg)
		a.assignView = model.(*assignments.Model)
	case ScreenAttendance:
		if a.attendView == nil {
			return a, nil
		}
		model, cmd = a.attendView.Update(msg)
		a.attendView = model.(*attendance.Model)
	case ScreenNotes:
		if a.notesView == nil {
			return a, nil
		}
		model, cmd = a.notesView.Update(msg)
		a.notesView = model.(*notes.Model)
	case ScreenEvents:
		if a.eventsView == nil {
			return a, nil
		}
		model, cmd = a.eventsView.Update(msg)
		a.eventsView = model.(*events.Model)
	}
	return a, cmd
}

// doLogin exchanges credentials for a stored session.
func (a *App) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		ok, sig := a.sess.Login(context.Background(), email, password)
		return authResultMsg{ok: ok, sig: sig}
	}
}

// doRegister creates an account. Registration never signs the user in; a
// fresh login follows.
func (a *App) doRegister(input client.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		ok, sig := a.sess.Register(context.Background(), input)
		return registerResultMsg{ok: ok, sig: sig}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenLogin:
		content = a.loginScreen.View()
	case ScreenRegister:
		content = a.registerScreen.View()
	case ScreenDashboard:
		content = a.dash.View()
	case ScreenTimetable:
		content = a.timetableView.View()
	case ScreenAssignments:
		content = a.assignView.View()
	case ScreenAttendance:
		content = a.attendView.View()
	case ScreenNotes:
		content = a.notesView.View()
	case ScreenEvents:
		content = a.eventsView.View()
	}
	return a.wrapWithFrame(content)
}

// renderHeader creates the header bar with app branding and signed-in user
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Campus Companion"))

	rightText := ""
	if id, ok := a.sess.Identity(); ok {
		rightText = contextStyle.Render(icons.User.String()+" "+id.Email) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Enter Submit", "ctrl+r Register", "Esc Quit"}
	case ScreenRegister:
		shortcuts = []string{"Enter Submit", "Esc Back"}
	case ScreenDashboard:
		shortcuts = []string{"1-5 Open", "r Refresh", "L Logout", "q Quit"}
	default:
		shortcuts = []string{"↑↓ Navigate", "a Add", "d Delete", "b Back"}
	}

	var styled []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styled = append(styled, s)
		}
	}

	leftText := " " + strings.Join(styled, "  ")
	leftPlain := " " + strings.Join(shortcuts, "  ")

	fillWidth := width - 4 - lipgloss.Width(leftPlain)
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + "─╯"
	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with the header, toast line, and footer.
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder
	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	if a.notifications.Visible() {
		sb.WriteString(" " + a.notifications.View())
	}
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())
	return sb.String()
}

// Run starts the TUI event loop.
func Run(sess *session.Manager, res *client.Resources) error {
	p := tea.NewProgram(New(sess, res), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

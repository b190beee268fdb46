// ABOUTME: Login screen backed by a huh form
// ABOUTME: Captures credentials and hands them to the app for the auth exchange

package login

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/huh"

	"github.com/campus-companion/cli/internal/tui/forms"
	"github.com/campus-companion/cli/internal/tui/icons"
	"github.com/campus-companion/cli/internal/tui/styles"
	"github.com/campus-companion/cli/internal/validate"
)

// SubmitMsg carries captured credentials to the app.
type SubmitMsg struct {
	Email    string
	Password string
}

// SwitchToRegisterMsg asks the app to show the registration screen.
type SwitchToRegisterMsg struct{}

// CancelledMsg is sent when the user abandons the login form.
type CancelledMsg struct{}

// Login is the credential capture screen.
type Login struct {
	form      *huh.Form
	email     string
	password  string
	width     int
	submitted bool
}

// New creates a fresh login screen.
func New() *Login {
	l := &Login{}
	l.buildForm()
	return l
}

// Reset clears the form, for re-display after a failed attempt.
func (l *Login) Reset() tea.Cmd {
	l.password = ""
	l.submitted = false
	l.buildForm()
	return l.form.Init()
}

func (l *Login) buildForm() {
	l.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@campus.edu").
				Validate(validate.Email).
				Value(&l.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(validate.NotBlank("password")).
				Value(&l.password),
		).Title("Sign in"),
	).WithTheme(forms.Theme())
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Credentials already handed off, swallow input until Reset.
	if l.submitted {
		return l, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+r":
			return l, func() tea.Msg { return SwitchToRegisterMsg{} }
		case "esc":
			return l, func() tea.Msg { return CancelledMsg{} }
		}
	}
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		l.width = size.Width
	}

	model, cmd := l.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		l.form = form
	}

	if l.form.State == huh.StateCompleted {
		l.submitted = true
		email, password := l.email, l.password
		return l, func() tea.Msg {
			return SubmitMsg{Email: email, Password: password}
		}
	}
	if l.form.State == huh.StateAborted {
		return l, func() tea.Msg { return CancelledMsg{} }
	}
	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	header := styles.Title.Render(icons.App.String() + " Campus Companion")
	hint := styles.Help.Render("ctrl+r Register  esc Quit")
	return header + "\n" + l.form.View() + "\n" + hint
}

// ABOUTME: Registration screen backed by a huh form
// ABOUTME: Captures account details; a successful registration returns to login

package login

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/huh"

	"github.com/campus-companion/cli/internal/client"
	"github.com/campus-companion/cli/internal/tui/forms"
	"github.com/campus-companion/cli/internal/tui/icons"
	"github.com/campus-companion/cli/internal/tui/styles"
	"github.com/campus-companion/cli/internal/validate"
)

// RegisterSubmitMsg carries the captured registration payload to the app.
type RegisterSubmitMsg struct {
	Input client.RegisterInput
}

// RegisterCancelledMsg returns the user to the login screen.
type RegisterCancelledMsg struct{}

// Register is the account creation screen.
type Register struct {
	form      *huh.Form
	name      string
	email     string
	password  string
	submitted bool
}

// NewRegister creates a fresh registration screen.
func NewRegister() *Register {
	r := &Register{}
	r.buildForm()
	return r
}

func (r *Register) buildForm() {
	r.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(validate.NotBlank("name")).
				Value(&r.name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@campus.edu").
				Validate(validate.Email).
				Value(&r.email),
			huh.NewInput().
				Title("Password").
				Description("At least 6 characters").
				EchoMode(huh.EchoModePassword).
				Validate(validate.MinLen("password", 6)).
				Value(&r.password),
		).Title("Create account"),
	).WithTheme(forms.Theme())
}

// Init implements tea.Model
func (r *Register) Init() tea.Cmd {
	return r.form.Init()
}

// Update implements tea.Model
func (r *Register) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Payload already handed off, swallow input until the app swaps screens.
	if r.submitted {
		return r, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return r, func() tea.Msg { return RegisterCancelledMsg{} }
	}

	model, cmd := r.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		r.form = form
	}

	if r.form.State == huh.StateCompleted {
		r.submitted = true
		input := client.RegisterInput{Name: r.name, Email: r.email, Password: r.password}
		return r, func() tea.Msg {
			return RegisterSubmitMsg{Input: input}
		}
	}
	if r.form.State == huh.StateAborted {
		return r, func() tea.Msg { return RegisterCancelledMsg{} }
	}
	return r, cmd
}

// View implements tea.Model
func (r *Register) View() string {
	header := styles.Title.Render(icons.User.String() + " Join Campus Companion")
	hint := styles.Help.Render("esc Back to login")
	return header + "\n" + r.form.View() + "\n" + hint
}

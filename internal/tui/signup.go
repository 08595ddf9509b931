package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/internal/validators"
	"github.com/MKhiriev/career-dashboard/models"
)

// SignupModel is the Bubble Tea model for the account creation screen. It renders
// five inputs (first name, last name, email, password and confirmation) and
// dispatches an async signup command on submission. On success the form is reset
// and the dashboard opens with a [SignupSuccessNotice].
type SignupModel struct {
	ctx       context.Context
	auth      service.AuthService
	validator validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, auth service.AuthService, validator validators.Validator) *SignupModel {
	fields := make([]textinput.Model, 5)

	fields[0] = textinput.New()
	fields[0].Placeholder = "first name"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "last name"
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "email"
	fields[2].CharLimit = 254
	fields[2].Width = 40

	fields[3] = newPasswordInput()

	fields[4] = newPasswordInput()
	fields[4].Placeholder = "repeat password"

	return &SignupModel{
		ctx:       ctx,
		auth:      auth,
		validator: validator,
		inputs:    fields,
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. esc goes back to login; enter validates the
// form (all required, passwords match) and dispatches the signup.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = errorText(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    router.Dashboard,
				Payload: SignupSuccessNotice{Name: result.user.DisplayName()},
			}
		}
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, navigate(router.Login)
		case key.Matches(k, keys.tab):
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case key.Matches(k, keys.backtab):
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		case key.Matches(k, keys.enter):
			if m.submitting {
				return m, nil
			}

			req, errMsg := m.request()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) request() (models.AuthRequest, string) {
	req := models.AuthRequest{
		FirstName: strings.TrimSpace(m.inputs[0].Value()),
		LastName:  strings.TrimSpace(m.inputs[1].Value()),
		Email:     strings.TrimSpace(m.inputs[2].Value()),
		Password:  m.inputs[3].Value(),
	}

	if err := m.validator.Validate(m.ctx, req, validators.SignupFields...); err != nil {
		return req, errorText(err)
	}
	if req.Password != m.inputs[4].Value() {
		return req, "passwords do not match"
	}
	return req, ""
}

func (m *SignupModel) View() string {
	labels := []string{"First name", "Last name", "Email", "Password", "Repeat"}

	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(padRight(label, 10))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *SignupModel) cmdSignup(req models.AuthRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Signup(ctx, req)
		return authResultMsg{user: user, err: err}
	}
}

func (m *SignupModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

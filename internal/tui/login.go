// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (email and password) and dispatches an async login command on form submission.
// A successful login flips the session, which makes the [RootModel] open the dashboard.
type LoginModel struct {
	ctx       context.Context
	auth      service.AuthService
	validator validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and password inputs.
// The email field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.AuthService, validator validators.Validator) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := newPasswordInput()

	return &LoginModel{
		ctx:       ctx,
		auth:      auth,
		validator: validator,
		inputs:    []textinput.Model{emailInput, passwordInput},
	}
}

func newPasswordInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "password"
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - authResultMsg  clears submitting state; on error, populates errMsg.
//   - ctrl+n         navigates to the signup page.
//   - tab/shift+tab  moves focus between inputs.
//   - enter          validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		m.errMsg = errorText(result.err)
		if result.err == nil {
			m.inputs[1].SetValue("")
		}
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.signup):
			m.errMsg = ""
			return m, navigate(router.Signup)
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

			req := models.AuthRequest{
				Email:    strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			}
			if err := m.validator.Validate(m.ctx, req); err != nil {
				m.errMsg = errorText(err)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ ctrl+n: create account")
}

func (m *LoginModel) cmdLogin(req models.AuthRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Login(ctx, req)
		return authResultMsg{user: user, err: err}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

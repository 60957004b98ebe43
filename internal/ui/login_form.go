package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"podly/internal/credential"
	"podly/internal/notify"
)

// submitResultMsg carries the gate's verdict back into the update loop.
type submitResultMsg struct {
	close    bool
	wasLogin bool
}

// CredentialFormModel is the login/registration screen. Field validation
// runs when focus leaves a field; the submit action stays disabled until the
// form is submittable.
type CredentialFormModel struct {
	form   *credential.Form
	gate   *credential.Gate
	notify *notify.Channel

	inputs     []textinput.Model
	fields     []credential.Field
	focus      int
	submitting bool
	done       bool
}

// NewCredentialFormModel builds the form TUI in the given mode.
func NewCredentialFormModel(mode credential.Mode, gate *credential.Gate, ch *notify.Channel) CredentialFormModel {
	m := CredentialFormModel{
		form:   credential.NewForm(mode),
		gate:   gate,
		notify: ch,
	}
	m.buildInputs()
	return m
}

// Done reports whether the form closed after a successful submission.
func (m CredentialFormModel) Done() bool {
	return m.done
}

func (m *CredentialFormModel) buildInputs() {
	m.fields = m.form.Fields()
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, field := range m.fields {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 32
		ti.SetValue(m.form.Value(field))
		switch field {
		case credential.FieldEmail:
			ti.Placeholder = "you@example.com"
		case credential.FieldPassword, credential.FieldConfirmPassword:
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		case credential.FieldPhone:
			ti.Placeholder = "0123456789"
			ti.CharLimit = 10
		case credential.FieldDisplayName:
			ti.Placeholder = "Your name"
		}
		m.inputs[i] = ti
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m CredentialFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CredentialFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			// A submit round trip is outstanding; swallow input.
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			return m.switchMode()
		case tea.KeyTab, tea.KeyDown:
			return m.moveFocus(1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m.moveFocus(-1)
		case tea.KeyEnter:
			if m.focus < len(m.inputs)-1 {
				return m.moveFocus(1)
			}
			return m.submit()
		}
	case submitResultMsg:
		m.submitting = false
		if msg.close {
			if msg.wasLogin {
				m.done = true
				return m, tea.Quit
			}
			// Register success switched the gate back to login mode; the
			// form stays open so the user can sign in.
			m.buildInputs()
			return m, nil
		}
		return m, nil
	case NotificationMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.form.Set(m.fields[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

func (m CredentialFormModel) switchMode() (tea.Model, tea.Cmd) {
	if m.form.Mode() == credential.ModeLogin {
		m.form.SetMode(credential.ModeRegister)
	} else {
		m.form.SetMode(credential.ModeLogin)
	}
	m.buildInputs()
	return m, textinput.Blink
}

func (m CredentialFormModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	// Leaving a field is its blur point.
	m.form.Blur(m.fields[m.focus])
	m.inputs[m.focus].Blur()

	m.focus += delta
	if m.focus < 0 {
		m.focus = len(m.inputs) - 1
	}
	if m.focus >= len(m.inputs) {
		m.focus = 0
	}
	return m, m.inputs[m.focus].Focus()
}

func (m CredentialFormModel) submit() (tea.Model, tea.Cmd) {
	m.form.Blur(m.fields[m.focus])
	if !m.form.Submittable() {
		return m, nil
	}
	m.submitting = true

	form := m.form
	gate := m.gate
	if form.Mode() == credential.ModeLogin {
		email := form.Value(credential.FieldEmail)
		password := form.Value(credential.FieldPassword)
		return m, func() tea.Msg {
			return submitResultMsg{
				close:    gate.SubmitLogin(context.Background(), email, password),
				wasLogin: true,
			}
		}
	}
	return m, func() tea.Msg {
		return submitResultMsg{close: gate.SubmitRegister(context.Background(), form)}
	}
}

func (m CredentialFormModel) View() string {
	var b []byte
	title := "Sign in"
	hint := "ctrl+r: create an account"
	if m.form.Mode() == credential.ModeRegister {
		title = "Create account"
		hint = "ctrl+r: back to sign in"
	}
	b = append(b, titleStyle.Render(title)...)
	b = append(b, '\n', '\n')

	for i, field := range m.fields {
		b = append(b, fieldLabelStyle.Render(fieldLabel(field))...)
		b = append(b, m.inputs[i].View()...)
		b = append(b, '\n')
		if msg := m.form.Error(field); msg != "" {
			b = append(b, fieldLabelStyle.Render("")...)
			b = append(b, fieldErrorStyle.Render(msg)...)
			b = append(b, '\n')
		}
	}

	b = append(b, '\n')
	switch {
	case m.submitting:
		b = append(b, subtleStyle.Render("submitting...")...)
	case m.form.Submittable():
		b = append(b, "press enter on the last field to submit"...)
	default:
		b = append(b, subtleStyle.Render("submit disabled: fill every field correctly")...)
	}
	b = append(b, '\n')

	if bar := renderNotification(m.notify); bar != "" {
		b = append(b, '\n')
		b = append(b, bar...)
		b = append(b, '\n')
	}

	b = append(b, helpStyle.Render("tab: next field • "+hint+" • esc: close")...)
	return appStyle.Render(string(b))
}

func fieldLabel(field credential.Field) string {
	switch field {
	case credential.FieldEmail:
		return "Email"
	case credential.FieldPassword:
		return "Password"
	case credential.FieldConfirmPassword:
		return "Confirm password"
	case credential.FieldDisplayName:
		return "Display name"
	case credential.FieldPhone:
		return "Phone"
	}
	return string(field)
}

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regName = iota
	regEmail
	regPassword
	regConfirm
)

// RegisterModel is the sign-up screen. A successful registration opens a
// session right away, so it reports a [LoginResult] like the login screen.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	name := newInput("name", 100)
	name.Focus()

	password := newInput("master password", 256)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := newInput("repeat master password", 256)
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{name, newInput("email", 254), password, confirm},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		m.errMsg = humanizeError(result.Err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.focus = focusInputs(m.inputs, m.focus+1)
			return m, nil
		case "shift+tab", "up":
			m.focus = focusInputs(m.inputs, m.focus-1)
			return m, nil
		case "enter":
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
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) request() (models.RegisterRequest, string) {
	req := models.RegisterRequest{
		Name:     strings.TrimSpace(m.inputs[regName].Value()),
		Email:    strings.TrimSpace(m.inputs[regEmail].Value()),
		Password: m.inputs[regPassword].Value(),
	}

	switch {
	case req.Name == "" || req.Email == "" || req.Password == "":
		return req, "All fields are required"
	case req.Password != m.inputs[regConfirm].Value():
		return req, "Passwords do not match"
	}
	return req, ""
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Name      │ ")
	b.WriteString(m.inputs[regName].View())
	b.WriteString("\nEmail     │ ")
	b.WriteString(m.inputs[regEmail].View())
	b.WriteString("\nPassword  │ ")
	b.WriteString(m.inputs[regPassword].View())
	b.WriteString("\nRepeat    │ ")
	b.WriteString(m.inputs[regConfirm].View())
	b.WriteString("\n")

	if pass := m.inputs[regPassword].Value(); pass != "" {
		b.WriteString("\nStrength  │ ")
		b.WriteString(renderAssessment(crypto.ScorePasswordStrength(pass)))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]")
	} else {
		b.WriteString("\n[Create account]")
	}
	b.WriteString(renderMessages("", m.errMsg))

	return renderPage("CREATE ACCOUNT", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		user, err := auth.Register(ctx, req)
		return LoginResult{User: user, Err: err}
	}
}

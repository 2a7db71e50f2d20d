package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordForm changes the master password. Every item is re-encrypted by
// the auth service before the server accepts the new password.
type passwordForm struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newPasswordForm() passwordForm {
	placeholders := []string{"current master password", "new master password", "repeat new master password"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		inputs[i] = newInput(p, 256)
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Focus()
	return passwordForm{inputs: inputs}
}

func (m mainLoopModel) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.password.focus = focusInputs(m.password.inputs, m.password.focus+1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.password.focus = focusInputs(m.password.inputs, m.password.focus-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.password.submitting {
				return m, nil
			}
			current := m.password.inputs[0].Value()
			next := m.password.inputs[1].Value()
			switch {
			case current == "" || next == "":
				m.password.errMsg = "All fields are required"
				return m, nil
			case next != m.password.inputs[2].Value():
				m.password.errMsg = "Passwords do not match"
				return m, nil
			}
			m.password.errMsg = ""
			m.password.submitting = true
			return m, m.cmdChangePassword(current, next)
		}
	}

	var cmd tea.Cmd
	f := &m.password
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewPassword() string {
	f := m.password

	var b strings.Builder
	b.WriteString("Current   │ ")
	b.WriteString(f.inputs[0].View())
	b.WriteString("\nNew       │ ")
	b.WriteString(f.inputs[1].View())
	b.WriteString("\nRepeat    │ ")
	b.WriteString(f.inputs[2].View())
	b.WriteString("\n\nAll items are re-encrypted with the new password.")
	if f.submitting {
		b.WriteString("\n[Re-encrypting...]")
	}
	b.WriteString(renderMessages("", f.errMsg))

	return renderPage("CHANGE MASTER PASSWORD", b.String(), "tab: next field │ enter: submit │ esc: cancel")
}

func (m mainLoopModel) cmdChangePassword(current, next string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return passwordChangedMsg{err: auth.ChangeMasterPassword(ctx, current, next)}
	}
}

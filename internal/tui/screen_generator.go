package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// generatorState is the policy being tuned and the last generated password.
type generatorState struct {
	policy models.PasswordPolicy
	result models.GeneratedPassword
	errMsg string

	// returnToForm sends the password back to the item form on enter.
	returnToForm bool
}

func newGeneratorState() generatorState {
	return generatorState{policy: models.DefaultPasswordPolicy()}
}

// update applies a policy key and reports whether the password must be regenerated.
func (g generatorState) update(msg tea.KeyMsg) (generatorState, bool) {
	switch {
	case key.Matches(msg, keys.longer):
		if g.policy.Length < crypto.MaxPasswordLength {
			g.policy.Length++
		}
	case key.Matches(msg, keys.shorter):
		if g.policy.Length > crypto.MinPasswordLength {
			g.policy.Length--
		}
	case key.Matches(msg, keys.upper):
		g.policy.Uppercase = !g.policy.Uppercase
	case key.Matches(msg, keys.lower):
		g.policy.Lowercase = !g.policy.Lowercase
	case key.Matches(msg, keys.numbers):
		g.policy.Numbers = !g.policy.Numbers
	case key.Matches(msg, keys.symbols):
		g.policy.Symbols = !g.policy.Symbols
	case key.Matches(msg, keys.regenerate):
	default:
		return g, false
	}
	return g, true
}

func (g generatorState) view() string {
	var b strings.Builder

	password := g.result.Password
	if password == "" {
		password = "-"
	}
	b.WriteString("Password  │ ")
	b.WriteString(secretStyle.Render(password))
	if g.result.Password != "" {
		b.WriteString("\nStrength  │ ")
		b.WriteString(renderAssessment(g.result.Strength))
	}

	b.WriteString(fmt.Sprintf("\n\nLength    │ %d", g.policy.Length))
	b.WriteString("\n" + checkbox("A-Z", g.policy.Uppercase))
	b.WriteString("\n" + checkbox("a-z", g.policy.Lowercase))
	b.WriteString("\n" + checkbox("0-9", g.policy.Numbers))
	b.WriteString("\n" + checkbox("!@#", g.policy.Symbols))

	b.WriteString(renderMessages("", g.errMsg))
	return b.String()
}

func (g generatorState) hotKeys() string {
	h := "+/-: length │ u/l/n/s: classes │ r: regenerate │ c: copy │ esc: back"
	if g.returnToForm {
		h += " │ enter: use"
	}
	return h
}

func checkbox(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func (m mainLoopModel) updateGenerator(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.generator.returnToForm {
			m.screen = screenForm
		} else {
			m.screen = screenList
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter) && m.generator.returnToForm:
		if m.generator.result.Password == "" {
			return m, nil
		}
		m.form.setPassword(m.generator.result.Password)
		m.screen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		return m.copyValue("Password", m.generator.result.Password)
	}

	var regenerate bool
	m.generator, regenerate = m.generator.update(keyMsg)
	if regenerate {
		return m, m.cmdGenerate(m.generator.policy)
	}
	return m, nil
}

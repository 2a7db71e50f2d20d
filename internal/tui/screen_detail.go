package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.secret, m.showSecret = "", false
		m.errMsg = ""
		m.screen = screenList
	case key.Matches(keyMsg, keys.reveal):
		if m.secret != "" {
			m.showSecret = !m.showSecret
			return m, nil
		}
		return m, m.cmdReveal(m.selected.ID, revealShow)
	case key.Matches(keyMsg, keys.copy):
		if m.secret != "" {
			return m.copyValue("Password", m.secret)
		}
		return m, m.cmdReveal(m.selected.ID, revealCopy)
	case key.Matches(keyMsg, keys.copyUser):
		return m.copyValue("Username", m.selected.Username)
	case key.Matches(keyMsg, keys.edit):
		if m.secret != "" {
			m.form = editItemForm(m.selected, m.secret, m.categories)
			m.screen = screenForm
			return m, nil
		}
		return m, m.cmdReveal(m.selected.ID, revealEdit)
	case key.Matches(keyMsg, keys.delete):
		m.screen = screenConfirmDelete
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	item := m.selected

	password := "••••••••"
	if m.showSecret {
		password = secretStyle.Render(m.secret)
	}

	var b strings.Builder
	b.WriteString("Username  │ " + orDash(item.Username))
	b.WriteString("\nPassword  │ " + password)
	b.WriteString("\nStrength  │ " + renderStrength(item.PasswordStrength))
	b.WriteString("\nWebsite   │ " + orDash(item.Website))
	b.WriteString("\nCategory  │ " + categoryName(item))
	b.WriteString("\nNotes     │ " + orDash(item.Notes))
	if item.IsFavorite {
		b.WriteString("\nFavorite  │ ★")
	}
	b.WriteString("\nUpdated   │ " + item.UpdatedAt.Local().Format("2006-01-02 15:04"))
	b.WriteString(renderMessages(m.status, m.errMsg))

	return renderPage(strings.ToUpper(item.Title), b.String(),
		"r: reveal │ c: copy password │ u: copy username │ e: edit │ d: delete │ esc: back")
}

func (m mainLoopModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		return m, m.cmdDelete(m.selected.ID)
	case key.Matches(keyMsg, keys.no):
		m.screen = screenList
	}
	return m, nil
}

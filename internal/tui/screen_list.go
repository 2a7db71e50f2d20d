package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.items) == 0 {
			return m, nil
		}
		m.selected = m.items[m.cursor]
		m.secret, m.showSecret = "", false
		m.errMsg = ""
		m.screen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newItemForm(m.categories)
		m.screen = screenForm
	case key.Matches(keyMsg, keys.delete):
		if len(m.items) == 0 {
			return m, nil
		}
		m.selected = m.items[m.cursor]
		m.screen = screenConfirmDelete
	case key.Matches(keyMsg, keys.favorites):
		m.favoritesOnly = !m.favoritesOnly
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.category):
		m.categoryIdx++
		if m.categoryIdx >= len(m.categories) {
			m.categoryIdx = -1
		}
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.generator):
		m.generator.returnToForm = false
		m.screen = screenGenerator
		return m, m.cmdGenerate(m.generator.policy)
	case key.Matches(keyMsg, keys.security):
		m.report = nil
		m.screen = screenSecurity
		return m, m.cmdSecurity()
	case key.Matches(keyMsg, keys.password):
		m.password = newPasswordForm()
		m.screen = screenPassword
	case key.Matches(keyMsg, keys.logout):
		m.auth.Logout()
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Signed in as %s <%s>\n", m.user.Name, m.user.Email))
	b.WriteString("Filter: ")
	b.WriteString(m.filterLabel())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No items yet. Press n to add one.")
	default:
		b.WriteString(fmt.Sprintf("   %-24s │ %-22s │ %-14s │ %s\n", "Title", "Username", "Category", "Strength"))
		for i, item := range m.items {
			mark := "  "
			if item.IsFavorite {
				mark = "★ "
			}
			row := fmt.Sprintf("%s%-24s │ %-22s │ %-14s │ ",
				mark,
				fitText(item.Title, 24),
				fitText(orDash(item.Username), 22),
				fitText(categoryName(item), 14),
			)
			if i == m.cursor {
				row = selectedStyle.Render(">" + row)
			} else {
				row = " " + row
			}
			b.WriteString(row)
			b.WriteString(renderStrength(item.PasswordStrength))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("\n%d item(s)", len(m.items)))
	}

	b.WriteString(renderMessages(m.status, m.errMsg))

	return renderPage("VAULT", b.String(),
		"enter: open │ n: new │ d: delete │ f: favorites │ t: category │ g: generator │ a: security │ P: master password │ R: reload │ L: logout │ q: quit")
}

func (m mainLoopModel) filterLabel() string {
	parts := make([]string, 0, 2)
	if m.categoryIdx >= 0 && m.categoryIdx < len(m.categories) {
		parts = append(parts, "category "+m.categories[m.categoryIdx].Name)
	}
	if m.favoritesOnly {
		parts = append(parts, "favorites")
	}
	if len(parts) == 0 {
		return "all items"
	}
	return strings.Join(parts, ", ")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateSecurity(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
	case key.Matches(keyMsg, keys.reload):
		m.report = nil
		return m, m.cmdSecurity()
	}
	return m, nil
}

func (m mainLoopModel) viewSecurity() string {
	if m.report == nil {
		return renderPage("SECURITY REPORT", "Analyzing...", "esc: back")
	}

	r := m.report
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Score  │ %d/100 (%s)\n", r.Score, r.Label))
	b.WriteString(fmt.Sprintf("Issues │ %d\n", r.TotalIssues))

	writeIssueGroup(&b, "Weak passwords", r.WeakPasswords)
	writeIssueGroup(&b, "Reused passwords", r.ReusedPasswords)
	writeIssueGroup(&b, "Older than 90 days", r.OldPasswords)

	return renderPage("SECURITY REPORT", strings.TrimRight(b.String(), "\n"), "R: refresh │ esc: back")
}

func writeIssueGroup(b *strings.Builder, title string, items []models.VaultItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", title, len(items))))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  - ")
		b.WriteString(fitText(item.Title, 40))
		if item.Username != "" {
			b.WriteString(" (" + fitText(item.Username, 30) + ")")
		}
		b.WriteString("\n")
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a screen as title, divider, indented body, divider
// and a hotkey line.
func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func categoryName(item models.VaultItem) string {
	if item.Category == nil {
		return "-"
	}
	return item.Category.Name
}

func renderStrength(score *int) string {
	if score == nil {
		return helpStyle.Render("unknown")
	}
	return strengthStyle(*score).Render(crypto.StrengthLabel(*score))
}

func renderAssessment(a models.StrengthAssessment) string {
	bar := strings.Repeat("█", a.Percentage/10) + strings.Repeat("░", 10-a.Percentage/10)
	return strengthStyle(a.Score).Render(fmt.Sprintf("%s %s (%d%%)", bar, a.Label, a.Percentage))
}

func renderMessages(status, errMsg string) string {
	var b strings.Builder
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
	}
	return b.String()
}

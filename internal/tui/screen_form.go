package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldWebsite
	fieldNotes
	fieldCategory
	formFieldCount
)

// itemForm edits a vault item before it is sealed by the vault service.
// editID is zero for a new item.
type itemForm struct {
	editID int64

	inputs     []textinput.Model
	notes      textarea.Model
	categories []models.Category
	// categoryIdx indexes categories; -1 means uncategorized.
	categoryIdx int
	favorite    bool
	focus       int
	errMsg      string
}

func newItemForm(categories []models.Category) itemForm {
	password := newInput("password", 256)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	notes := textarea.New()
	notes.Placeholder = "notes"
	notes.SetWidth(40)
	notes.SetHeight(3)
	notes.ShowLineNumbers = false

	f := itemForm{
		inputs: []textinput.Model{
			newInput("title", 120),
			newInput("username", 254),
			password,
			newInput("https://", 2048),
		},
		notes:       notes,
		categories:  categories,
		categoryIdx: -1,
	}
	f.setFocus(fieldTitle)
	return f
}

// editItemForm prefills the form from an existing item and its decrypted secret.
func editItemForm(item models.VaultItem, password string, categories []models.Category) itemForm {
	f := newItemForm(categories)
	f.editID = item.ID
	f.inputs[fieldTitle].SetValue(item.Title)
	f.inputs[fieldUsername].SetValue(item.Username)
	f.inputs[fieldPassword].SetValue(password)
	f.inputs[fieldWebsite].SetValue(item.Website)
	f.notes.SetValue(item.Notes)
	f.favorite = item.IsFavorite
	if item.CategoryID != nil {
		for i, c := range categories {
			if c.ID == *item.CategoryID {
				f.categoryIdx = i
			}
		}
	}
	return f
}

func (f *itemForm) setFocus(idx int) {
	f.focus = ((idx % formFieldCount) + formFieldCount) % formFieldCount
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	if f.focus == fieldNotes {
		f.notes.Focus()
	} else {
		f.notes.Blur()
	}
}

func (f *itemForm) setPassword(password string) {
	f.inputs[fieldPassword].SetValue(password)
	f.inputs[fieldPassword].CursorEnd()
}

// input returns the form contents, or an error message when it cannot be saved.
func (f itemForm) input() (models.VaultItemInput, string) {
	in := models.VaultItemInput{
		Title:      strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Username:   strings.TrimSpace(f.inputs[fieldUsername].Value()),
		Password:   f.inputs[fieldPassword].Value(),
		Website:    strings.TrimSpace(f.inputs[fieldWebsite].Value()),
		Notes:      f.notes.Value(),
		IsFavorite: f.favorite,
	}
	if f.categoryIdx >= 0 && f.categoryIdx < len(f.categories) {
		id := f.categories[f.categoryIdx].ID
		in.CategoryID = &id
	}

	switch {
	case in.Title == "":
		return in, "Title is required"
	case in.Password == "":
		return in, "Password is required"
	}
	return in, ""
}

// update handles keys that stay inside the form. Saving, generation and
// leaving the form are handled by the main loop.
func (f itemForm) update(msg tea.Msg) (itemForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.setFocus(f.focus + 1)
			return f, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus(f.focus - 1)
			return f, nil
		case key.Matches(keyMsg, keys.toggleFav):
			f.favorite = !f.favorite
			return f, nil
		case f.focus == fieldCategory && key.Matches(keyMsg, keys.left):
			f.categoryIdx--
			if f.categoryIdx < -1 {
				f.categoryIdx = len(f.categories) - 1
			}
			return f, nil
		case f.focus == fieldCategory && key.Matches(keyMsg, keys.right):
			f.categoryIdx++
			if f.categoryIdx >= len(f.categories) {
				f.categoryIdx = -1
			}
			return f, nil
		case f.focus != fieldNotes && key.Matches(keyMsg, keys.enter):
			f.setFocus(f.focus + 1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch {
	case f.focus < len(f.inputs):
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	case f.focus == fieldNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return f, cmd
}

func (f itemForm) view() string {
	var b strings.Builder
	b.WriteString("Title     │ ")
	b.WriteString(f.inputs[fieldTitle].View())
	b.WriteString("\nUsername  │ ")
	b.WriteString(f.inputs[fieldUsername].View())
	b.WriteString("\nPassword  │ ")
	b.WriteString(f.inputs[fieldPassword].View())
	if pass := f.inputs[fieldPassword].Value(); pass != "" {
		b.WriteString("\n          │ ")
		b.WriteString(renderAssessment(crypto.ScorePasswordStrength(pass)))
	}
	b.WriteString("\nWebsite   │ ")
	b.WriteString(f.inputs[fieldWebsite].View())
	b.WriteString("\nNotes     │\n")
	b.WriteString(f.notes.View())

	category := "Uncategorized"
	if f.categoryIdx >= 0 && f.categoryIdx < len(f.categories) {
		category = f.categories[f.categoryIdx].Name
	}
	category = "< " + category + " >"
	if f.focus == fieldCategory {
		category = selectedStyle.Render(category)
	}
	b.WriteString("\nCategory  │ ")
	b.WriteString(category)

	fav := "[ ]"
	if f.favorite {
		fav = "[x]"
	}
	b.WriteString("\nFavorite  │ ")
	b.WriteString(fav)

	b.WriteString(renderMessages("", f.errMsg))
	return b.String()
}

func (f itemForm) title() string {
	if f.editID != 0 {
		return "EDIT ITEM"
	}
	return "NEW ITEM"
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editID != 0 {
				m.screen = screenDetail
			} else {
				m.screen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.save):
			input, errMsg := m.form.input()
			if errMsg != "" {
				m.form.errMsg = errMsg
				return m, nil
			}
			m.form.errMsg = ""
			return m, m.cmdSave(m.form.editID, input)
		case key.Matches(keyMsg, keys.fill):
			m.generator.returnToForm = true
			m.screen = screenGenerator
			return m, m.cmdGenerate(m.generator.policy)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

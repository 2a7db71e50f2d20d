package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenGenerator
	screenSecurity
	screenConfirmDelete
	screenPassword
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// mainLoopModel is the vault browser shown after authentication.
type mainLoopModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	vault service.ClientVaultService
	user  models.User

	screen screen

	items      []models.VaultItem
	categories []models.Category
	cursor     int
	loading    bool

	favoritesOnly bool
	// categoryIdx indexes categories for filtering; -1 shows everything.
	categoryIdx int

	selected models.VaultItem
	// secret holds the decrypted password of selected once revealed.
	secret     string
	showSecret bool

	form      itemForm
	password  passwordForm
	generator generatorState
	report    *models.SecurityReport

	status string
	errMsg string
	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	return mainLoopModel{
		ctx:         ctx,
		auth:        services.AuthService,
		vault:       services.VaultService,
		user:        user,
		categoryIdx: -1,
		loading:     true,
		generator:   newGeneratorState(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case vaultLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.items = msg.items
		m.categories = msg.categories
		if m.categoryIdx >= len(m.categories) {
			m.categoryIdx = -1
		}
		if m.cursor >= len(m.items) {
			m.cursor = max(len(m.items)-1, 0)
		}
		m.errMsg = ""
		return m, nil
	case revealedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if msg.itemID != m.selected.ID {
			return m, nil
		}
		m.secret = msg.password
		switch msg.purpose {
		case revealEdit:
			m.form = editItemForm(m.selected, m.secret, m.categories)
			m.screen = screenForm
			return m, nil
		case revealCopy:
			return m.copyValue("Password", m.secret)
		}
		m.showSecret = true
		return m, nil
	case itemSavedMsg:
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		return m.flash("Saved "+msg.item.Title, m.cmdLoad())
	case itemDeletedMsg:
		m.screen = screenList
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.flash("Deleted", m.cmdLoad())
	case generatedMsg:
		if msg.err != nil {
			m.generator.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.generator.errMsg = ""
		m.generator.result = msg.result
		return m, nil
	case passwordChangedMsg:
		m.password.submitting = false
		switch {
		case errors.Is(msg.err, adapter.ErrConflict):
			m.password.errMsg = "The vault kept changing during re-encryption, try again"
			return m, nil
		case msg.err != nil:
			m.password.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		return m.flash("Master password changed", m.cmdLoad())
	case securityLoadedMsg:
		if msg.err != nil {
			m.screen = screenList
			return m.fail(msg.err)
		}
		m.report = &msg.report
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenGenerator:
		return m.updateGenerator(msg)
	case screenSecurity:
		return m.updateSecurity(msg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(msg)
	case screenPassword:
		return m.updatePassword(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return renderPage(m.form.title(), m.form.view(), "tab: next field │ ctrl+g: generate │ ctrl+f: favorite │ ctrl+s: save │ esc: cancel")
	case screenGenerator:
		return renderPage("PASSWORD GENERATOR", m.generator.view()+renderMessages(m.status, ""), m.generator.hotKeys())
	case screenSecurity:
		return m.viewSecurity()
	case screenPassword:
		return m.viewPassword()
	case screenConfirmDelete:
		return renderPage("DELETE ITEM", "Delete \""+m.selected.Title+"\"? This cannot be undone.", "y: delete │ n: cancel")
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.errMsg = humanizeError(err)
	return m, nil
}

// flash shows a status line that clears itself after statusTTL.
func (m mainLoopModel) flash(status string, cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.status = status
	m.errMsg = ""
	cmds = append(cmds, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} }))
	return m, tea.Batch(cmds...)
}

func (m mainLoopModel) copyValue(label, value string) (tea.Model, tea.Cmd) {
	if value == "" {
		m.errMsg = "Nothing to copy"
		return m, nil
	}
	if err := writeClipboard(value); err != nil {
		m.errMsg = "Copy failed: " + err.Error()
		return m, nil
	}
	return m.flash(label + " copied to clipboard")
}

func (m mainLoopModel) filter() models.VaultFilter {
	f := models.VaultFilter{FavoriteOnly: m.favoritesOnly}
	if m.categoryIdx >= 0 && m.categoryIdx < len(m.categories) {
		id := m.categories[m.categoryIdx].ID
		f.CategoryID = &id
	}
	return f
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx, vault, filter := m.ctx, m.vault, m.filter()
	return func() tea.Msg {
		categories, err := vault.Categories(ctx)
		if err != nil {
			return vaultLoadedMsg{err: err}
		}
		items, err := vault.List(ctx, filter)
		return vaultLoadedMsg{items: items, categories: categories, err: err}
	}
}

func (m mainLoopModel) cmdReveal(itemID int64, purpose revealPurpose) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		password, err := vault.Reveal(ctx, itemID)
		return revealedMsg{itemID: itemID, password: password, purpose: purpose, err: err}
	}
}

func (m mainLoopModel) cmdSave(editID int64, input models.VaultItemInput) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		var (
			item models.VaultItem
			err  error
		)
		if editID != 0 {
			item, err = vault.Update(ctx, editID, input)
		} else {
			item, err = vault.Create(ctx, input)
		}
		return itemSavedMsg{item: item, err: err}
	}
}

func (m mainLoopModel) cmdDelete(itemID int64) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return itemDeletedMsg{itemID: itemID, err: vault.Delete(ctx, itemID)}
	}
}

func (m mainLoopModel) cmdGenerate(policy models.PasswordPolicy) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		result, err := vault.Generate(ctx, policy)
		return generatedMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdSecurity() tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		report, err := vault.SecurityReport(ctx)
		return securityLoadedMsg{report: report, err: err}
	}
}

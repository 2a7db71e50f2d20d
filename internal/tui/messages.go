package tui

import (
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow when Err is nil.
type LoginResult struct {
	User models.User
	Err  error
}

type vaultLoadedMsg struct {
	items      []models.VaultItem
	categories []models.Category
	err        error
}

type revealPurpose int

const (
	revealShow revealPurpose = iota
	revealCopy
	revealEdit
)

type revealedMsg struct {
	itemID   int64
	password string
	purpose  revealPurpose
	err      error
}

type itemSavedMsg struct {
	item models.VaultItem
	err  error
}

type itemDeletedMsg struct {
	itemID int64
	err    error
}

type generatedMsg struct {
	result models.GeneratedPassword
	err    error
}

type securityLoadedMsg struct {
	report models.SecurityReport
	err    error
}

type passwordChangedMsg struct {
	err error
}

type clearStatusMsg struct{}

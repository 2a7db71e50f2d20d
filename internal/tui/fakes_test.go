package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeAuth struct {
	RegisterFunc func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	LoginFunc    func(ctx context.Context, req models.LoginRequest) (models.User, error)
	ChangeFunc   func(ctx context.Context, current, next string) error
	loggedOut    bool
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.RegisterFunc(ctx, req)
}

func (f *fakeAuth) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.LoginFunc(ctx, req)
}

func (f *fakeAuth) ChangeMasterPassword(ctx context.Context, current, next string) error {
	return f.ChangeFunc(ctx, current, next)
}

func (f *fakeAuth) Logout() { f.loggedOut = true }

func (f *fakeAuth) CurrentUser() (models.User, bool) { return models.User{}, false }

type fakeVault struct {
	ListFunc           func(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error)
	RevealFunc         func(ctx context.Context, itemID int64) (string, error)
	CreateFunc         func(ctx context.Context, input models.VaultItemInput) (models.VaultItem, error)
	UpdateFunc         func(ctx context.Context, itemID int64, input models.VaultItemInput) (models.VaultItem, error)
	DeleteFunc         func(ctx context.Context, itemID int64) error
	CategoriesFunc     func(ctx context.Context) ([]models.Category, error)
	SecurityReportFunc func(ctx context.Context) (models.SecurityReport, error)
	GenerateFunc       func(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error)
}

func (f *fakeVault) List(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error) {
	return f.ListFunc(ctx, filter)
}

func (f *fakeVault) Reveal(ctx context.Context, itemID int64) (string, error) {
	return f.RevealFunc(ctx, itemID)
}

func (f *fakeVault) Create(ctx context.Context, input models.VaultItemInput) (models.VaultItem, error) {
	return f.CreateFunc(ctx, input)
}

func (f *fakeVault) Update(ctx context.Context, itemID int64, input models.VaultItemInput) (models.VaultItem, error) {
	return f.UpdateFunc(ctx, itemID, input)
}

func (f *fakeVault) Delete(ctx context.Context, itemID int64) error {
	return f.DeleteFunc(ctx, itemID)
}

func (f *fakeVault) Categories(ctx context.Context) ([]models.Category, error) {
	return f.CategoriesFunc(ctx)
}

func (f *fakeVault) SecurityReport(ctx context.Context) (models.SecurityReport, error) {
	return f.SecurityReportFunc(ctx)
}

func (f *fakeVault) Generate(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error) {
	return f.GenerateFunc(ctx, policy)
}

var (
	_ service.ClientAuthService  = (*fakeAuth)(nil)
	_ service.ClientVaultService = (*fakeVault)(nil)
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

// run executes cmd and returns its message. Batches are not unwrapped.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

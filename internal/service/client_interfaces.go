package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the client session. The master password never
// leaves the client except inside the login and register requests.
type ClientAuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// ChangeMasterPassword re-encrypts every vault item under next and
	// replaces the master password on the server in one request.
	ChangeMasterPassword(ctx context.Context, current, next string) error
	Logout()
	CurrentUser() (models.User, bool)
}

// ClientVaultService encrypts secrets before upload and decrypts them on
// reveal, using the session's master password as the passphrase.
type ClientVaultService interface {
	List(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error)
	Reveal(ctx context.Context, itemID int64) (string, error)
	Create(ctx context.Context, input models.VaultItemInput) (models.VaultItem, error)
	Update(ctx context.Context, itemID int64, input models.VaultItemInput) (models.VaultItem, error)
	Delete(ctx context.Context, itemID int64) error

	Categories(ctx context.Context) ([]models.Category, error)
	SecurityReport(ctx context.Context) (models.SecurityReport, error)
	Generate(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error)
}

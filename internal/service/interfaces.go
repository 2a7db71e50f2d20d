package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID int64, req models.DeleteAccountRequest) error
	UpdateAvatar(ctx context.Context, userID int64, req models.AvatarRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type VaultService interface {
	List(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error)
	Get(ctx context.Context, userID, itemID int64) (models.VaultItem, error)
	Create(ctx context.Context, userID int64, req models.VaultItemRequest) (models.VaultItem, error)
	Update(ctx context.Context, userID, itemID int64, req models.VaultItemRequest) (models.VaultItem, error)
	Delete(ctx context.Context, userID, itemID int64) error
}

type CategoryService interface {
	List(ctx context.Context, userID int64) ([]models.Category, error)
	Create(ctx context.Context, userID int64, req models.CategoryRequest) (models.Category, error)
	Delete(ctx context.Context, userID, categoryID int64) error
}

// ActivityService records and lists the audit trail.
type ActivityService interface {
	// Log records an entry. It never fails the caller: storage errors are
	// logged and dropped.
	Log(ctx context.Context, userID int64, action models.ActivityAction, description string)
	List(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}

type SettingsService interface {
	Get(ctx context.Context, userID int64) (models.UserSettings, error)
	Update(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error)
}

type SecurityService interface {
	Report(ctx context.Context, userID int64) (models.SecurityReport, error)
}

type GeneratorService interface {
	Generate(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error)
	Strength(ctx context.Context, password string) models.StrengthAssessment
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Emails are stored as given; the
// service normalizes them.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateAvatar(ctx context.Context, userID int64, image string) (models.User, error)

	// ChangePassword replaces the password hash and, in the same
	// transaction, the secrets re-encrypted under the new password.
	ChangePassword(ctx context.Context, userID int64, passwordHash string, secrets []models.ReencryptedSecret) error

	// DeleteUserCascade removes the user and every row they own in one
	// transaction.
	DeleteUserCascade(ctx context.Context, userID int64) error
}

// VaultRepository persists vault items. Every method is scoped to the
// owning user; an item of another user is reported as ErrNotFound.
type VaultRepository interface {
	// ListItems returns matching items sorted by updated_at descending,
	// with Category populated.
	ListItems(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error)
	GetItem(ctx context.Context, userID, itemID int64) (models.VaultItem, error)
	CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	// ListCategories returns the user's categories sorted by name, each
	// with its ItemCount.
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	GetCategory(ctx context.Context, userID, categoryID int64) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	CreateCategories(ctx context.Context, userID int64, categories []models.Category) error

	// DeleteCategory removes the category and uncategorizes its items.
	DeleteCategory(ctx context.Context, userID, categoryID int64) error
}

// ActivityRepository persists the audit trail.
type ActivityRepository interface {
	InsertActivity(ctx context.Context, entry models.ActivityLog) error

	// ListActivity returns the newest entries first.
	ListActivity(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)

	// PurgeActivityBefore deletes entries created before cutoff and returns
	// the number of deleted rows.
	PurgeActivityBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// SettingsRepository persists per-user settings.
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	UpsertSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error)
}

// Pinger reports database liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

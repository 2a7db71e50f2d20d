package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	usersTable      = "users"
	vaultItemsTable = "vault_items"
	categoriesTable = "categories"
	activityTable   = "activity_logs"
	settingsTable   = "user_settings"
)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "image", "created_at", "updated_at"}

	vaultItemColumns = []string{
		"v.id", "v.user_id", "v.title", "v.username", "v.encrypted_password",
		"v.password_fingerprint", "v.password_strength", "v.website", "v.notes",
		"v.category_id", "v.is_favorite", "v.created_at", "v.updated_at",
		"c.name", "c.color",
	}

	categoryColumns = []string{"id", "user_id", "name", "color", "created_at", "updated_at"}

	activityColumns = []string{"id", "user_id", "action", "description", "ip_address", "user_agent", "created_at"}

	settingsColumns = []string{"user_id", "theme", "auto_lock_minutes", "default_view", "two_factor_enabled", "created_at", "updated_at"}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Image, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanVaultItem(row rowScanner) (models.VaultItem, error) {
	var (
		item          models.VaultItem
		strength      sql.NullInt64
		categoryID    sql.NullInt64
		categoryName  sql.NullString
		categoryColor sql.NullString
	)

	err := row.Scan(
		&item.ID, &item.UserID, &item.Title, &item.Username, &item.EncryptedPassword,
		&item.PasswordFingerprint, &strength, &item.Website, &item.Notes,
		&categoryID, &item.IsFavorite, &item.CreatedAt, &item.UpdatedAt,
		&categoryName, &categoryColor,
	)
	if err != nil {
		return models.VaultItem{}, err
	}

	if strength.Valid {
		s := int(strength.Int64)
		item.PasswordStrength = &s
	}
	if categoryID.Valid {
		id := categoryID.Int64
		item.CategoryID = &id
		item.Category = &models.Category{
			ID:     id,
			UserID: item.UserID,
			Name:   categoryName.String,
			Color:  categoryColor.String,
		}
	}

	return item, nil
}

func scanCategory(row rowScanner, withCount bool) (models.Category, error) {
	var c models.Category
	dest := []any{&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt}
	if withCount {
		dest = append(dest, &c.ItemCount)
	}
	err := row.Scan(dest...)
	return c, err
}

func scanActivity(row rowScanner) (models.ActivityLog, error) {
	var a models.ActivityLog
	err := row.Scan(&a.ID, &a.UserID, &a.Action, &a.Description, &a.IPAddress, &a.UserAgent, &a.CreatedAt)
	return a, err
}

func scanSettings(row rowScanner) (models.UserSettings, error) {
	var s models.UserSettings
	err := row.Scan(&s.UserID, &s.Theme, &s.AutoLockMinutes, &s.DefaultView, &s.TwoFactorEnabled, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

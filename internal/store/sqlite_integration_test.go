package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, config.DB{DSN: filepath.Join(t.TempDir(), "vault.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Equal(t, migrations.DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate(ctx))

	return NewStorages(db, logger.Nop())
}

func TestSQLite_VaultLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	require.NoError(t, s.CategoryRepository.CreateCategories(ctx, user.ID, models.DefaultCategories))
	cats, err := s.CategoryRepository.ListCategories(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cats, len(models.DefaultCategories))

	strength := 3
	item, err := s.VaultRepository.CreateItem(ctx, models.VaultItem{
		UserID:              user.ID,
		Title:               "GitHub",
		EncryptedPassword:   "v1$argon2id$t=1,m=65536,p=4$c2FsdA$bm9uY2U",
		PasswordFingerprint: "ab",
		PasswordStrength:    &strength,
		CategoryID:          &cats[0].ID,
	})
	require.NoError(t, err)
	require.NotNil(t, item.Category)
	assert.Equal(t, cats[0].Name, item.Category.Name)

	cats, err = s.CategoryRepository.ListCategories(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cats[0].ItemCount)

	require.NoError(t, s.CategoryRepository.DeleteCategory(ctx, user.ID, cats[0].ID))
	item, err = s.VaultRepository.GetItem(ctx, user.ID, item.ID)
	require.NoError(t, err)
	assert.Nil(t, item.CategoryID)
	assert.Nil(t, item.Category)

	_, err = s.VaultRepository.GetItem(ctx, user.ID+1, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.ActivityRepository.InsertActivity(ctx, models.ActivityLog{UserID: user.ID, Action: models.ActionRegister, Description: "Account created"}))
	_, err = s.SettingsRepository.UpsertSettings(ctx, models.DefaultUserSettings(user.ID))
	require.NoError(t, err)

	require.NoError(t, s.UserRepository.DeleteUserCascade(ctx, user.ID))
	_, err = s.UserRepository.FindUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := s.VaultRepository.ListItems(ctx, models.VaultFilter{UserID: user.ID})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSQLite_ChangePasswordRequiresEveryItem(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	a, err := s.VaultRepository.CreateItem(ctx, models.VaultItem{UserID: user.ID, Title: "A", EncryptedPassword: "old-A"})
	require.NoError(t, err)
	b, err := s.VaultRepository.CreateItem(ctx, models.VaultItem{UserID: user.ID, Title: "B", EncryptedPassword: "old-B"})
	require.NoError(t, err)

	err = s.UserRepository.ChangePassword(ctx, user.ID, "h2", []models.ReencryptedSecret{{ID: a.ID, EncryptedPassword: "new-A"}})
	require.ErrorIs(t, err, ErrVaultChanged)

	stored, err := s.UserRepository.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "h1", stored.PasswordHash)
	got, err := s.VaultRepository.GetItem(ctx, user.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "old-A", got.EncryptedPassword)

	err = s.UserRepository.ChangePassword(ctx, user.ID, "h2", []models.ReencryptedSecret{
		{ID: a.ID, EncryptedPassword: "new-A"},
		{ID: b.ID, EncryptedPassword: "new-B"},
	})
	require.NoError(t, err)

	stored, err = s.UserRepository.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "h2", stored.PasswordHash)
	got, err = s.VaultRepository.GetItem(ctx, user.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-B", got.EncryptedPassword)
}

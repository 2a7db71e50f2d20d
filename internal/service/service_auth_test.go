package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-pass-vault-test",
	TokenDuration: time.Hour,
	BcryptCost:    bcrypt.MinCost,
}

func newTestAuthService(t *testing.T) (*authService, storeMocks, *recordingActivity) {
	storages, m := newStoreMocks(t)
	activity := &recordingActivity{}
	svc := NewAuthService(storages, activity, testAppConfig, logger.Nop()).(*authService)
	return svc, m, activity
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister_Success(t *testing.T) {
	svc, m, activity := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "Alice", u.Name)
			assert.True(t, models.IsValidAvatar(u.Image))
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")))
			u.ID = 7
			return u, nil
		})
	m.settings.EXPECT().UpsertSettings(ctx, models.DefaultUserSettings(7)).Return(models.DefaultUserSettings(7), nil)
	m.categories.EXPECT().CreateCategories(ctx, int64(7), models.DefaultCategories).Return(nil)

	user, err := svc.Register(ctx, models.RegisterRequest{Name: " <b>Alice</b> ", Email: " Alice@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, []models.ActivityAction{models.ActionRegister}, activity.actions())
}

func TestRegister_SeedFailuresAreNotFatal(t *testing.T) {
	svc, m, _ := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{ID: 3}, nil)
	m.settings.EXPECT().UpsertSettings(ctx, gomock.Any()).Return(models.UserSettings{}, errors.New("db down"))
	m.categories.EXPECT().CreateCategories(ctx, int64(3), gomock.Any()).Return(errors.New("db down"))

	user, err := svc.Register(ctx, models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "short"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, m, activity := newTestAuthService(t)

	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrAlreadyExists)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
	assert.Empty(t, activity.actions())
}

func TestLogin(t *testing.T) {
	hash := mustHash(t, "correct horse")

	t.Run("success", func(t *testing.T) {
		svc, m, activity := newTestAuthService(t)
		m.users.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").
			Return(models.User{ID: 1, Email: "alice@example.com", PasswordHash: hash}, nil)

		user, err := svc.Login(context.Background(), models.LoginRequest{Email: "ALICE@example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, []models.ActivityAction{models.ActionLogin}, activity.actions())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m, activity := newTestAuthService(t)
		m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).
			Return(models.User{ID: 1, PasswordHash: hash}, nil)

		_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "battery staple"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, activity.actions())
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, m, _ := newTestAuthService(t)
		m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNotFound)

		_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m, _ := newTestAuthService(t)
		m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUnavailable)

		_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, store.ErrUnavailable)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestChangePassword(t *testing.T) {
	hash := mustHash(t, "old password")
	secrets := []models.ReencryptedSecret{{ID: 4, EncryptedPassword: "v1$new"}}

	t.Run("success", func(t *testing.T) {
		svc, m, activity := newTestAuthService(t)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{ID: 1, PasswordHash: hash}, nil)
		m.users.EXPECT().ChangePassword(gomock.Any(), int64(1), gomock.Any(), secrets).DoAndReturn(
			func(_ context.Context, _ int64, newHash string, _ []models.ReencryptedSecret) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new password")))
				return nil
			})

		err := svc.ChangePassword(context.Background(), 1, models.ChangePasswordRequest{
			CurrentPassword: "old password", NewPassword: "new password", ReencryptedItems: secrets,
		})
		require.NoError(t, err)
		assert.Equal(t, []models.ActivityAction{models.ActionChangePassword}, activity.actions())
	})

	t.Run("re-encrypted set out of date", func(t *testing.T) {
		svc, m, activity := newTestAuthService(t)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{ID: 1, PasswordHash: hash}, nil)
		m.users.EXPECT().ChangePassword(gomock.Any(), int64(1), gomock.Any(), secrets).Return(store.ErrVaultChanged)

		err := svc.ChangePassword(context.Background(), 1, models.ChangePasswordRequest{
			CurrentPassword: "old password", NewPassword: "new password", ReencryptedItems: secrets,
		})
		assert.ErrorIs(t, err, store.ErrVaultChanged)
		assert.Empty(t, activity.actions())
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, m, _ := newTestAuthService(t)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{ID: 1, PasswordHash: hash}, nil)

		err := svc.ChangePassword(context.Background(), 1, models.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new password"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("new password too short", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)

		err := svc.ChangePassword(context.Background(), 1, models.ChangePasswordRequest{CurrentPassword: "old password", NewPassword: "short"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestDeleteAccount(t *testing.T) {
	hash := mustHash(t, "correct horse")

	t.Run("success", func(t *testing.T) {
		svc, m, _ := newTestAuthService(t)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{ID: 2, PasswordHash: hash}, nil)
		m.users.EXPECT().DeleteUserCascade(gomock.Any(), int64(2)).Return(nil)

		require.NoError(t, svc.DeleteAccount(context.Background(), 2, models.DeleteAccountRequest{Password: "correct horse"}))
	})

	t.Run("password required", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		assert.ErrorIs(t, svc.DeleteAccount(context.Background(), 2, models.DeleteAccountRequest{}), ErrInvalidDataProvided)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m, _ := newTestAuthService(t)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{ID: 2, PasswordHash: hash}, nil)

		assert.ErrorIs(t, svc.DeleteAccount(context.Background(), 2, models.DeleteAccountRequest{Password: "nope"}), ErrWrongPassword)
	})
}

func TestUpdateAvatar(t *testing.T) {
	svc, m, activity := newTestAuthService(t)
	avatar := models.DefaultAvatars[3]

	m.users.EXPECT().UpdateAvatar(gomock.Any(), int64(1), avatar).Return(models.User{ID: 1, Image: avatar}, nil)

	user, err := svc.UpdateAvatar(context.Background(), 1, models.AvatarRequest{Image: avatar})
	require.NoError(t, err)
	assert.Equal(t, avatar, user.Image)
	assert.Equal(t, []models.ActivityAction{models.ActionUpdateAvatar}, activity.actions())

	_, err = svc.UpdateAvatar(context.Background(), 1, models.AvatarRequest{Image: "https://evil.example/x.svg"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateAndParseToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	_, err = svc.ParseToken(ctx, token.String()+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

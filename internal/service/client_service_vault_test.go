package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientVault(t *testing.T) (*clientVaultService, *mock.MockServerAdapter, *clientSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	session := &clientSession{}

	svc := NewClientVaultService(serverAdapter, crypto.NewCredentialTransform(), session, logger.Nop()).(*clientVaultService)
	return svc, serverAdapter, session
}

func TestClientVaultService_Create_EncryptsPassword(t *testing.T) {
	svc, serverAdapter, session := newTestClientVault(t)
	ctx := context.Background()
	session.set(models.User{ID: 1}, "master")
	transform := crypto.NewCredentialTransform()

	input := models.VaultItemInput{
		Title:      "GitHub",
		Username:   "alice",
		Password:   "Abc12345!",
		CategoryID: ptr(int64(4)),
	}

	serverAdapter.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.VaultItemRequest) (models.VaultItem, error) {
			assert.Equal(t, "GitHub", req.Title)
			assert.NotContains(t, req.EncryptedPassword, "Abc12345!")

			plain, err := transform.Decrypt(req.EncryptedPassword, "master")
			require.NoError(t, err)
			assert.Equal(t, "Abc12345!", plain)

			assert.Equal(t, transform.Fingerprint("Abc12345!", "master", 1), req.PasswordFingerprint)
			require.NotNil(t, req.PasswordStrength)
			assert.Equal(t, 2, *req.PasswordStrength)
			require.NotNil(t, req.CategoryID.ID)
			assert.Equal(t, int64(4), *req.CategoryID.ID)
			return models.VaultItem{ID: 9, Title: req.Title}, nil
		},
	)

	item, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(9), item.ID)
}

func TestClientVaultService_Create_WithoutSession(t *testing.T) {
	svc, _, _ := newTestClientVault(t)

	_, err := svc.Create(context.Background(), models.VaultItemInput{Title: "x", Password: "y"})
	assert.ErrorIs(t, err, ErrSessionRequired)
}

func TestClientVaultService_Reveal(t *testing.T) {
	svc, serverAdapter, session := newTestClientVault(t)
	ctx := context.Background()
	session.set(models.User{ID: 1}, "master")

	ciphertext, err := crypto.NewCredentialTransform().Encrypt("hunter2", "master")
	require.NoError(t, err)
	serverAdapter.EXPECT().GetItem(ctx, int64(7)).Return(models.VaultItem{ID: 7, EncryptedPassword: ciphertext}, nil)

	plain, err := svc.Reveal(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plain)
}

func TestClientVaultService_Reveal_ForeignCiphertext(t *testing.T) {
	svc, serverAdapter, session := newTestClientVault(t)
	ctx := context.Background()
	session.set(models.User{ID: 1}, "master")

	ciphertext, err := crypto.NewCredentialTransform().Encrypt("hunter2", "someone-else")
	require.NoError(t, err)
	serverAdapter.EXPECT().GetItem(ctx, int64(7)).Return(models.VaultItem{EncryptedPassword: ciphertext}, nil)

	_, err = svc.Reveal(ctx, 7)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailure)
}

func TestClientVaultService_Delete_NotFound(t *testing.T) {
	svc, serverAdapter, _ := newTestClientVault(t)

	serverAdapter.EXPECT().DeleteItem(gomock.Any(), int64(3)).Return(adapter.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 3), adapter.ErrNotFound)
}

func TestClientVaultService_Generate_Local(t *testing.T) {
	svc, _, _ := newTestClientVault(t)

	out, err := svc.Generate(context.Background(), models.DefaultPasswordPolicy())
	require.NoError(t, err)
	assert.Len(t, out.Password, 16)
	assert.Equal(t, "Very Strong", out.Strength.Label)

	_, err = svc.Generate(context.Background(), models.PasswordPolicy{Length: 4, Lowercase: true})
	assert.ErrorIs(t, err, crypto.ErrInvalidPolicy)
}

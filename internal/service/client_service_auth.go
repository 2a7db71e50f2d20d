package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	transform crypto.CredentialTransform
	session   *clientSession
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, transform crypto.CredentialTransform, session *clientSession, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		transform: transform,
		session:   session,
		logger:    logger,
	}
}

func (c *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	out, err := c.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	c.session.set(out.User, req.Password)
	return out.User, nil
}

func (c *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	out, err := c.adapter.Login(ctx, req)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	c.session.set(out.User, req.Password)
	return out.User, nil
}

// reencryptAttempts bounds how often ChangeMasterPassword re-lists the vault
// after the server reports that items changed underneath it.
const reencryptAttempts = 3

// ChangeMasterPassword downloads every item, re-encrypts its password under
// next and sends the new ciphertexts with the password change. Nothing is
// sent if current does not match the session or any item fails to decrypt.
// A 409 from the server means the vault changed since the listing; the
// whole round is then repeated.
func (c *clientAuthService) ChangeMasterPassword(ctx context.Context, current, next string) error {
	log := logger.FromContext(ctx)

	passphrase, err := c.session.passphrase()
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(current), []byte(passphrase)) != 1 {
		return ErrWrongPassword
	}

	for attempt := 1; ; attempt++ {
		secrets, err := c.reencryptAll(ctx, current, next)
		if err != nil {
			return err
		}

		err = c.adapter.ChangePassword(ctx, models.ChangePasswordRequest{
			CurrentPassword:  current,
			NewPassword:      next,
			ReencryptedItems: secrets,
		})
		if errors.Is(err, adapter.ErrConflict) && attempt < reencryptAttempts {
			log.Warn().Str("func", "*clientAuthService.ChangeMasterPassword").Int("attempt", attempt).Msg("vault changed during re-encryption, retrying")
			continue
		}
		if err != nil {
			return mapAdapterError(err)
		}
		break
	}

	user, _ := c.session.current()
	c.session.set(user, next)
	return nil
}

// reencryptAll lists the vault and seals every password under next.
func (c *clientAuthService) reencryptAll(ctx context.Context, current, next string) ([]models.ReencryptedSecret, error) {
	log := logger.FromContext(ctx)

	items, err := c.adapter.ListItems(ctx, models.VaultFilter{})
	if err != nil {
		return nil, mapAdapterError(err)
	}
	user, _ := c.session.current()

	secrets := make([]models.ReencryptedSecret, 0, len(items))
	for _, item := range items {
		plaintext, err := c.transform.Decrypt(item.EncryptedPassword, current)
		if err != nil {
			log.Err(err).Str("func", "*clientAuthService.reencryptAll").Int64("item_id", item.ID).Msg("error decrypting item")
			return nil, fmt.Errorf("item %d: %w", item.ID, err)
		}

		ciphertext, err := c.transform.Encrypt(plaintext, next)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", item.ID, err)
		}

		secrets = append(secrets, models.ReencryptedSecret{
			ID:                  item.ID,
			EncryptedPassword:   ciphertext,
			PasswordFingerprint: c.transform.Fingerprint(plaintext, next, user.ID),
		})
	}
	return secrets, nil
}

func (c *clientAuthService) Logout() {
	c.session.clear()
	c.adapter.SetToken("")
}

func (c *clientAuthService) CurrentUser() (models.User, bool) {
	return c.session.current()
}

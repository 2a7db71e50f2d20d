package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientVaultService struct {
	adapter   adapter.ServerAdapter
	transform crypto.CredentialTransform
	session   *clientSession
	logger    *logger.Logger
}

func NewClientVaultService(serverAdapter adapter.ServerAdapter, transform crypto.CredentialTransform, session *clientSession, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		adapter:   serverAdapter,
		transform: transform,
		session:   session,
		logger:    logger,
	}
}

func (c *clientVaultService) List(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error) {
	items, err := c.adapter.ListItems(ctx, filter)
	return items, mapAdapterError(err)
}

// Reveal fetches the item and decrypts its password.
func (c *clientVaultService) Reveal(ctx context.Context, itemID int64) (string, error) {
	passphrase, err := c.session.passphrase()
	if err != nil {
		return "", err
	}

	item, err := c.adapter.GetItem(ctx, itemID)
	if err != nil {
		return "", mapAdapterError(err)
	}

	plaintext, err := c.transform.Decrypt(item.EncryptedPassword, passphrase)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientVaultService.Reveal").Int64("item_id", itemID).Msg("error decrypting item")
		return "", err
	}
	return plaintext, nil
}

func (c *clientVaultService) Create(ctx context.Context, input models.VaultItemInput) (models.VaultItem, error) {
	req, err := c.seal(input)
	if err != nil {
		return models.VaultItem{}, err
	}

	item, err := c.adapter.CreateItem(ctx, req)
	return item, mapAdapterError(err)
}

func (c *clientVaultService) Update(ctx context.Context, itemID int64, input models.VaultItemInput) (models.VaultItem, error) {
	req, err := c.seal(input)
	if err != nil {
		return models.VaultItem{}, err
	}

	item, err := c.adapter.UpdateItem(ctx, itemID, req)
	return item, mapAdapterError(err)
}

func (c *clientVaultService) Delete(ctx context.Context, itemID int64) error {
	return mapAdapterError(c.adapter.DeleteItem(ctx, itemID))
}

func (c *clientVaultService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.adapter.ListCategories(ctx)
	return categories, mapAdapterError(err)
}

func (c *clientVaultService) SecurityReport(ctx context.Context) (models.SecurityReport, error) {
	report, err := c.adapter.SecurityReport(ctx)
	return report, mapAdapterError(err)
}

// Generate produces a password locally; the server is not involved.
func (c *clientVaultService) Generate(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error) {
	password, err := c.transform.GeneratePassword(policy)
	if err != nil {
		return models.GeneratedPassword{}, err
	}
	return models.GeneratedPassword{
		Password: password,
		Strength: c.transform.ScorePasswordStrength(password),
	}, nil
}

// seal encrypts input.Password and attaches its fingerprint and strength.
func (c *clientVaultService) seal(input models.VaultItemInput) (models.VaultItemRequest, error) {
	passphrase, err := c.session.passphrase()
	if err != nil {
		return models.VaultItemRequest{}, err
	}
	user, _ := c.session.current()

	ciphertext, err := c.transform.Encrypt(input.Password, passphrase)
	if err != nil {
		return models.VaultItemRequest{}, fmt.Errorf("error encrypting password: %w", err)
	}
	strength := c.transform.ScorePasswordStrength(input.Password).Score

	return models.VaultItemRequest{
		Title:               input.Title,
		Username:            input.Username,
		EncryptedPassword:   ciphertext,
		PasswordFingerprint: c.transform.Fingerprint(input.Password, passphrase, user.ID),
		PasswordStrength:    &strength,
		Website:             input.Website,
		Notes:               input.Notes,
		CategoryID:          models.CategoryRef{ID: input.CategoryID},
		IsFavorite:          input.IsFavorite,
	}, nil
}

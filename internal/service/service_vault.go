package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultService stores vault items as opaque ciphertexts. It never sees a
// plaintext secret.
type vaultService struct {
	vaultRepository    store.VaultRepository
	categoryRepository store.CategoryRepository
	activityService    ActivityService
	validator          validators.Validator
	logger             *logger.Logger
}

func NewVaultService(storages *store.Storages, activityService ActivityService, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository:    storages.VaultRepository,
		categoryRepository: storages.CategoryRepository,
		activityService:    activityService,
		validator:          validators.NewVaultValidator(),
		logger:             logger,
	}
}

func (s *vaultService) List(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error) {
	items, err := s.vaultRepository.ListItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing vault items: %w", err)
	}
	return items, nil
}

// Get returns the item and records an ACCESS_ITEM entry.
func (s *vaultService) Get(ctx context.Context, userID, itemID int64) (models.VaultItem, error) {
	item, err := s.vaultRepository.GetItem(ctx, userID, itemID)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("error getting vault item: %w", err)
	}

	s.activityService.Log(ctx, userID, models.ActionAccessItem, "Accessed password for "+item.Title)
	return item, nil
}

func (s *vaultService) Create(ctx context.Context, userID int64, req models.VaultItemRequest) (models.VaultItem, error) {
	item, err := s.prepare(ctx, userID, req)
	if err != nil {
		return models.VaultItem{}, err
	}

	created, err := s.vaultRepository.CreateItem(ctx, item)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("error creating vault item: %w", err)
	}

	s.activityService.Log(ctx, userID, models.ActionCreateItem, "Created password for "+created.Title)
	return created, nil
}

// Update replaces every editable field of the item. A missing or empty
// categoryId uncategorizes it.
func (s *vaultService) Update(ctx context.Context, userID, itemID int64, req models.VaultItemRequest) (models.VaultItem, error) {
	item, err := s.prepare(ctx, userID, req)
	if err != nil {
		return models.VaultItem{}, err
	}
	item.ID = itemID

	updated, err := s.vaultRepository.UpdateItem(ctx, item)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("error updating vault item: %w", err)
	}

	s.activityService.Log(ctx, userID, models.ActionUpdateItem, "Updated password for "+updated.Title)
	return updated, nil
}

func (s *vaultService) Delete(ctx context.Context, userID, itemID int64) error {
	item, err := s.vaultRepository.GetItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("error getting vault item: %w", err)
	}

	if err = s.vaultRepository.DeleteItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("error deleting vault item: %w", err)
	}

	s.activityService.Log(ctx, userID, models.ActionDeleteItem, "Deleted password for "+item.Title)
	return nil
}

// prepare sanitizes and validates req and checks that the referenced
// category belongs to userID.
func (s *vaultService) prepare(ctx context.Context, userID int64, req models.VaultItemRequest) (models.VaultItem, error) {
	item := req.ToVaultItem(userID)
	item.Title = validators.SanitizeText(item.Title)
	item.Username = validators.SanitizeText(item.Username)
	item.Website = validators.SanitizeText(item.Website)
	item.Notes = validators.SanitizeText(item.Notes)

	if err := s.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, newValidationError(err)
	}

	if item.CategoryID != nil {
		_, err := s.categoryRepository.GetCategory(ctx, userID, *item.CategoryID)
		if errors.Is(err, store.ErrNotFound) {
			return models.VaultItem{}, ErrInvalidCategory
		}
		if err != nil {
			return models.VaultItem{}, fmt.Errorf("error checking category: %w", err)
		}
	}

	return item, nil
}

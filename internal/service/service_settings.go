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

type settingsService struct {
	settingsRepository store.SettingsRepository
	activityService    ActivityService
	validator          validators.Validator
	logger             *logger.Logger
}

func NewSettingsService(settingsRepository store.SettingsRepository, activityService ActivityService, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		activityService:    activityService,
		validator:          validators.NewAccountValidator(),
		logger:             logger,
	}
}

// Get returns the user's settings, creating the defaults on first access.
func (s *settingsService) Get(ctx context.Context, userID int64) (models.UserSettings, error) {
	settings, err := s.settingsRepository.GetSettings(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return s.settingsRepository.UpsertSettings(ctx, models.DefaultUserSettings(userID))
	}
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("error getting settings: %w", err)
	}
	return settings, nil
}

// Update applies the non-nil fields of update on top of the current
// settings.
func (s *settingsService) Update(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.UserSettings{}, newValidationError(err)
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return models.UserSettings{}, err
	}
	update.Apply(&current)

	saved, err := s.settingsRepository.UpsertSettings(ctx, current)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("error saving settings: %w", err)
	}

	s.activityService.Log(ctx, userID, models.ActionUpdateSettings, "Settings updated")
	return saved, nil
}

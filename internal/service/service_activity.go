package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 500
)

type activityService struct {
	activityRepository store.ActivityRepository
	logger             *logger.Logger
}

func NewActivityService(activityRepository store.ActivityRepository, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		logger:             logger,
	}
}

// Log stores an activity entry tagged with the caller's IP address and user
// agent taken from ctx.
func (s *activityService) Log(ctx context.Context, userID int64, action models.ActivityAction, description string) {
	meta := utils.GetRequestMeta(ctx)

	err := s.activityRepository.InsertActivity(ctx, models.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*activityService.Log").
			Int64("user_id", userID).
			Str("action", string(action)).
			Msg("failed to record activity")
	}
}

// List returns the newest entries first. A non-positive limit means
// DefaultActivityLimit; larger values are capped at MaxActivityLimit.
func (s *activityService) List(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}

	entries, err := s.activityRepository.ListActivity(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing activity: %w", err)
	}
	return entries, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const upsertSettingsSuffix = `ON CONFLICT (user_id) DO UPDATE SET
    theme = EXCLUDED.theme,
    auto_lock_minutes = EXCLUDED.auto_lock_minutes,
    default_view = EXCLUDED.default_view,
    two_factor_enabled = EXCLUDED.two_factor_enabled,
    updated_at = EXCLUDED.updated_at`

type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingsRepository) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(settingsColumns...).
		From(settingsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	s, err := scanSettings(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserSettings{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetSettings").Msg("error selecting settings")
		return models.UserSettings{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return s, nil
}

// UpsertSettings inserts or replaces the settings row of settings.UserID
// and returns the stored row.
func (r *settingsRepository) UpsertSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := r.db.builder().
		Insert(settingsTable).
		Columns(settingsColumns...).
		Values(settings.UserID, settings.Theme, settings.AutoLockMinutes, settings.DefaultView,
			settings.TwoFactorEnabled, now, now).
		Suffix(upsertSettingsSuffix).
		ToSql()
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertSettings").Msg("error upserting settings")
		return models.UserSettings{}, r.db.wrap(ErrExecutingStatement, err)
	}

	return r.GetSettings(ctx, settings.UserID)
}

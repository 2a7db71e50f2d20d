package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var settingsRowColumns = []string{"user_id", "theme", "auto_lock_minutes", "default_view", "two_factor_enabled", "created_at", "updated_at"}

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &settingsRepository{db: db, logger: logger.Nop()}, mock
}

func TestGetSettings_NotFound(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectQuery("SELECT .* FROM user_settings WHERE user_id").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSettings(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertSettings(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)
	now := time.Now()
	s := models.DefaultUserSettings(1)
	s.Theme = "dark"

	mock.ExpectExec(q("INSERT INTO user_settings (user_id,theme,auto_lock_minutes,default_view,two_factor_enabled,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (user_id) DO UPDATE SET")).
		WithArgs(int64(1), "dark", 15, "grid", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM user_settings").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(settingsRowColumns).AddRow(1, "dark", 15, "grid", false, now, now))

	saved, err := repo.UpsertSettings(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "dark", saved.Theme)
	assert.NoError(t, mock.ExpectationsWereMet())
}

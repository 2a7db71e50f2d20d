package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestSettingsService_GetCreatesDefaults(t *testing.T) {
	_, m := newStoreMocks(t)
	svc := NewSettingsService(m.settings, &recordingActivity{}, logger.Nop())

	m.settings.EXPECT().GetSettings(gomock.Any(), int64(1)).Return(models.UserSettings{}, store.ErrNotFound)
	m.settings.EXPECT().UpsertSettings(gomock.Any(), models.DefaultUserSettings(1)).Return(models.DefaultUserSettings(1), nil)

	s, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "system", s.Theme)
	assert.Equal(t, 15, s.AutoLockMinutes)
	assert.Equal(t, "grid", s.DefaultView)
	assert.False(t, s.TwoFactorEnabled)
}

func TestSettingsService_PartialUpdate(t *testing.T) {
	_, m := newStoreMocks(t)
	activity := &recordingActivity{}
	svc := NewSettingsService(m.settings, activity, logger.Nop())

	current := models.DefaultUserSettings(1)
	want := current
	want.Theme = "dark"

	m.settings.EXPECT().GetSettings(gomock.Any(), int64(1)).Return(current, nil)
	m.settings.EXPECT().UpsertSettings(gomock.Any(), want).Return(want, nil)

	s, err := svc.Update(context.Background(), 1, models.SettingsUpdate{Theme: ptr("dark")})
	require.NoError(t, err)
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, 15, s.AutoLockMinutes)
	assert.Equal(t, []models.ActivityAction{models.ActionUpdateSettings}, activity.actions())
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	_, m := newStoreMocks(t)
	svc := NewSettingsService(m.settings, &recordingActivity{}, logger.Nop())

	_, err := svc.Update(context.Background(), 1, models.SettingsUpdate{DefaultView: ptr("carousel")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestBuildSecurityReport(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	fresh := now.Add(-24 * time.Hour)

	items := []models.VaultItem{
		{ID: 1, PasswordStrength: ptr(0), PasswordFingerprint: "aa", UpdatedAt: fresh},
		{ID: 2, PasswordStrength: ptr(4), PasswordFingerprint: "aa", UpdatedAt: fresh},
		{ID: 3, PasswordStrength: ptr(3), PasswordFingerprint: "bb", UpdatedAt: now.Add(-91 * 24 * time.Hour)},
		{ID: 4, PasswordStrength: ptr(2), PasswordFingerprint: "cc", UpdatedAt: now.Add(-90 * 24 * time.Hour)},
		{ID: 5, UpdatedAt: fresh},
		{ID: 6, UpdatedAt: fresh},
	}

	report := buildSecurityReport(items, now)

	assert.Equal(t, []int64{1}, ids(report.WeakPasswords))
	assert.Equal(t, []int64{1, 2}, ids(report.ReusedPasswords))
	assert.Equal(t, []int64{3}, ids(report.OldPasswords))
	assert.Equal(t, 4, report.TotalIssues)
	assert.Equal(t, 60, report.Score)
	assert.Equal(t, "Good", report.Label)
}

func TestBuildSecurityReport_EmptyVault(t *testing.T) {
	report := buildSecurityReport(nil, time.Now())

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, "Excellent", report.Label)
	assert.NotNil(t, report.WeakPasswords)
	assert.NotNil(t, report.ReusedPasswords)
	assert.NotNil(t, report.OldPasswords)
}

func TestBuildSecurityReport_ScoreClampsAtZero(t *testing.T) {
	items := make([]models.VaultItem, 12)
	for i := range items {
		items[i] = models.VaultItem{ID: int64(i), PasswordStrength: ptr(1), UpdatedAt: time.Now()}
	}

	report := buildSecurityReport(items, time.Now())
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, "Poor", report.Label)
}

func TestSecurityLabel(t *testing.T) {
	assert.Equal(t, "Excellent", SecurityLabel(80))
	assert.Equal(t, "Good", SecurityLabel(79))
	assert.Equal(t, "Good", SecurityLabel(60))
	assert.Equal(t, "Fair", SecurityLabel(40))
	assert.Equal(t, "Poor", SecurityLabel(39))
}

func TestSecurityService_Report(t *testing.T) {
	_, m := newStoreMocks(t)
	svc := NewSecurityService(m.vault, logger.Nop())

	m.vault.EXPECT().ListItems(gomock.Any(), models.VaultFilter{UserID: 1}).Return([]models.VaultItem{}, nil)

	report, err := svc.Report(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 100, report.Score)
}

func ids(items []models.VaultItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

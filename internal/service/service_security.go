package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// weakStrengthBelow marks items whose recorded strength is Very Weak or Weak.
	weakStrengthBelow = 2

	// oldPasswordDays is the age, in whole days since the last update,
	// beyond which a password is reported as old.
	oldPasswordDays = 90

	issuePenalty = 10
)

type securityService struct {
	vaultRepository store.VaultRepository
	now             func() time.Time
	logger          *logger.Logger
}

func NewSecurityService(vaultRepository store.VaultRepository, logger *logger.Logger) SecurityService {
	return &securityService{
		vaultRepository: vaultRepository,
		now:             time.Now,
		logger:          logger,
	}
}

// Report inspects every vault item of userID.
//
// An item is weak when its recorded strength is below Fair, reused when
// another item carries the same non-empty fingerprint, and old when it has
// not been updated for more than 90 days. Items without a recorded
// strength or fingerprint are never reported as weak or reused.
func (s *securityService) Report(ctx context.Context, userID int64) (models.SecurityReport, error) {
	items, err := s.vaultRepository.ListItems(ctx, models.VaultFilter{UserID: userID})
	if err != nil {
		return models.SecurityReport{}, fmt.Errorf("error listing vault items: %w", err)
	}

	return buildSecurityReport(items, s.now()), nil
}

func buildSecurityReport(items []models.VaultItem, now time.Time) models.SecurityReport {
	report := models.SecurityReport{
		WeakPasswords:   make([]models.VaultItem, 0),
		ReusedPasswords: make([]models.VaultItem, 0),
		OldPasswords:    make([]models.VaultItem, 0),
	}

	fingerprints := make(map[string]int, len(items))
	for _, item := range items {
		if item.PasswordFingerprint != "" {
			fingerprints[item.PasswordFingerprint]++
		}
	}

	for _, item := range items {
		if item.PasswordStrength != nil && *item.PasswordStrength < weakStrengthBelow {
			report.WeakPasswords = append(report.WeakPasswords, item)
		}
		if item.PasswordFingerprint != "" && fingerprints[item.PasswordFingerprint] > 1 {
			report.ReusedPasswords = append(report.ReusedPasswords, item)
		}
		if int(now.Sub(item.UpdatedAt).Hours()/24) > oldPasswordDays {
			report.OldPasswords = append(report.OldPasswords, item)
		}
	}

	report.TotalIssues = len(report.WeakPasswords) + len(report.ReusedPasswords) + len(report.OldPasswords)
	report.Score = min(100, max(0, 100-report.TotalIssues*issuePenalty))
	report.Label = SecurityLabel(report.Score)

	return report
}

// SecurityLabel names a security score.
func SecurityLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

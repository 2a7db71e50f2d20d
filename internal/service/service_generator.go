package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

type generatorService struct {
	transform crypto.CredentialTransform
}

func NewGeneratorService(transform crypto.CredentialTransform) GeneratorService {
	return &generatorService{transform: transform}
}

// Generate returns a random password for policy together with its strength.
// An invalid policy is reported as a ValidationError.
func (s *generatorService) Generate(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error) {
	password, err := s.transform.GeneratePassword(policy)
	if errors.Is(err, crypto.ErrInvalidPolicy) {
		return models.GeneratedPassword{}, newValidationError(err)
	}
	if err != nil {
		return models.GeneratedPassword{}, fmt.Errorf("error generating password: %w", err)
	}

	return models.GeneratedPassword{
		Password: password,
		Strength: s.transform.ScorePasswordStrength(password),
	}, nil
}

func (s *generatorService) Strength(ctx context.Context, password string) models.StrengthAssessment {
	return s.transform.ScorePasswordStrength(password)
}

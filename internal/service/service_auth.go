package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authService handles accounts and sessions. Master passwords are stored as
// bcrypt hashes; sessions are HS256 JWTs.
type authService struct {
	userRepository     store.UserRepository
	categoryRepository store.CategoryRepository
	settingsRepository store.SettingsRepository
	activityService    ActivityService
	validator          validators.Validator

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(storages *store.Storages, activityService ActivityService, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:     storages.UserRepository,
		categoryRepository: storages.CategoryRepository,
		settingsRepository: storages.SettingsRepository,
		activityService:    activityService,
		validator:          validators.NewAccountValidator(),
		bcryptCost:         cost,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		logger:             logger,
	}
}

// Register creates an account with a random avatar and seeds its default
// settings and categories. Seeding failures are logged and do not fail the
// registration.
//
// Returns store.ErrAlreadyExists when the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	req.Name = validators.SanitizeText(req.Name)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, newValidationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Image:        models.DefaultAvatars[rand.IntN(len(models.DefaultAvatars))],
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.seedAccount(ctx, user.ID)
	a.activityService.Log(ctx, user.ID, models.ActionRegister, "User account created")

	return user, nil
}

func (a *authService) seedAccount(ctx context.Context, userID int64) {
	log := logger.FromContext(ctx)

	if _, err := a.settingsRepository.UpsertSettings(ctx, models.DefaultUserSettings(userID)); err != nil {
		log.Err(err).Str("func", "*authService.seedAccount").Int64("user_id", userID).Msg("error creating default settings")
	}
	if err := a.categoryRepository.CreateCategories(ctx, userID, models.DefaultCategories); err != nil {
		log.Err(err).Str("func", "*authService.seedAccount").Int64("user_id", userID).Msg("error creating default categories")
	}
}

// Login verifies the email and master password. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, newValidationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		log.Warn().Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	a.activityService.Log(ctx, user.ID, models.ActionLogin, "User logged in")
	return user, nil
}

func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the master password hash after verifying the
// current password. Ciphertexts re-encrypted by the client under the new
// password are stored in the same transaction.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}

	if _, err := a.verifyPassword(ctx, userID, req.CurrentPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err = a.userRepository.ChangePassword(ctx, userID, string(hash), req.ReencryptedItems); err != nil {
		return fmt.Errorf("error changing password: %w", err)
	}

	a.activityService.Log(ctx, userID, models.ActionChangePassword, "Master password changed successfully")
	return nil
}

// DeleteAccount removes the account and everything it owns after the
// master password has been confirmed.
func (a *authService) DeleteAccount(ctx context.Context, userID int64, req models.DeleteAccountRequest) error {
	if req.Password == "" {
		return newValidationError(validators.ErrEmptyPassword)
	}

	if _, err := a.verifyPassword(ctx, userID, req.Password); err != nil {
		return err
	}

	if err := a.userRepository.DeleteUserCascade(ctx, userID); err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}
	return nil
}

func (a *authService) UpdateAvatar(ctx context.Context, userID int64, req models.AvatarRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, newValidationError(err)
	}

	user, err := a.userRepository.UpdateAvatar(ctx, userID, req.Image)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating avatar: %w", err)
	}

	a.activityService.Log(ctx, userID, models.ActionUpdateAvatar, "Profile avatar updated")
	return user, nil
}

func (a *authService) verifyPassword(ctx context.Context, userID int64, password string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrWrongPassword
	}
	return user, nil
}

// CreateToken issues a signed JWT for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString. Every failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

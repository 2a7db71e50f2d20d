package validators

import (
	"context"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field names understood by AccountValidator.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldNewPassword     = "new_password"
	FieldAvatar          = "avatar"
	FieldTheme           = "theme"
	FieldAutoLockMinutes = "auto_lock_minutes"
	FieldDefaultView     = "default_view"
)

const (
	minNameLength     = 2
	minPasswordLength = 8
)

var (
	allowedThemes = map[string]struct{}{"light": {}, "dark": {}, "system": {}}
	allowedViews  = map[string]struct{}{"grid": {}, "list": {}}
)

// AccountValidator validates authentication requests and user settings.
//
// Supported types:
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.ChangePasswordRequest
//   - models.AvatarRequest
//   - models.SettingsUpdate
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)
	case models.ChangePasswordRequest:
		return v.validateChangePassword(value)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value)
	case models.AvatarRequest:
		return validateAvatar(value.Image)
	case *models.AvatarRequest:
		return validateAvatar(value.Image)
	case models.SettingsUpdate:
		return v.validateSettings(value)
	case *models.SettingsUpdate:
		return v.validateSettings(*value)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *AccountValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = validateName(r.Name)
		case FieldEmail:
			err = validateEmail(r.Email)
		case FieldPassword:
			err = validatePasswordLength(r.Password)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *AccountValidator) validateLogin(r models.LoginRequest) error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *AccountValidator) validateChangePassword(r models.ChangePasswordRequest) error {
	if r.CurrentPassword == "" {
		return ErrEmptyPassword
	}
	if err := validatePasswordLength(r.NewPassword); err != nil {
		return err
	}
	for _, item := range r.ReencryptedItems {
		if item.ID <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidItemID, item.ID)
		}
		if item.EncryptedPassword == "" {
			return ErrEmptyCiphertext
		}
	}
	return nil
}

func (v *AccountValidator) validateSettings(u models.SettingsUpdate) error {
	if u.Theme != nil {
		if _, ok := allowedThemes[*u.Theme]; !ok {
			return ErrInvalidTheme
		}
	}
	if u.DefaultView != nil {
		if _, ok := allowedViews[*u.DefaultView]; !ok {
			return ErrInvalidDefaultView
		}
	}
	if u.AutoLockMinutes != nil && *u.AutoLockMinutes <= 0 {
		return ErrInvalidAutoLock
	}
	return nil
}

func validateName(name string) error {
	if utf8.RuneCountInString(SanitizeText(name)) < minNameLength {
		return ErrInvalidName
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validatePasswordLength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func validateAvatar(image string) error {
	if !models.IsValidAvatar(image) {
		return ErrInvalidAvatar
	}
	return nil
}

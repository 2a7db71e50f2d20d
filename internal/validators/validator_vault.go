package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field names understood by VaultValidator.
const (
	FieldUserID            = "user_id"
	FieldTitle             = "title"
	FieldEncryptedPassword = "encrypted_password"
	FieldPasswordStrength  = "password_strength"
	FieldCategoryName      = "category_name"
	FieldCategoryColor     = "category_color"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// VaultValidator validates vault items and categories.
//
// Supported types:
//   - models.VaultItem
//   - models.Category
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItem:
		return v.validateItem(value, fields...)
	case *models.VaultItem:
		return v.validateItem(*value, fields...)
	case models.Category:
		return v.validateCategory(value, fields...)
	case *models.Category:
		return v.validateCategory(*value, fields...)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *VaultValidator) validateItem(item models.VaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldEncryptedPassword, FieldPasswordStrength}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = validateUserID(item.UserID)
		case FieldTitle:
			if item.Title == "" {
				err = ErrEmptyTitle
			}
		case FieldEncryptedPassword:
			if item.EncryptedPassword == "" {
				err = ErrEmptyCiphertext
			}
		case FieldPasswordStrength:
			if s := item.PasswordStrength; s != nil && (*s < 0 || *s > 4) {
				err = ErrInvalidStrength
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *VaultValidator) validateCategory(c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCategoryName, FieldCategoryColor}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = validateUserID(c.UserID)
		case FieldCategoryName:
			if c.Name == "" {
				err = ErrEmptyCategoryName
			}
		case FieldCategoryColor:
			if !hexColor.MatchString(c.Color) {
				err = ErrInvalidColor
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateUserID(id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

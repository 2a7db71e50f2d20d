package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidItemID      = errors.New("invalid vault item ID")
	ErrInvalidName        = errors.New("name must be at least 2 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidAvatar      = errors.New("invalid avatar selection")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyCiphertext    = errors.New("encrypted password is required")
	ErrInvalidStrength    = errors.New("password strength must be between 0 and 4")
	ErrEmptyCategoryName  = errors.New("category name is required")
	ErrInvalidColor       = errors.New("color must be a #RRGGBB hex value")
	ErrInvalidTheme       = errors.New("theme must be light, dark or system")
	ErrInvalidDefaultView = errors.New("default view must be grid or list")
	ErrInvalidAutoLock    = errors.New("auto lock minutes must be positive")
)

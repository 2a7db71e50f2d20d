package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of POST /api/auth/change-password.
//
// ReencryptedItems carries every vault item of the user re-encrypted under
// NewPassword by the client. The server replaces the stored ciphertexts in
// the same transaction that updates the password hash.
type ChangePasswordRequest struct {
	CurrentPassword  string              `json:"currentPassword"`
	NewPassword      string              `json:"newPassword"`
	ReencryptedItems []ReencryptedSecret `json:"reencryptedItems,omitempty"`
}

// ReencryptedSecret is one re-encrypted vault item secret.
type ReencryptedSecret struct {
	ID                  int64  `json:"id"`
	EncryptedPassword   string `json:"encryptedPassword"`
	PasswordFingerprint string `json:"passwordFingerprint,omitempty"`
}

// DeleteAccountRequest is the body of POST /api/auth/delete-account.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// VaultItemRequest is the body of vault create and update calls.
type VaultItemRequest struct {
	Title               string      `json:"title"`
	Username            string      `json:"username,omitempty"`
	EncryptedPassword   string      `json:"encryptedPassword"`
	PasswordFingerprint string      `json:"passwordFingerprint,omitempty"`
	PasswordStrength    *int        `json:"passwordStrength,omitempty"`
	Website             string      `json:"website,omitempty"`
	Notes               string      `json:"notes,omitempty"`
	CategoryID          CategoryRef `json:"categoryId"`
	IsFavorite          bool        `json:"isFavorite"`
}

// ToVaultItem converts the request into a VaultItem owned by userID.
func (r VaultItemRequest) ToVaultItem(userID int64) VaultItem {
	return VaultItem{
		UserID:              userID,
		Title:               r.Title,
		Username:            r.Username,
		EncryptedPassword:   r.EncryptedPassword,
		PasswordFingerprint: r.PasswordFingerprint,
		PasswordStrength:    r.PasswordStrength,
		Website:             r.Website,
		Notes:               r.Notes,
		CategoryID:          r.CategoryID.ID,
		IsFavorite:          r.IsFavorite,
	}
}

// CategoryRequest is the body of POST /api/categories.
type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AvatarRequest is the body of PUT /api/settings/avatar.
type AvatarRequest struct {
	Image string `json:"image"`
}

// StrengthRequest is the body of POST /api/strength.
type StrengthRequest struct {
	Password string `json:"password"`
}

// CategoryRef is an optional category reference. It decodes from a number,
// a numeric string, an empty string or null; the last two clear the
// category.
type CategoryRef struct {
	ID *int64
}

// NewCategoryRef returns a reference to id.
func NewCategoryRef(id int64) CategoryRef {
	return CategoryRef{ID: &id}
}

func (c *CategoryRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		c.ID = nil
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if raw == "" {
			c.ID = nil
			return nil
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid category id %q: %w", raw, err)
	}
	c.ID = &id
	return nil
}

func (c CategoryRef) MarshalJSON() ([]byte, error) {
	if c.ID == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(*c.ID, 10)), nil
}

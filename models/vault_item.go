package models

import "time"

// VaultItem is a single stored credential record.
//
// EncryptedPassword is always the output of crypto.Encrypt under the owner's
// master password; the server stores it as an opaque string and never sees
// the plaintext.
type VaultItem struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	// Title is the non-empty display label.
	Title    string `json:"title"`
	Username string `json:"username,omitempty"`

	// EncryptedPassword is the self-describing ciphertext of the secret.
	EncryptedPassword string `json:"encryptedPassword"`

	// PasswordFingerprint is a deterministic keyed hash of the plaintext
	// secret computed by the client. Equal fingerprints mean a reused
	// password. Empty when the client did not supply one.
	PasswordFingerprint string `json:"passwordFingerprint,omitempty"`

	// PasswordStrength is the strength score (0-4) of the plaintext secret
	// computed by the client, or nil when unknown.
	PasswordStrength *int `json:"passwordStrength,omitempty"`

	Website string `json:"website,omitempty"`
	Notes   string `json:"notes,omitempty"`

	// CategoryID references a Category owned by the same user; nil means
	// the item is uncategorized.
	CategoryID *int64 `json:"categoryId"`

	// Category is populated on read and is never persisted.
	Category *Category `json:"category"`

	IsFavorite bool `json:"isFavorite"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the VaultItem model.
func (v VaultItem) TableName() string {
	return "vault_items"
}

// VaultFilter narrows a vault listing.
type VaultFilter struct {
	UserID       int64
	CategoryID   *int64
	FavoriteOnly bool
}

// VaultItemInput is a vault item as entered on the client, before the
// password is encrypted.
type VaultItemInput struct {
	Title      string
	Username   string
	Password   string
	Website    string
	Notes      string
	CategoryID *int64
	IsFavorite bool
}

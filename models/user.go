package models

import "time"

// User represents a registered vault owner.
// PasswordHash holds the bcrypt hash of the master password and is never
// serialized to clients.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name shown in the dashboard.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's master password.
	PasswordHash string `json:"-"`

	// Image is the path of the selected avatar (one of DefaultAvatars).
	Image string `json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DefaultAvatars is the fixed set of avatars a user can choose from.
// A random one is assigned on registration.
var DefaultAvatars = []string{
	"/avatars/avatar-1.svg",
	"/avatars/avatar-2.svg",
	"/avatars/avatar-3.svg",
	"/avatars/avatar-4.svg",
	"/avatars/avatar-5.svg",
	"/avatars/avatar-6.svg",
	"/avatars/avatar-7.svg",
	"/avatars/avatar-8.svg",
	"/avatars/avatar-9.svg",
}

// IsValidAvatar reports whether avatar is one of DefaultAvatars.
func IsValidAvatar(avatar string) bool {
	for _, a := range DefaultAvatars {
		if a == avatar {
			return true
		}
	}
	return false
}

package models

import "time"

// UserSettings holds per-user dashboard preferences.
type UserSettings struct {
	UserID           int64     `json:"userId"`
	Theme            string    `json:"theme"`
	AutoLockMinutes  int       `json:"autoLockMinutes"`
	DefaultView      string    `json:"defaultView"`
	TwoFactorEnabled bool      `json:"twoFactorEnabled"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the UserSettings model.
func (s UserSettings) TableName() string {
	return "user_settings"
}

// DefaultUserSettings returns the settings created for a new account.
func DefaultUserSettings(userID int64) UserSettings {
	return UserSettings{
		UserID:           userID,
		Theme:            "system",
		AutoLockMinutes:  15,
		DefaultView:      "grid",
		TwoFactorEnabled: false,
	}
}

// SettingsUpdate is a partial settings update: only non-nil fields change.
type SettingsUpdate struct {
	Theme            *string `json:"theme,omitempty"`
	AutoLockMinutes  *int    `json:"autoLockMinutes,omitempty"`
	DefaultView      *string `json:"defaultView,omitempty"`
	TwoFactorEnabled *bool   `json:"twoFactorEnabled,omitempty"`
}

// Apply copies the non-nil fields of u onto s.
func (u SettingsUpdate) Apply(s *UserSettings) {
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.AutoLockMinutes != nil {
		s.AutoLockMinutes = *u.AutoLockMinutes
	}
	if u.DefaultView != nil {
		s.DefaultView = *u.DefaultView
	}
	if u.TwoFactorEnabled != nil {
		s.TwoFactorEnabled = *u.TwoFactorEnabled
	}
}

package models

import "time"

// ActivityAction names an auditable user action.
type ActivityAction string

const (
	ActionRegister       ActivityAction = "REGISTER"
	ActionLogin          ActivityAction = "LOGIN"
	ActionChangePassword ActivityAction = "CHANGE_PASSWORD"
	ActionCreateItem     ActivityAction = "CREATE_ITEM"
	ActionAccessItem     ActivityAction = "ACCESS_ITEM"
	ActionUpdateItem     ActivityAction = "UPDATE_ITEM"
	ActionDeleteItem     ActivityAction = "DELETE_ITEM"
	ActionUpdateAvatar   ActivityAction = "UPDATE_AVATAR"
	ActionUpdateSettings ActivityAction = "UPDATE_SETTINGS"
	ActionCreateCategory ActivityAction = "CREATE_CATEGORY"
	ActionDeleteCategory ActivityAction = "DELETE_CATEGORY"
)

// ActivityLog is a single audit trail entry.
type ActivityLog struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"userId"`
	Action      ActivityAction `json:"action"`
	Description string         `json:"description"`
	IPAddress   string         `json:"ipAddress,omitempty"`
	UserAgent   string         `json:"userAgent,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the ActivityLog model.
func (a ActivityLog) TableName() string {
	return "activity_logs"
}

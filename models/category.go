package models

import "time"

// Category groups vault items of a single user.
type Category struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`

	// Color is a #RRGGBB hex color.
	Color string `json:"color"`

	// ItemCount is the number of vault items in the category. Populated
	// only by listings.
	ItemCount int `json:"itemCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// DefaultCategories are seeded for every new account.
var DefaultCategories = []Category{
	{Name: "Social Media", Color: "#3b82f6"},
	{Name: "Banking", Color: "#10b981"},
	{Name: "Work", Color: "#f59e0b"},
	{Name: "Personal", Color: "#8b5cf6"},
}

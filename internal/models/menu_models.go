package models

import "time"

// MenuItemTag is one ordered {label, color} pair attached to a menu item.
type MenuItemTag struct {
	ID         int64   `json:"id"`
	MenuItemID int64   `json:"-"`
	Label      string  `json:"label"`
	Color      *string `json:"color,omitempty"`
	Position   int     `json:"position"`
}

// MenuItem is a single dish or drink on the menu. CategoryID is a weak
// reference: it must exist at creation time but is not re-validated later.
type MenuItem struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Price       float64       `json:"price"`
	CategoryID  int64         `json:"category_id"`
	IsAvailable bool          `json:"is_available"`
	Featured    bool          `json:"featured"`
	Badge       *string       `json:"badge,omitempty"`
	Image       *string       `json:"image,omitempty"`
	Tags        []MenuItemTag `json:"tags"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// MenuItemFilters defines the available filters for querying menu items.
// Available defaults to true in the service when the caller does not
// override it explicitly.
type MenuItemFilters struct {
	Available  *bool   `form:"available"`
	CategoryID *int64  `form:"category_id"`
	Tag        *string `form:"tag"`
	Name       *string `form:"name"`
	Page       int     `form:"page"`
	Limit      int     `form:"limit"`
}

package models

import "time"

// Category groups menu items. Name is unique after trimming.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryWithItems is the listing shape for the public menu view: a
// category together with its available items.
type CategoryWithItems struct {
	Category
	Items []MenuItem `json:"items"`
}

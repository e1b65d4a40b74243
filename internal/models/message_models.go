package models

import "time"

// Message is a contact form submission. Read flips to true when an admin
// fetches the message by id.
type Message struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name,omitempty"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageFilters defines the available filters for querying messages.
type MessageFilters struct {
	Read  *bool `form:"read"`
	Page  int   `form:"page"`
	Limit int   `form:"limit"`
}

package models

import "time"

// Reservation is a table booking. Price has a policy floor applied at
// creation when the caller does not supply one.
type Reservation struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Guests       int       `json:"guests"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes,omitempty"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReservationFilters defines the available filters for querying reservations.
// Date is expected in YYYY-MM-DD format.
type ReservationFilters struct {
	Status *string `form:"status"`
	Date   *string `form:"date"`
	Page   int     `form:"page"`
	Limit  int     `form:"limit"`
}

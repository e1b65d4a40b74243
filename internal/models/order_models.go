package models

import "time"

// OrderItem is one line of an order. UnitPrice is the menu price snapshot
// taken at creation time and never recomputed.
type OrderItem struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"-"`
	MenuItemID int64     `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Order is a customer order. TotalPrice is derived once at creation.
type Order struct {
	ID            int64       `json:"id"`
	OrderType     string      `json:"order_type"`
	Address       *string     `json:"address,omitempty"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	TotalPrice    float64     `json:"total_price"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderFilters defines the available filters for querying orders.
type OrderFilters struct {
	Status *string `form:"status"`
	Page   int     `form:"page"`
	Limit  int     `form:"limit"`
}

package trade

import (
	"time"

	"github.com/hjumpers/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status is the order lifecycle status. Any status is reachable from any
// other one; the admin panel drives transitions and is trusted.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Item is an order line: a product snapshot plus quantity, the unit price
// fixed at add-to-cart time, and the sale/rent designation.
type Item struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Type      string  `json:"type"`
}

// Order is a storefront order. Customer fields are denormalized; the link to
// the customers collection is by phone/email, not by foreign key.
type Order struct {
	ID              int       `json:"id"`
	CustomerID      int       `json:"customer_id,omitempty"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	CustomerAddress string    `json:"customer_address,omitempty"`
	Items           []Item    `json:"items"`
	Total           float64   `json:"total"`
	Status          Status    `json:"status"`
	EventType       string    `json:"event_type,omitempty"`
	RentDate        string    `json:"rent_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Validate checks the fields required at creation time
func (o *Order) Validate() error {
	if o.CustomerName == "" || o.CustomerPhone == "" || len(o.Items) == 0 {
		return shared.NewMissingFieldsError("customer_name", "customer_phone", "items")
	}
	return nil
}

// ComputeTotal sums price x quantity over the items with decimal arithmetic
func ComputeTotal(items []Item) float64 {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	f, _ := sum.Float64()
	return f
}

// Filter holds the optional order list filters
type Filter struct {
	Status     string
	CustomerID int
	EventType  string
	Limit      int
}

// Matches reports whether the order passes every filter that is set
func (o *Order) Matches(f Filter) bool {
	if f.Status != "" && f.Status != "all" && string(o.Status) != f.Status {
		return false
	}
	if f.CustomerID != 0 && o.CustomerID != f.CustomerID {
		return false
	}
	if f.EventType != "" && f.EventType != "all" && o.EventType != f.EventType {
		return false
	}
	return true
}

package partner

import (
	"time"

	"github.com/hjumpers/backend/internal/domain/partner"
	"github.com/hjumpers/backend/internal/domain/trade"
)

// ListQuery holds the customer list parameters
type ListQuery struct {
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
}

// CreateCustomerRequest carries the fields accepted when creating a customer
// from the admin form. Counters may be seeded when importing existing books.
type CreateCustomerRequest struct {
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	Notes       string     `json:"notes"`
	TotalOrders int        `json:"total_orders"`
	LastOrder   *time.Time `json:"last_order"`
}

// UpdateCustomerRequest carries a partial customer update
type UpdateCustomerRequest struct {
	Name        *string    `json:"name"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	Address     *string    `json:"address"`
	Notes       *string    `json:"notes"`
	TotalOrders *int       `json:"total_orders"`
	LastOrder   *time.Time `json:"last_order"`
}

// apply merges the non-nil fields over the customer
func (r UpdateCustomerRequest) apply(c *partner.Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
	if r.TotalOrders != nil {
		c.TotalOrders = *r.TotalOrders
	}
	if r.LastOrder != nil {
		c.LastOrder = r.LastOrder
	}
}

// CustomerDetail is a customer enriched with their order history, joined by
// phone or email since orders carry no customer foreign key
type CustomerDetail struct {
	partner.Customer
	Orders []trade.Order `json:"orders"`
}

package partner

import (
	"strings"
	"time"

	"github.com/hjumpers/backend/internal/domain/shared"
)

// Customer is an admin-visible customer record. Phone is the natural key;
// email is a secondary one when present. Orders reference customers by
// phone/email, so deleting a customer orphans its historical orders.
type Customer struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	Notes       string     `json:"notes"`
	TotalOrders int        `json:"total_orders"`
	LastOrder   *time.Time `json:"last_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate checks the fields required at explicit creation time
func (c *Customer) Validate() error {
	if c.Name == "" || c.Phone == "" {
		return shared.NewMissingFieldsError("name", "phone")
	}
	return nil
}

// MatchesSearch reports whether the customer matches a free-text search:
// name and email case-insensitively, phone as a raw substring.
func (c *Customer) MatchesSearch(search string) bool {
	if search == "" {
		return true
	}
	lower := strings.ToLower(search)
	if strings.Contains(strings.ToLower(c.Name), lower) {
		return true
	}
	if strings.Contains(c.Phone, search) {
		return true
	}
	return c.Email != "" && strings.Contains(strings.ToLower(c.Email), lower)
}

// SortValue returns the value a list sort compares for the given field name.
// created_at and last_order compare as timestamps; everything else compares
// by raw value. An unknown field compares equal everywhere, which leaves the
// stored order untouched.
func (c *Customer) SortValue(field string) any {
	switch field {
	case "id":
		return c.ID
	case "name":
		return c.Name
	case "phone":
		return c.Phone
	case "email":
		return c.Email
	case "address":
		return c.Address
	case "notes":
		return c.Notes
	case "total_orders":
		return c.TotalOrders
	case "last_order":
		if c.LastOrder == nil {
			return time.Time{}
		}
		return *c.LastOrder
	case "created_at":
		return c.CreatedAt
	case "updated_at":
		return c.UpdatedAt
	default:
		return nil
	}
}

// Greater is the strict two-way comparison the customer list sorts with.
// Equal values are never "greater", so a stable sort keeps them in stored
// order, matching the storefront's historical tie-break.
func Greater(a, b any) bool {
	switch av := a.(type) {
	case int:
		bv, ok := b.(int)
		return ok && av > bv
	case string:
		bv, ok := b.(string)
		return ok && av > bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.After(bv)
	default:
		return false
	}
}

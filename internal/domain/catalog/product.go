package catalog

import (
	"strings"
	"time"

	"github.com/hjumpers/backend/internal/domain/shared"
)

// Category is the product category shown in the storefront filters
type Category string

const (
	CategoryJumpers    Category = "jumpers"
	CategoryMesas      Category = "mesas"
	CategorySillas     Category = "sillas"
	CategoryAccesorios Category = "accesorios"
)

// IsValid reports whether the category is one of the storefront categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryJumpers, CategoryMesas, CategorySillas, CategoryAccesorios:
		return true
	}
	return false
}

// BusinessType says whether a product is offered for sale, rent, or both
type BusinessType string

const (
	BusinessTypeSale BusinessType = "sale"
	BusinessTypeRent BusinessType = "rent"
	BusinessTypeBoth BusinessType = "both"
)

// IsValid reports whether the business type is a known value
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypeSale, BusinessTypeRent, BusinessTypeBoth:
		return true
	}
	return false
}

// Matches reports whether the product's stored business type satisfies a
// requested sale/rent filter. A product stored as "both" matches either.
func (b BusinessType) Matches(requested BusinessType) bool {
	return b == requested || b == BusinessTypeBoth
}

// Product is a catalog entry. Order line items keep a denormalized copy of
// these fields, so deleting a product never touches historical orders.
type Product struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     Category     `json:"category"`
	BusinessType BusinessType `json:"business_type"`
	Price        float64      `json:"price"`
	RentPrice    float64      `json:"rent_price,omitempty"`
	InStock      int          `json:"in_stock"`
	Images       []string     `json:"images"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Validate checks the fields required at creation time
func (p *Product) Validate() error {
	if p.Name == "" || p.Description == "" || p.Category == "" {
		return shared.NewMissingFieldsError("name", "description", "category")
	}
	return nil
}

// Filter holds the optional, conjunctive product list filters
type Filter struct {
	Category     string
	BusinessType string
	Search       string
	Limit        int
}

// Matches reports whether the product passes every filter that is set
func (p *Product) Matches(f Filter) bool {
	if f.Category != "" && f.Category != "all" && string(p.Category) != f.Category {
		return false
	}
	if f.BusinessType != "" && f.BusinessType != "all" &&
		!p.BusinessType.Matches(BusinessType(f.BusinessType)) {
		return false
	}
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.Description), s) {
			return false
		}
	}
	return true
}

// UnitPrice returns the price fixed into a cart line for the given mode:
// the rent price for rentals, the sale price otherwise.
func (p *Product) UnitPrice(mode BusinessType) float64 {
	if mode == BusinessTypeRent {
		return p.RentPrice
	}
	return p.Price
}

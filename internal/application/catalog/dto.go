package catalog

import "github.com/hjumpers/backend/internal/domain/catalog"

// CreateProductRequest carries the fields accepted when creating a product
type CreateProductRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	BusinessType string   `json:"business_type"`
	Price        float64  `json:"price"`
	RentPrice    float64  `json:"rent_price"`
	InStock      int      `json:"in_stock"`
	Images       []string `json:"images"`
}

// UpdateProductRequest carries a partial product update; only non-nil fields
// are merged over the stored record. The id can never be changed.
type UpdateProductRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	BusinessType *string   `json:"business_type"`
	Price        *float64  `json:"price"`
	RentPrice    *float64  `json:"rent_price"`
	InStock      *int      `json:"in_stock"`
	Images       *[]string `json:"images"`
}

// apply merges the non-nil fields over the product
func (r UpdateProductRequest) apply(p *catalog.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Category != nil {
		p.Category = catalog.Category(*r.Category)
	}
	if r.BusinessType != nil {
		p.BusinessType = catalog.BusinessType(*r.BusinessType)
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.RentPrice != nil {
		p.RentPrice = *r.RentPrice
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.Images != nil {
		p.Images = *r.Images
	}
}

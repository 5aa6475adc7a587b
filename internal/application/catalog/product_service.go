package catalog

import (
	"context"
	"time"

	"github.com/hjumpers/backend/internal/domain/catalog"
	"github.com/hjumpers/backend/internal/domain/shared"
	"github.com/hjumpers/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// ProductService is the catalog repository: list/get/create/update/delete
// over the products collection of the shared document.
type ProductService struct {
	store persistence.Store
	log   *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(store persistence.Store, log *zap.Logger) *ProductService {
	return &ProductService{
		store: store,
		log:   log.Named("catalog"),
	}
}

// List returns the products passing every set filter, in stored order,
// truncated from the front when a positive limit is set
func (s *ProductService) List(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error) {
	var out []catalog.Product
	err := s.store.View(ctx, func(doc *persistence.Document) error {
		out = make([]catalog.Product, 0, len(doc.Products))
		for _, p := range doc.Products {
			if p.Matches(filter) {
				out = append(out, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// Get fetches a product by id
func (s *ProductService) Get(ctx context.Context, id int) (*catalog.Product, error) {
	var found *catalog.Product
	err := s.store.View(ctx, func(doc *persistence.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				p := doc.Products[i]
				found = &p
				return nil
			}
		}
		return shared.NewNotFoundError("Product")
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create validates the request, assigns the next id and stamps timestamps.
// Nothing is written to disk when validation fails.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	now := time.Now().UTC()
	product := catalog.Product{
		Name:         req.Name,
		Description:  req.Description,
		Category:     catalog.Category(req.Category),
		BusinessType: catalog.BusinessType(req.BusinessType),
		Price:        req.Price,
		RentPrice:    req.RentPrice,
		InStock:      req.InStock,
		Images:       req.Images,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		product.ID = doc.NextProductID()
		doc.Products = append(doc.Products, product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Product created", zap.Int("id", product.ID), zap.String("name", product.Name))
	return &product, nil
}

// Update merges the partial payload over the stored record, preserving the id
// and refreshing updated_at
func (s *ProductService) Update(ctx context.Context, id int, req UpdateProductRequest) (*catalog.Product, error) {
	var updated *catalog.Product
	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID != id {
				continue
			}
			req.apply(&doc.Products[i])
			doc.Products[i].ID = id
			doc.Products[i].UpdatedAt = time.Now().UTC()
			p := doc.Products[i]
			updated = &p
			return nil
		}
		return shared.NewNotFoundError("Product")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the product and returns the deleted record
func (s *ProductService) Delete(ctx context.Context, id int) (*catalog.Product, error) {
	var deleted *catalog.Product
	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID != id {
				continue
			}
			p := doc.Products[i]
			deleted = &p
			doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
			return nil
		}
		return shared.NewNotFoundError("Product")
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Product deleted", zap.Int("id", id))
	return deleted, nil
}

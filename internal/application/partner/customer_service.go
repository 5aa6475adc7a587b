package partner

import (
	"context"
	"sort"
	"time"

	"github.com/hjumpers/backend/internal/domain/partner"
	"github.com/hjumpers/backend/internal/domain/shared"
	"github.com/hjumpers/backend/internal/domain/trade"
	"github.com/hjumpers/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// CustomerService is the customer repository plus the phone/email uniqueness
// rules enforced on explicit create and update.
type CustomerService struct {
	store persistence.Store
	log   *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(store persistence.Store, log *zap.Logger) *CustomerService {
	return &CustomerService{
		store: store,
		log:   log.Named("partner"),
	}
}

// List searches, sorts and truncates the customers collection. Sorting
// defaults to created_at descending; ties keep the stored order.
func (s *CustomerService) List(ctx context.Context, q ListQuery) ([]partner.Customer, error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := q.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	var out []partner.Customer
	err := s.store.View(ctx, func(doc *persistence.Document) error {
		out = make([]partner.Customer, 0, len(doc.Customers))
		for _, c := range doc.Customers {
			if c.MatchesSearch(q.Search) {
				out = append(out, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := out[i].SortValue(sortBy)
		b := out[j].SortValue(sortBy)
		if sortOrder == "desc" {
			return partner.Greater(a, b)
		}
		return partner.Greater(b, a)
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Get fetches a customer with their order history attached
func (s *CustomerService) Get(ctx context.Context, id int) (*CustomerDetail, error) {
	var detail *CustomerDetail
	err := s.store.View(ctx, func(doc *persistence.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID != id {
				continue
			}
			d := CustomerDetail{Customer: doc.Customers[i]}
			for _, o := range doc.Orders {
				if o.CustomerPhone == d.Phone || (d.Email != "" && o.CustomerEmail == d.Email) {
					d.Orders = append(d.Orders, o)
				}
			}
			if d.Orders == nil {
				d.Orders = []trade.Order{}
			}
			detail = &d
			return nil
		}
		return shared.NewNotFoundError("Customer")
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Create validates and rejects a phone or non-empty email that another
// customer already holds
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*partner.Customer, error) {
	now := time.Now().UTC()
	customer := partner.Customer{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
		TotalOrders: req.TotalOrders,
		LastOrder:   req.LastOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		for _, c := range doc.Customers {
			if c.Phone == req.Phone || (req.Email != "" && c.Email == req.Email) {
				return shared.NewDomainError(shared.CodeConflict,
					"Customer with this phone or email already exists")
			}
		}
		customer.ID = doc.NextCustomerID()
		doc.Customers = append(doc.Customers, customer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Customer created", zap.Int("id", customer.ID), zap.String("phone", customer.Phone))
	return &customer, nil
}

// Update merges the partial payload, rejecting a phone/email that would
// collide with a different customer
func (s *CustomerService) Update(ctx context.Context, id int, req UpdateCustomerRequest) (*partner.Customer, error) {
	var updated *partner.Customer
	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		idx := -1
		for i := range doc.Customers {
			if doc.Customers[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return shared.NewNotFoundError("Customer")
		}

		if req.Phone != nil || req.Email != nil {
			for _, c := range doc.Customers {
				if c.ID == id {
					continue
				}
				if (req.Phone != nil && c.Phone == *req.Phone) ||
					(req.Email != nil && *req.Email != "" && c.Email == *req.Email) {
					return shared.NewDomainError(shared.CodeConflict,
						"Another customer already has this phone or email")
				}
			}
		}

		req.apply(&doc.Customers[idx])
		doc.Customers[idx].ID = id
		doc.Customers[idx].UpdatedAt = time.Now().UTC()
		c := doc.Customers[idx]
		updated = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the customer and returns the deleted record. Historical
// orders referencing them by phone/email are left in place.
func (s *CustomerService) Delete(ctx context.Context, id int) (*partner.Customer, error) {
	var deleted *partner.Customer
	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID != id {
				continue
			}
			c := doc.Customers[i]
			deleted = &c
			doc.Customers = append(doc.Customers[:i], doc.Customers[i+1:]...)
			return nil
		}
		return shared.NewNotFoundError("Customer")
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Customer deleted", zap.Int("id", id))
	return deleted, nil
}

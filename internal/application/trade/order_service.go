package trade

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

// OrderService is the order repository. Creating an order also reconciles
// the customers collection in the same document write: the matching customer
// gets its counters refreshed, or a new customer record is synthesized.
type OrderService struct {
	store persistence.Store
	log   *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(store persistence.Store, log *zap.Logger) *OrderService {
	return &OrderService{
		store: store,
		log:   log.Named("trade"),
	}
}

// List returns the matching orders, newest first, truncated when a positive
// limit is set. The created_at descending sort is mandatory here: the admin
// panel always wants recent orders on top.
func (s *OrderService) List(ctx context.Context, filter trade.Filter) ([]trade.Order, error) {
	var out []trade.Order
	err := s.store.View(ctx, func(doc *persistence.Document) error {
		out = make([]trade.Order, 0, len(doc.Orders))
		for _, o := range doc.Orders {
			if o.Matches(filter) {
				out = append(out, o)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// Get fetches an order by id
func (s *OrderService) Get(ctx context.Context, id int) (*trade.Order, error) {
	var found *trade.Order
	err := s.store.View(ctx, func(doc *persistence.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID == id {
				o := doc.Orders[i]
				found = &o
				return nil
			}
		}
		return shared.NewNotFoundError("Order")
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create validates the order, computes the total when absent, defaults the
// status to pending and persists order plus customer reconciliation in one
// write. Nothing is durable unless that single write succeeds.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*trade.Order, error) {
	now := time.Now().UTC()
	order := trade.Order{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		Items:           req.Items,
		Total:           req.Total,
		Status:          trade.Status(req.Status),
		EventType:       req.EventType,
		RentDate:        req.RentDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if order.Total == 0 {
		order.Total = trade.ComputeTotal(order.Items)
	}
	if order.Status == "" {
		order.Status = trade.StatusPending
	}

	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		order.ID = doc.NextOrderID()
		doc.Orders = append(doc.Orders, order)
		s.reconcileCustomer(doc, &order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Order created",
		zap.Int("id", order.ID),
		zap.String("customer_phone", order.CustomerPhone),
		zap.Float64("total", order.Total),
	)
	return &order, nil
}

// reconcileCustomer keeps the customers collection in sync with a newly
// created order. A customer matching the order's phone OR email gets its
// aggregates refreshed directly, deliberately without the conflict checks of
// explicit creation; otherwise a new customer record is synthesized.
func (s *OrderService) reconcileCustomer(doc *persistence.Document, order *trade.Order) {
	for i := range doc.Customers {
		c := &doc.Customers[i]
		if c.Phone == order.CustomerPhone ||
			(order.CustomerEmail != "" && c.Email == order.CustomerEmail) {
			c.TotalOrders++
			last := order.CreatedAt
			c.LastOrder = &last
			c.UpdatedAt = time.Now().UTC()
			s.log.Debug("Customer aggregates refreshed",
				zap.Int("customer_id", c.ID), zap.Int("total_orders", c.TotalOrders))
			return
		}
	}

	last := order.CreatedAt
	customer := partner.Customer{
		ID:          doc.NextCustomerID(),
		Name:        order.CustomerName,
		Phone:       order.CustomerPhone,
		Email:       order.CustomerEmail,
		Address:     order.CustomerAddress,
		Notes:       "",
		TotalOrders: 1,
		LastOrder:   &last,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.CreatedAt,
	}
	doc.Customers = append(doc.Customers, customer)
	s.log.Debug("Customer synthesized from order",
		zap.Int("customer_id", customer.ID), zap.String("phone", customer.Phone))
}

// Update merges the partial payload over the order, preserving the id and
// refreshing updated_at
func (s *OrderService) Update(ctx context.Context, id int, req UpdateOrderRequest) (*trade.Order, error) {
	var updated *trade.Order
	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID != id {
				continue
			}
			req.apply(&doc.Orders[i])
			doc.Orders[i].ID = id
			doc.Orders[i].UpdatedAt = time.Now().UTC()
			o := doc.Orders[i]
			updated = &o
			return nil
		}
		return shared.NewNotFoundError("Order")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the order and returns the deleted record. Customer
// aggregates are not rolled back; they record historical activity.
func (s *OrderService) Delete(ctx context.Context, id int) (*trade.Order, error) {
	var deleted *trade.Order
	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID != id {
				continue
			}
			o := doc.Orders[i]
			deleted = &o
			doc.Orders = append(doc.Orders[:i], doc.Orders[i+1:]...)
			return nil
		}
		return shared.NewNotFoundError("Order")
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Order deleted", zap.Int("id", id))
	return deleted, nil
}

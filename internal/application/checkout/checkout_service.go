package checkout

import (
	"context"

	tradeapp "github.com/hjumpers/backend/internal/application/trade"
	"github.com/hjumpers/backend/internal/domain/shared"
	"github.com/hjumpers/backend/internal/domain/trade"
	"github.com/hjumpers/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Config holds the checkout defaults used when the stored settings are empty
type Config struct {
	BusinessName   string
	WhatsAppNumber string
}

// Service turns a shopper's cart into a persisted order and the WhatsApp
// hand-off material: the formatted message, the raw clipboard fallback, and
// the wa.me link.
type Service struct {
	orders *tradeapp.OrderService
	store  persistence.Store
	cfg    Config
	log    *zap.Logger
}

// NewService creates a checkout Service
func NewService(orders *tradeapp.OrderService, store persistence.Store, cfg Config, log *zap.Logger) *Service {
	return &Service{
		orders: orders,
		store:  store,
		cfg:    cfg,
		log:    log.Named("checkout"),
	}
}

// Result is everything the storefront needs after a successful checkout
type Result struct {
	Order       *trade.Order `json:"order"`
	Message     string       `json:"message"`
	RawMessage  string       `json:"raw_message"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// Submit validates the shopper's data, creates the order (which reconciles
// the customer record in the same write) and builds the hand-off message.
// Validation failures never touch the persisted document.
func (s *Service) Submit(ctx context.Context, cart *Cart, data CustomerData) (*Result, error) {
	if cart.IsEmpty() {
		return nil, shared.NewValidationError("Cart is empty")
	}
	if data.Name == "" || data.Phone == "" || data.Address == "" {
		return nil, shared.NewValidationError("Please complete all required fields")
	}
	if data.EventType == "rent" && data.RentDate == "" {
		return nil, shared.NewValidationError("Please select the event date")
	}

	total := cart.TotalPrice()
	order, err := s.orders.Create(ctx, tradeapp.CreateOrderRequest{
		CustomerName:    data.Name,
		CustomerPhone:   data.Phone,
		CustomerEmail:   data.Email,
		CustomerAddress: data.Address,
		Items:           cart.Items(),
		Total:           total,
		EventType:       data.EventType,
		RentDate:        data.RentDate,
	})
	if err != nil {
		return nil, err
	}

	name, number := s.contactInfo(ctx)
	lines := cart.Lines()
	result := &Result{
		Order:      order,
		Message:    buildMessage(name, lines, data, total, true),
		RawMessage: buildMessage(name, lines, data, total, false),
	}
	result.WhatsAppURL = WhatsAppLink(number, result.Message)

	cart.Clear()
	s.log.Info("Checkout completed", zap.Int("order_id", order.ID))
	return result, nil
}

// contactInfo resolves the business name and WhatsApp number, preferring the
// stored settings over the configured defaults
func (s *Service) contactInfo(ctx context.Context) (name, number string) {
	name, number = s.cfg.BusinessName, s.cfg.WhatsAppNumber
	_ = s.store.View(ctx, func(doc *persistence.Document) error {
		if doc.Settings.BusinessName != "" {
			name = doc.Settings.BusinessName
		}
		if doc.Settings.WhatsAppNumber != "" {
			number = doc.Settings.WhatsAppNumber
		}
		return nil
	})
	return name, number
}

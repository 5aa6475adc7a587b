package trade

import "github.com/hjumpers/backend/internal/domain/trade"

// CreateOrderRequest carries a new order as submitted by checkout or the
// admin panel. Total is optional; when absent it is computed from the items.
type CreateOrderRequest struct {
	CustomerID      int          `json:"customer_id"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerEmail   string       `json:"customer_email"`
	CustomerAddress string       `json:"customer_address"`
	Items           []trade.Item `json:"items"`
	Total           float64      `json:"total"`
	Status          string       `json:"status"`
	EventType       string       `json:"event_type"`
	RentDate        string       `json:"rent_date"`
}

// UpdateOrderRequest carries a partial order update, primarily status
// transitions. The status value is trusted as-is.
type UpdateOrderRequest struct {
	CustomerID      *int          `json:"customer_id"`
	CustomerName    *string       `json:"customer_name"`
	CustomerPhone   *string       `json:"customer_phone"`
	CustomerEmail   *string       `json:"customer_email"`
	CustomerAddress *string       `json:"customer_address"`
	Items           *[]trade.Item `json:"items"`
	Total           *float64      `json:"total"`
	Status          *string       `json:"status"`
	EventType       *string       `json:"event_type"`
	RentDate        *string       `json:"rent_date"`
}

// apply merges the non-nil fields over the order
func (r UpdateOrderRequest) apply(o *trade.Order) {
	if r.CustomerID != nil {
		o.CustomerID = *r.CustomerID
	}
	if r.CustomerName != nil {
		o.CustomerName = *r.CustomerName
	}
	if r.CustomerPhone != nil {
		o.CustomerPhone = *r.CustomerPhone
	}
	if r.CustomerEmail != nil {
		o.CustomerEmail = *r.CustomerEmail
	}
	if r.CustomerAddress != nil {
		o.CustomerAddress = *r.CustomerAddress
	}
	if r.Items != nil {
		o.Items = *r.Items
	}
	if r.Total != nil {
		o.Total = *r.Total
	}
	if r.Status != nil {
		o.Status = trade.Status(*r.Status)
	}
	if r.EventType != nil {
		o.EventType = *r.EventType
	}
	if r.RentDate != nil {
		o.RentDate = *r.RentDate
	}
}

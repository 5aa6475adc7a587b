package handler

import (
	"github.com/gin-gonic/gin"
	tradeapp "github.com/hjumpers/backend/internal/application/trade"
	"github.com/hjumpers/backend/internal/domain/trade"
)

// OrderHandler handles order API endpoints
type OrderHandler struct {
	BaseHandler
	orders *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// RegisterRoutes registers the order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/orders")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// CreateOrderRequest is the wire shape for creating an order
type CreateOrderRequest struct {
	CustomerID      int          `json:"customer_id"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerEmail   string       `json:"customer_email"`
	CustomerAddress string       `json:"customer_address"`
	Items           []trade.Item `json:"items"`
	Total           float64      `json:"total" binding:"omitempty,min=0"`
	Status          string       `json:"status" binding:"omitempty,orderstatus"`
	EventType       string       `json:"event_type" binding:"omitempty,oneof=sale rent"`
	RentDate        string       `json:"rent_date"`
}

// List handles GET /orders?status&customer_id&event_type&limit
func (h *OrderHandler) List(c *gin.Context) {
	filter := trade.Filter{
		Status:     c.Query("status"),
		CustomerID: queryInt(c, "customer_id"),
		EventType:  c.Query("event_type"),
		Limit:      queryInt(c, "limit"),
	}

	orders, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, "orders", orders, len(orders))
}

// GetByID handles GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Entity(c, "order", order)
}

// Create handles POST /orders. Creating an order also reconciles the
// customer record inside the same document write.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orders.Create(c.Request.Context(), tradeapp.CreateOrderRequest{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		Items:           req.Items,
		Total:           req.Total,
		Status:          req.Status,
		EventType:       req.EventType,
		RentDate:        req.RentDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, "order", order)
}

// Update handles PUT /orders/:id, primarily admin status transitions
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req tradeapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orders.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Entity(c, "order", order)
}

// Delete handles DELETE /orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orders.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Deleted(c, "order", order, "Order deleted successfully")
}

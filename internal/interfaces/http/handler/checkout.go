package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/hjumpers/backend/internal/application/catalog"
	checkoutapp "github.com/hjumpers/backend/internal/application/checkout"
	"github.com/hjumpers/backend/internal/domain/catalog"
)

// CheckoutHandler handles the storefront checkout endpoint: it rebuilds the
// shopper's cart against the live catalog, creates the order and returns the
// WhatsApp hand-off material.
type CheckoutHandler struct {
	BaseHandler
	checkout *checkoutapp.Service
	products *catalogapp.ProductService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkout *checkoutapp.Service, products *catalogapp.ProductService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		products: products,
	}
}

// RegisterRoutes registers the checkout route
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Submit)
}

// CheckoutItemRequest references a product by id; the price is resolved
// server-side from the catalog so a stale or tampered client price never
// reaches an order.
type CheckoutItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=sale rent"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest is the wire shape for POST /checkout
type CheckoutRequest struct {
	Customer checkoutapp.CustomerData `json:"customer"`
	Items    []CheckoutItemRequest    `json:"items"`
}

// Submit handles POST /checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	cart := checkoutapp.NewCart()
	for _, item := range req.Items {
		product, err := h.products.Get(ctx, item.ProductID)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		cart.Add(product, catalog.BusinessType(item.Type), item.Quantity)
	}

	result, err := h.checkout.Submit(ctx, cart, req.Customer)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, "checkout", result)
}

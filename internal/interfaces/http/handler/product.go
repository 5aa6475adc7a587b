package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/hjumpers/backend/internal/application/catalog"
	"github.com/hjumpers/backend/internal/domain/catalog"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	products *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// RegisterRoutes registers the product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// CreateProductRequest is the wire shape for creating a product. Enum fields
// are checked at the binding layer; required-field rules live in the service.
type CreateProductRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category" binding:"omitempty,category"`
	BusinessType string   `json:"business_type" binding:"omitempty,businesstype"`
	Price        float64  `json:"price" binding:"omitempty,min=0"`
	RentPrice    float64  `json:"rent_price" binding:"omitempty,min=0"`
	InStock      int      `json:"in_stock" binding:"omitempty,min=0"`
	Images       []string `json:"images"`
}

// UpdateProductRequest is the wire shape for a partial product update
type UpdateProductRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category" binding:"omitempty,category"`
	BusinessType *string   `json:"business_type" binding:"omitempty,businesstype"`
	Price        *float64  `json:"price" binding:"omitempty,min=0"`
	RentPrice    *float64  `json:"rent_price" binding:"omitempty,min=0"`
	InStock      *int      `json:"in_stock" binding:"omitempty,min=0"`
	Images       *[]string `json:"images"`
}

// List handles GET /products?category&business_type&search&limit
func (h *ProductHandler) List(c *gin.Context) {
	filter := catalog.Filter{
		Category:     c.Query("category"),
		BusinessType: c.Query("business_type"),
		Search:       c.Query("search"),
		Limit:        queryInt(c, "limit"),
	}

	products, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, "products", products, len(products))
}

// GetByID handles GET /products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Entity(c, "product", product)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.products.Create(c.Request.Context(), catalogapp.CreateProductRequest{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		BusinessType: req.BusinessType,
		Price:        req.Price,
		RentPrice:    req.RentPrice,
		InStock:      req.InStock,
		Images:       req.Images,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, "product", product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, catalogapp.UpdateProductRequest{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		BusinessType: req.BusinessType,
		Price:        req.Price,
		RentPrice:    req.RentPrice,
		InStock:      req.InStock,
		Images:       req.Images,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Entity(c, "product", product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Deleted(c, "product", product, "Product deleted successfully")
}

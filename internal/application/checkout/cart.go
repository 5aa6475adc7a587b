package checkout

import (
	"github.com/hjumpers/backend/internal/domain/catalog"
	"github.com/hjumpers/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// Line is a cart entry: a product snapshot with the unit price fixed at
// add time for the chosen sale/rent mode.
type Line struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Type      string  `json:"type"`
}

// Cart is an ordered list of lines keyed by (product id, sale|rent type).
// It is single-owner state; one cart per shopper, no locking.
type Cart struct {
	lines []Line
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Add puts a product in the cart in the given mode. Adding an already
// present (product, mode) key increments its quantity; the unit price stays
// the one fixed when the line was first added.
func (c *Cart) Add(p *catalog.Product, mode catalog.BusinessType, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID && c.lines[i].Type == string(mode) {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.UnitPrice(mode),
		Quantity:  quantity,
		Type:      string(mode),
	})
}

// Remove deletes the (product, mode) line
func (c *Cart) Remove(productID int, mode catalog.BusinessType) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID && c.lines[i].Type == string(mode) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity updates a line's quantity; zero or less removes the line
func (c *Cart) SetQuantity(productID int, mode catalog.BusinessType, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, mode)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID && c.lines[i].Type == string(mode) {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Lines returns the cart lines in insertion order
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalPrice sums unit price x quantity over all lines
func (c *Cart) TotalPrice() float64 {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	f, _ := sum.Float64()
	return f
}

// Items converts the cart lines into order line items
func (c *Cart) Items() []trade.Item {
	items := make([]trade.Item, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, trade.Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Type:      l.Type,
		})
	}
	return items
}

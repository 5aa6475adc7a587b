package persistence

import (
	"encoding/json"

	"github.com/hjumpers/backend/internal/domain/catalog"
	"github.com/hjumpers/backend/internal/domain/partner"
	"github.com/hjumpers/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// Settings is the storefront-wide configuration kept in the document
type Settings struct {
	BusinessName    string `json:"business_name,omitempty"`
	BusinessPhone   string `json:"business_phone,omitempty"`
	BusinessAddress string `json:"business_address,omitempty"`
	WhatsAppNumber  string `json:"whatsapp_number,omitempty"`
}

// Document is the whole persisted state: four top-level collections read and
// rewritten wholesale on every mutation.
type Document struct {
	Products  []catalog.Product  `json:"products"`
	Orders    []trade.Order      `json:"orders"`
	Customers []partner.Customer `json:"customers"`
	Settings  Settings           `json:"settings"`
}

// NewDocument returns the empty document shape callers must tolerate
func NewDocument() *Document {
	return &Document{
		Products:  []catalog.Product{},
		Orders:    []trade.Order{},
		Customers: []partner.Customer{},
		Settings:  Settings{},
	}
}

// NextProductID returns max existing product id + 1 (1 when empty)
func (d *Document) NextProductID() int {
	max := 0
	for _, p := range d.Products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// NextOrderID returns max existing order id + 1 (1 when empty)
func (d *Document) NextOrderID() int {
	max := 0
	for _, o := range d.Orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

// NextCustomerID returns max existing customer id + 1 (1 when empty)
func (d *Document) NextCustomerID() int {
	max := 0
	for _, c := range d.Customers {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// rawDocument is the lenient on-disk shape: collections decode record by
// record so one malformed entry cannot poison the rest of the document.
type rawDocument struct {
	Products  []json.RawMessage `json:"products"`
	Orders    []json.RawMessage `json:"orders"`
	Customers []json.RawMessage `json:"customers"`
	Settings  Settings          `json:"settings"`
}

// decodeDocument parses the persisted JSON, quarantining records that fail to
// decode. Dropped records are logged and never written back implicitly; the
// next save after a mutation rewrites the document without them.
func decodeDocument(data []byte, log *zap.Logger) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	doc := NewDocument()
	doc.Settings = raw.Settings
	for i, r := range raw.Products {
		var p catalog.Product
		if err := json.Unmarshal(r, &p); err != nil {
			log.Warn("Dropping malformed product record",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		doc.Products = append(doc.Products, p)
	}
	for i, r := range raw.Orders {
		var o trade.Order
		if err := json.Unmarshal(r, &o); err != nil {
			log.Warn("Dropping malformed order record",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		doc.Orders = append(doc.Orders, o)
	}
	for i, r := range raw.Customers {
		var c partner.Customer
		if err := json.Unmarshal(r, &c); err != nil {
			log.Warn("Dropping malformed customer record",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		doc.Customers = append(doc.Customers, c)
	}
	return doc, nil
}

// encodeDocument serializes with the stable two-space indentation the admin
// tooling expects when inspecting the file by hand
func encodeDocument(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

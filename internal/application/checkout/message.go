package checkout

import (
	"fmt"
	"net/url"
	"strings"
)

// CustomerData is what the shopper fills in at checkout
type CustomerData struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	RentDate  string `json:"rent_date"`
	EventType string `json:"event_type"`
}

// formatAmount renders a price the way the storefront always has: no
// trailing zeros, no thousands separators.
func formatAmount(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	return s
}

// buildMessage renders the order hand-off text. With markdown on, WhatsApp
// bold markers wrap the labels; the raw variant is what lands on the
// clipboard for desktop users.
func buildMessage(businessName string, lines []Line, data CustomerData, total float64, markdown bool) string {
	b := func(s string) string {
		if markdown {
			return "*" + s + "*"
		}
		return s
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🎉 %s\n\n", b("NEW ORDER - "+businessName))
	fmt.Fprintf(&sb, "👤 %s %s\n", b("Customer:"), data.Name)
	fmt.Fprintf(&sb, "📱 %s %s\n", b("Phone:"), data.Phone)
	fmt.Fprintf(&sb, "📍 %s %s\n", b("Address:"), data.Address)
	if data.EventType == "rent" {
		fmt.Fprintf(&sb, "📅 %s %s\n", b("Event Date:"), data.RentDate)
	}
	eventLabel := "SALE"
	if data.EventType == "rent" {
		eventLabel = "RENTAL"
	}
	fmt.Fprintf(&sb, "🎯 %s %s\n\n", b("Type:"), eventLabel)

	fmt.Fprintf(&sb, "📋 %s\n", b("PRODUCTS:"))
	for _, l := range lines {
		per := "each"
		if l.Type == "rent" {
			per = "per day"
		}
		fmt.Fprintf(&sb, "• %s\n", l.Name)
		fmt.Fprintf(&sb, "  Quantity: %d\n", l.Quantity)
		fmt.Fprintf(&sb, "  Price: $%s %s\n", formatAmount(l.Price), per)
		fmt.Fprintf(&sb, "  Subtotal: $%s\n\n", formatAmount(l.Price*float64(l.Quantity)))
	}

	fmt.Fprintf(&sb, "💰 %s\n\n", b(fmt.Sprintf("TOTAL: $%s", formatAmount(total))))
	sb.WriteString("📞 Contact to confirm details and coordinate delivery.")
	return sb.String()
}

// WhatsAppLink builds the wa.me deep link for a pre-filled message.
// wa.me wants %20 for spaces, not the + that QueryEscape emits.
func WhatsAppLink(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encoded)
}

// Package speedaf renders orders into the carrier's fixed 22-column manifest
// format. Records are an export-time projection only; nothing here is
// persisted.
package speedaf

import (
	"strings"

	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/registry"
)

// Fixed field values required by the carrier template.
const (
	goodsTypeNormal  = "Normal"
	allowOpenNo      = "No"
	deliveryTypeSend = "Deliver"
	packageQuantity  = "1"
	packageWeight    = "1"

	// PhonePlaceholder is the sentinel for phone numbers that match no known
	// shape. The export never fails on a bad phone.
	PhonePlaceholder = "00000000000"

	addressPlaceholder = "عنوان غير محدد"
	goodsNameFallback  = "منتجات تسوق"
	goodsNameLimit     = 30
)

// Record is one carrier manifest row: 22 ordered fields.
type Record struct {
	fields [22]string

	// FallbackUsed notes which receiver fields degraded to a default, so the
	// exporter can log them.
	FallbackUsed []string
}

// Row joins the 22 fields with tabs, the layout the carrier imports.
func (r Record) Row() string {
	return strings.Join(r.fields[:], "\t")
}

// Fields returns the ordered field values.
func (r Record) Fields() []string {
	return r.fields[:]
}

// Headers returns the carrier's column titles. They are shown for reference
// only and never written to the export file.
func Headers() []string {
	return []string{
		"S.O.",
		"Goods type",
		"Goods name",
		"Quantity",
		"Weight",
		"COD",
		"Insure price",
		"Whether to allow the package to be opened",
		"Remark",
		"Name",
		"Telephone",
		"City",
		"Area",
		"Senders address",
		"Sender Email",
		"Name",
		"Telephone",
		"City",
		"Area",
		"Receivers address",
		"Receiver Email",
		"Delivery Type",
	}
}

// Formatter maps orders into carrier records.
type Formatter struct {
	geo *registry.Geo
}

// NewFormatter creates a formatter over the city/area translation tables.
func NewFormatter(geo *registry.Geo) *Formatter {
	return &Formatter{geo: geo}
}

// Format projects one order and its resolved sender profile into a record.
func (f *Formatter) Format(order *domain.Order, sender registry.SenderProfile) Record {
	var rec Record

	receiverCity, cityFellBack := f.geo.CanonicalCity(order.Shipping.City)
	receiverArea, areaFellBack := f.geo.CanonicalArea(order.Shipping.Area)
	if cityFellBack {
		rec.FallbackUsed = append(rec.FallbackUsed, "receiver_city")
	}
	if areaFellBack {
		rec.FallbackUsed = append(rec.FallbackUsed, "receiver_area")
	}

	receiverPhone := NormalizePhone(order.Customer.Phone)
	if receiverPhone == PhonePlaceholder {
		rec.FallbackUsed = append(rec.FallbackUsed, "receiver_phone")
	}

	rec.fields = [22]string{
		"",                                     // 1. S.O.
		goodsTypeNormal,                        // 2. Goods type
		goodsName(order),                       // 3. Goods name
		packageQuantity,                        // 4. Quantity (one package, not per-unit)
		packageWeight,                          // 5. Weight
		order.Total.String(),                   // 6. COD
		"",                                     // 7. Insure price
		allowOpenNo,                            // 8. Allow open
		"",                                     // 9. Remark
		sender.Name,                            // 10. Sender name
		NormalizePhone(sender.Phone),           // 11. Sender telephone
		sender.City,                            // 12. Sender city
		sender.Area,                            // 13. Sender area
		sender.Address,                         // 14. Sender address
		"",                                     // 15. Sender email
		strings.TrimSpace(order.Customer.Name), // 16. Receiver name
		receiverPhone,                          // 17. Receiver telephone
		receiverCity,                           // 18. Receiver city
		receiverArea,                           // 19. Receiver area
		ComposeAddress(order.Shipping),         // 20. Receiver address
		"",                                     // 21. Receiver email
		deliveryTypeSend,                       // 22. Delivery type
	}
	return rec
}

// NormalizePhone reduces a phone number to the carrier's 11-digit form.
// Accepted shapes: a 10-digit number missing the leading trunk zero, an
// 11-digit number, and a 12-digit number carrying the country code. Anything
// else maps to the all-zero placeholder; normalization never fails.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == 10 && strings.HasPrefix(d, "1"):
		return "0" + d
	case len(d) == 11:
		return d
	case len(d) == 12 && strings.HasPrefix(d, "20"):
		return "0" + d[2:]
	default:
		return PhonePlaceholder
	}
}

// ComposeAddress joins the present address sub-fields with the Arabic comma,
// labeling building, floor, apartment, and landmark.
func ComposeAddress(shipping domain.ShippingDetails) string {
	var parts []string
	if shipping.Address != "" {
		parts = append(parts, shipping.Address)
	}
	if shipping.Building != "" {
		parts = append(parts, "مبنى "+shipping.Building)
	}
	if shipping.Floor != "" {
		parts = append(parts, "دور "+shipping.Floor)
	}
	if shipping.Apartment != "" {
		parts = append(parts, "شقة "+shipping.Apartment)
	}
	if shipping.Landmark != "" {
		parts = append(parts, "بجوار "+shipping.Landmark)
	}
	if len(parts) == 0 {
		return addressPlaceholder
	}
	return strings.Join(parts, "، ")
}

// goodsName takes the first line's title, truncated to 30 characters with an
// ellipsis. Truncation counts runes so Arabic titles cut cleanly.
func goodsName(order *domain.Order) string {
	if len(order.Lines) == 0 {
		return goodsNameFallback
	}
	title := order.Lines[0].Title
	if title == "" {
		return goodsNameFallback
	}
	runes := []rune(title)
	if len(runes) > goodsNameLimit {
		return string(runes[:goodsNameLimit-3]) + "..."
	}
	return title
}

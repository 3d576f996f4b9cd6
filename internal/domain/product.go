package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents one catalog entry, merged from the upstream merchant
// feeds. Products are overwritten wholesale on each sync; there is no
// versioning between syncs.
type Product struct {
	ID          string          `json:"id"`
	RetailerID  string          `json:"retailer_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`

	MerchantID   string `json:"merchant_id"`
	MerchantName string `json:"merchant_name,omitempty"`
	CatalogID    string `json:"catalog_id,omitempty"`

	ImageURL     string       `json:"image_url,omitempty"`
	Availability Availability `json:"availability"`

	// Wholesale fields used by carton-based merchants.
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	PackSize       int             `json:"pack_size"`
	MinOrderQty    int             `json:"min_order_qty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Normalize applies the catalog defaults: currency EGP, pack size and minimum
// order quantity at least 1, negative prices clamped to zero.
func (p *Product) Normalize() {
	if p.Currency == "" {
		p.Currency = "EGP"
	}
	if p.RetailerID == "" {
		p.RetailerID = p.ID
	}
	if p.PackSize < 1 {
		p.PackSize = 1
	}
	if p.MinOrderQty < 1 {
		p.MinOrderQty = 1
	}
	if p.Price.IsNegative() {
		p.Price = decimal.Zero
	}
	if p.Availability == "" {
		p.Availability = AvailabilityInStock
	}
}

// IsAvailable reports whether the product can be ordered
func (p *Product) IsAvailable() bool {
	switch strings.ToLower(string(p.Availability)) {
	case "in stock", "available":
		return true
	default:
		return false
	}
}

// DisplayPrice renders the price with its currency for templates
func (p *Product) DisplayPrice() string {
	return p.Price.StringFixed(2) + " " + p.Currency
}

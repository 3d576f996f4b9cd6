package domain

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/argentostore/storefront/pkg/errors"
)

// Merchant is a static registry entry. The commission payload pointers form a
// tagged variant: exactly one of them must be set, matching CommissionType
// (none for CommissionNone).
type Merchant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`

	CommissionType     CommissionType                `json:"commission_type"`
	FixedVariable      *FixedVariableCommission      `json:"fixed_variable,omitempty"`
	PercentageVariable *PercentageVariableCommission `json:"percentage_variable,omitempty"`
	DualPercentage     *DualPercentageCommission     `json:"dual_percentage,omitempty"`
	External           *ExternalCommission           `json:"external,omitempty"`

	ReturnPolicy ReturnPolicy `json:"return_policy"`
	Notes        string       `json:"notes,omitempty"`
}

// FixedVariableCommission is a per-unit amount entered manually per product.
// Min and Max are informational bounds, not clamped at calculation time.
type FixedVariableCommission struct {
	DefaultPerUnit   decimal.Decimal `json:"default_per_unit"`
	MinPerUnit       decimal.Decimal `json:"min_per_unit"`
	MaxPerUnit       decimal.Decimal `json:"max_per_unit"`
	PerProductManual bool            `json:"per_product_manual"`
}

// PercentageVariableCommission is a manually entered percentage with a
// configured rate range; the midpoint is used when no manual value exists.
type PercentageVariableCommission struct {
	MinRate          decimal.Decimal `json:"min_rate"`
	MaxRate          decimal.Decimal `json:"max_rate"`
	PerProductManual bool            `json:"per_product_manual"`
}

// DualPercentageCommission earns one fixed rate on the product price and a
// second on merchant-side offer totals.
type DualPercentageCommission struct {
	ProductRate decimal.Decimal `json:"product_rate"`
	OfferRate   decimal.Decimal `json:"offer_rate"`
}

// ExternalCommission marks merchants whose commission terms live in an
// offline document. Such merchants sell in whole cartons only.
type ExternalCommission struct {
	Source   string `json:"source"`
	PackSize int    `json:"pack_size"`
}

// ReturnPolicy records who absorbs returns and what share of the shipping
// cost is refunded.
type ReturnPolicy struct {
	Responsible        ReturnResponsible `json:"responsible"`
	ShippingRefundRate decimal.Decimal   `json:"shipping_refund_rate"`
	Notes              string            `json:"notes,omitempty"`
}

// Validate checks that the commission payload matches the declared type.
func (m *Merchant) Validate() error {
	switch m.CommissionType {
	case CommissionFixedVariable:
		if m.FixedVariable == nil {
			return &apperrors.ErrValidation{Field: "fixed_variable", Message: "missing payload for merchant " + m.ID}
		}
	case CommissionPercentageVariable:
		if m.PercentageVariable == nil {
			return &apperrors.ErrValidation{Field: "percentage_variable", Message: "missing payload for merchant " + m.ID}
		}
	case CommissionPercentageFixedDual:
		if m.DualPercentage == nil {
			return &apperrors.ErrValidation{Field: "dual_percentage", Message: "missing payload for merchant " + m.ID}
		}
	case CommissionComplexExternal:
		if m.External == nil || m.External.PackSize < 1 {
			return &apperrors.ErrValidation{Field: "external", Message: "missing or invalid payload for merchant " + m.ID}
		}
	case CommissionNone:
		// no payload
	default:
		return &apperrors.ErrValidation{Field: "commission_type", Message: "unknown type " + string(m.CommissionType)}
	}
	return nil
}

// NeedsManualCommissionEntry reports whether each product line needs a
// manually entered commission value.
func (m *Merchant) NeedsManualCommissionEntry() bool {
	switch m.CommissionType {
	case CommissionFixedVariable:
		return m.FixedVariable != nil && m.FixedVariable.PerProductManual
	case CommissionPercentageVariable:
		return m.PercentageVariable != nil && m.PercentageVariable.PerProductManual
	default:
		return false
	}
}

// AllowsPartialQuantities reports whether the merchant accepts quantities
// that are not whole cartons.
func (m *Merchant) AllowsPartialQuantities() bool {
	return m.CommissionType != CommissionComplexExternal
}

// MinOrderQuantity returns the smallest orderable quantity for this merchant.
func (m *Merchant) MinOrderQuantity() int {
	if m.CommissionType == CommissionComplexExternal && m.External != nil {
		return m.External.PackSize
	}
	return 1
}

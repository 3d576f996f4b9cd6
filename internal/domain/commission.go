package domain

import "github.com/shopspring/decimal"

// CommissionLine is one product line submitted for commission calculation.
// ManualValue is a per-unit amount for fixed-variable merchants and a
// percentage for percentage-variable merchants.
type CommissionLine struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	ManualValue *decimal.Decimal
}

// OrderContext carries the order-level figures a calculation may need.
type OrderContext struct {
	ShippingCost decimal.Decimal

	// MerchantOfferTotal is the value of merchant-funded offers on the order.
	// Only consulted when HasMerchantOffer is set.
	HasMerchantOffer   bool
	MerchantOfferTotal decimal.Decimal
}

// CommissionResult is the outcome of one line's commission calculation.
type CommissionResult struct {
	ProductID    string          `json:"product_id,omitempty"`
	ProductName  string          `json:"product_name,omitempty"`
	MerchantID   string          `json:"merchant_id"`
	MerchantName string          `json:"merchant_name"`
	Type         CommissionType  `json:"commission_type"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`

	Amount  decimal.Decimal `json:"commission"`
	PerUnit decimal.Decimal `json:"commission_per_unit,omitempty"`
	Rate    decimal.Decimal `json:"commission_rate,omitempty"`

	// Dual-percentage breakdown.
	BaseAmount  decimal.Decimal `json:"base_commission,omitempty"`
	OfferAmount decimal.Decimal `json:"offer_commission,omitempty"`

	Calculation               string `json:"calculation"`
	Details                   string `json:"details"`
	RequiresManualCalculation bool   `json:"requires_manual_calculation,omitempty"`

	ReturnTerms ReturnTerms `json:"return_policy"`
}

// ReturnTerms is the resolved return/refund policy attached to every result.
type ReturnTerms struct {
	Responsible          ReturnResponsible `json:"responsible"`
	ShippingRefundRate   decimal.Decimal   `json:"shipping_refund_rate"`
	ShippingRefundAmount decimal.Decimal   `json:"shipping_refund_amount"`
	Notes                string            `json:"notes,omitempty"`
}

// CartonPlan describes a whole-carton purchase for a wholesale merchant.
type CartonPlan struct {
	CartonsNeeded  int             `json:"cartons_needed"`
	ActualQuantity int             `json:"actual_quantity"`
	PurchaseCost   decimal.Decimal `json:"purchase_cost"`
	SalesRevenue   decimal.Decimal `json:"sales_revenue"`
	Profit         decimal.Decimal `json:"profit"`
	ExcessQuantity int             `json:"excess_quantity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
}

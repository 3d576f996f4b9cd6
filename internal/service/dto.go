package service

import "github.com/shopspring/decimal"

// OrderSubmitRequest is the raw landing-page submission.
type OrderSubmitRequest struct {
	Customer CustomerInput    `json:"customer" binding:"required"`
	Shipping ShippingInput    `json:"shipping" binding:"required"`
	Items    []OrderItemInput `json:"items" binding:"required,min=1"`

	PaymentMethod string `json:"payment_method,omitempty"`
	Source        string `json:"source,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`

	// Merchant-funded offer figures, used by the dual-percentage commission.
	HasMerchantOffer   bool            `json:"has_merchant_offer,omitempty"`
	MerchantOfferTotal decimal.Decimal `json:"merchant_offer_total,omitempty"`
}

type CustomerInput struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type ShippingInput struct {
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	Area      string `json:"area,omitempty"`
	Building  string `json:"building,omitempty"`
	Floor     string `json:"floor,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Landmark  string `json:"landmark,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type OrderItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`

	// CommissionValue is the manually entered per-unit amount or percentage
	// for merchants that price commission per product.
	CommissionValue *decimal.Decimal `json:"commission_value,omitempty"`
}

// CommissionPreviewRequest asks for a commission quote before the order is
// confirmed.
type CommissionPreviewRequest struct {
	ProductID          string           `json:"product_id" binding:"required"`
	Quantity           int              `json:"quantity" binding:"required,min=1"`
	CommissionValue    *decimal.Decimal `json:"commission_value,omitempty"`
	ShippingCost       decimal.Decimal  `json:"shipping_cost,omitempty"`
	HasMerchantOffer   bool             `json:"has_merchant_offer,omitempty"`
	MerchantOfferTotal decimal.Decimal  `json:"merchant_offer_total,omitempty"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalOrders     int             `json:"total_orders"`
	OrdersByStatus  map[string]int  `json:"orders_by_status"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/argentostore/storefront/pkg/errors"
)

// Customer is the contact block submitted from the landing page.
type Customer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ShippingDetails is the delivery address block. Address and City are the
// only fields required for a valid order.
type ShippingDetails struct {
	Address   string `json:"address"`
	City      string `json:"city"`
	Area      string `json:"area,omitempty"`
	Building  string `json:"building,omitempty"`
	Floor     string `json:"floor,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	Landmark  string `json:"landmark,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// OrderLine is one product line on an order, snapshotted at creation time.
type OrderLine struct {
	ItemID       string          `json:"order_item_id"`
	ProductID    string          `json:"product_id"`
	RetailerID   string          `json:"retailer_id,omitempty"`
	Title        string          `json:"title"`
	MerchantID   string          `json:"merchant_id"`
	MerchantName string          `json:"merchant_name,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`

	// PackSize is 1 unless the merchant sells whole cartons only; quantity
	// changes must stay a multiple of it.
	PackSize int `json:"pack_size,omitempty"`

	Commission        decimal.Decimal `json:"commission"`
	CommissionDetails string          `json:"commission_details,omitempty"`
}

// AppliedOffer is one entry in the append-only offer log.
type AppliedOffer struct {
	Type           string          `json:"type"`
	Value          decimal.Decimal `json:"value"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Description    string          `json:"description"`
	AppliedAt      time.Time       `json:"applied_at"`
}

// StatusChange is one entry in the order's audit trail.
type StatusChange struct {
	From OrderStatus `json:"from"`
	To   OrderStatus `json:"to"`
	Note string      `json:"note,omitempty"`
	At   time.Time   `json:"at"`
}

// MerchantSummary groups an order's lines by merchant.
type MerchantSummary struct {
	MerchantName string          `json:"merchant_name"`
	Lines        []OrderLine     `json:"lines"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Commission   decimal.Decimal `json:"commission"`
}

// FreeShippingPolicy holds the thresholds for absorbing shipping cost.
type FreeShippingPolicy struct {
	Threshold decimal.Decimal
	MinProfit decimal.Decimal
}

// ShippingRateTable maps delivery regions to flat shipping rates.
type ShippingRateTable struct {
	Regions map[string]decimal.Decimal
	Default decimal.Decimal
}

// RateFor returns the flat rate for a region, falling back to the default.
func (t ShippingRateTable) RateFor(region string) decimal.Decimal {
	if rate, ok := t.Regions[region]; ok {
		return rate
	}
	return t.Default
}

// Order is the aggregate for one customer purchase. Financial totals are
// derived, never set directly; every mutation refreshes UpdatedAt and
// recomputes the totals. Orders are never hard-deleted, only
// status-transitioned.
type Order struct {
	OrderID     string `json:"order_id"`
	ReferenceID string `json:"reference_id,omitempty"`

	Customer Customer        `json:"customer"`
	Shipping ShippingDetails `json:"shipping"`
	Lines    []OrderLine     `json:"lines"`

	Subtotal        decimal.Decimal `json:"subtotal"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	DueAmount       decimal.Decimal `json:"due_amount"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	NetProfit       decimal.Decimal `json:"net_profit"`

	FreeShipping         bool            `json:"free_shipping"`
	FreeShippingReason   string          `json:"free_shipping_reason,omitempty"`
	OriginalShippingCost decimal.Decimal `json:"original_shipping_cost,omitempty"`

	OffersApplied []AppliedOffer `json:"offers_applied,omitempty"`

	Status        OrderStatus    `json:"status"`
	StatusHistory []StatusChange `json:"status_history,omitempty"`
	PaymentMethod PaymentMethod  `json:"payment_method"`
	PaymentStatus string         `json:"payment_status"`
	Source        OrderSource    `json:"source"`

	TrackingNumber string `json:"tracking_number,omitempty"`
	ShipmentStatus string `json:"shipment_status,omitempty"`

	InternalNotes string `json:"internal_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Valid bool `json:"valid"`
}

// NewOrderID generates an order identifier: ORD-<date>-<random suffix>.
func NewOrderID(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

// NewOrder creates a pending order for the given customer and address.
// The order starts without lines and is therefore not yet valid.
func NewOrder(customer Customer, shipping ShippingDetails) *Order {
	now := time.Now()
	o := &Order{
		OrderID:        NewOrderID(now),
		Customer:       customer,
		Shipping:       shipping,
		Status:         OrderStatusPending,
		PaymentMethod:  PaymentCashOnDelivery,
		PaymentStatus:  "pending",
		Source:         SourceWebsite,
		ShipmentStatus: "pending",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	o.recalculate()
	return o
}

// AddLine appends a product line and re-derives the totals. The quantity
// must be at least 1, and whole-carton merchants reject quantities that are
// not a multiple of the product's pack size.
func (o *Order) AddLine(p Product, merchant *Merchant, quantity int, commission decimal.Decimal, commissionDetails string) error {
	if quantity < 1 {
		return &apperrors.ErrValidation{Field: "quantity", Message: "must be at least 1"}
	}
	packSize := 1
	if merchant != nil && !merchant.AllowsPartialQuantities() {
		packSize = p.PackSize
		if packSize < 1 {
			packSize = merchant.MinOrderQuantity()
		}
		if packSize > 1 && quantity%packSize != 0 {
			return &apperrors.ErrValidation{
				Field:   "quantity",
				Message: fmt.Sprintf("merchant %s sells whole cartons of %d only", merchant.ID, packSize),
			}
		}
	}

	line := OrderLine{
		ItemID:            fmt.Sprintf("ITEM-%03d", len(o.Lines)+1),
		ProductID:         p.ID,
		RetailerID:        p.RetailerID,
		Title:             p.Title,
		MerchantID:        p.MerchantID,
		MerchantName:      p.MerchantName,
		UnitPrice:         p.Price,
		Quantity:          quantity,
		LineTotal:         p.Price.Mul(decimal.NewFromInt(int64(quantity))),
		PackSize:          packSize,
		Commission:        commission,
		CommissionDetails: commissionDetails,
	}
	if merchant != nil && line.MerchantName == "" {
		line.MerchantName = merchant.Name
	}
	o.Lines = append(o.Lines, line)
	o.recalculate()
	return nil
}

// RemoveLine removes the line matching the product or retailer id. Removing
// the last line leaves the order invalid with zero subtotal.
func (o *Order) RemoveLine(productID string) bool {
	for i, line := range o.Lines {
		if line.ProductID == productID || line.RetailerID == productID || line.ItemID == productID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			o.recalculate()
			return true
		}
	}
	return false
}

// UpdateQuantity changes a line's quantity and re-derives the totals. The
// per-unit commission share of the line is scaled with it. Whole-carton
// lines only accept multiples of their pack size.
func (o *Order) UpdateQuantity(productID string, newQuantity int) error {
	if newQuantity < 1 {
		return &apperrors.ErrValidation{Field: "quantity", Message: "must be at least 1"}
	}
	for i := range o.Lines {
		line := &o.Lines[i]
		if line.ProductID != productID && line.RetailerID != productID && line.ItemID != productID {
			continue
		}
		if line.PackSize > 1 && newQuantity%line.PackSize != 0 {
			return &apperrors.ErrValidation{
				Field:   "quantity",
				Message: fmt.Sprintf("line %s sells whole cartons of %d only", line.ProductID, line.PackSize),
			}
		}
		if line.Quantity > 0 && !line.Commission.IsZero() {
			perUnit := line.Commission.Div(decimal.NewFromInt(int64(line.Quantity)))
			line.Commission = perUnit.Mul(decimal.NewFromInt(int64(newQuantity)))
		}
		line.Quantity = newQuantity
		line.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(newQuantity)))
		o.recalculate()
		return nil
	}
	return &apperrors.ErrNotFound{Resource: "order line", ID: productID}
}

// ApplyOffer accumulates a discount and appends it to the offer log. The log
// is append-only; prior offers are never replaced. Percentage offers take the
// subtotal at the time of application; fixed offers are capped so the
// accumulated discount never exceeds the subtotal.
func (o *Order) ApplyOffer(offerType string, value decimal.Decimal) (AppliedOffer, error) {
	offer := AppliedOffer{
		Type:      offerType,
		Value:     value,
		AppliedAt: time.Now(),
	}

	switch offerType {
	case "percentage":
		hundred := decimal.NewFromInt(100)
		if !value.IsPositive() || value.GreaterThanOrEqual(hundred) {
			return AppliedOffer{}, &apperrors.ErrValidation{Field: "value", Message: "percentage must be between 0 and 100 exclusive"}
		}
		offer.DiscountAmount = o.Subtotal.Mul(value).Div(hundred)
		offer.Description = fmt.Sprintf("خصم %s%% على المنتجات", value.String())
	case "fixed":
		if !value.IsPositive() {
			return AppliedOffer{}, &apperrors.ErrValidation{Field: "value", Message: "fixed discount must be positive"}
		}
		remaining := o.Subtotal.Sub(o.Discount)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		amount := value
		if amount.GreaterThan(remaining) {
			amount = remaining
		}
		offer.DiscountAmount = amount
		offer.Description = fmt.Sprintf("خصم %s ج", amount.StringFixed(2))
	case "bundle":
		// Bundle offers are logged for the record and applied manually on the
		// affected lines.
		offer.Description = "عرض حزمة"
	default:
		return AppliedOffer{}, &apperrors.ErrValidation{Field: "type", Message: "unknown offer type " + offerType}
	}

	o.Discount = o.Discount.Add(offer.DiscountAmount)
	o.OffersApplied = append(o.OffersApplied, offer)
	o.recalculate()
	return offer, nil
}

// EvaluateFreeShipping zeroes the shipping cost when the order's commission
// already clears the threshold. The original cost is kept for audit and a
// human-readable reason is recorded. Calling it again once free shipping has
// been granted is a no-op. minProfit is accepted for completeness; only the
// commission threshold gates eligibility.
func (o *Order) EvaluateFreeShipping(policy FreeShippingPolicy) bool {
	if o.FreeShipping {
		return false
	}
	if o.TotalCommission.GreaterThanOrEqual(policy.Threshold) && o.ShippingCost.IsPositive() {
		o.FreeShipping = true
		o.FreeShippingReason = fmt.Sprintf(
			"صافي الربح (%s ج) تجاوز الحد (%s ج)",
			o.TotalCommission.StringFixed(2), policy.Threshold.StringFixed(2),
		)
		o.OriginalShippingCost = o.ShippingCost
		o.ShippingCost = decimal.Zero
		o.recalculate()
		return true
	}
	return false
}

// SetShippingCost looks up the flat rate for the region, adds the handling
// fee, and re-evaluates free-shipping eligibility.
func (o *Order) SetShippingCost(region string, rates ShippingRateTable, handlingFee decimal.Decimal, policy FreeShippingPolicy) {
	o.ShippingCost = rates.RateFor(region).Add(handlingFee)
	o.recalculate()
	o.EvaluateFreeShipping(policy)
}

// UpdateStatus transitions the order and appends an audit entry. Transitions
// are validated against the state machine.
func (o *Order) UpdateStatus(newStatus OrderStatus, note string) error {
	if !newStatus.IsValid() {
		return &apperrors.ErrValidation{Field: "status", Message: "unknown status " + string(newStatus)}
	}
	if !o.Status.CanTransitionTo(newStatus) {
		return &apperrors.ErrInvalidStateTransition{From: string(o.Status), To: string(newStatus)}
	}
	o.StatusHistory = append(o.StatusHistory, StatusChange{
		From: o.Status,
		To:   newStatus,
		Note: note,
		At:   time.Now(),
	})
	o.Status = newStatus
	o.touch()
	return nil
}

// GroupByMerchant summarizes the order's lines per merchant.
func (o *Order) GroupByMerchant() map[string]*MerchantSummary {
	summaries := make(map[string]*MerchantSummary)
	for _, line := range o.Lines {
		if line.MerchantID == "" {
			continue
		}
		s, ok := summaries[line.MerchantID]
		if !ok {
			s = &MerchantSummary{MerchantName: line.MerchantName}
			summaries[line.MerchantID] = s
		}
		s.Lines = append(s.Lines, line)
		s.Subtotal = s.Subtotal.Add(line.LineTotal)
		s.Commission = s.Commission.Add(line.Commission)
	}
	return summaries
}

// Revalidate recomputes the Valid flag: customer name and phone, address and
// city, at least one line, and a positive total.
func (o *Order) Revalidate() bool {
	o.Valid = o.Customer.Name != "" &&
		o.Customer.Phone != "" &&
		o.Shipping.Address != "" &&
		o.Shipping.City != "" &&
		len(o.Lines) > 0 &&
		o.Total.IsPositive()
	return o.Valid
}

// recalculate re-derives every financial total from the lines, then
// revalidates. total = subtotal + shipping − discount; due = total − paid;
// net profit = commission − shipping.
func (o *Order) recalculate() {
	subtotal := decimal.Zero
	commission := decimal.Zero
	for _, line := range o.Lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		commission = commission.Add(line.Commission)
	}
	o.Subtotal = subtotal
	o.TotalCommission = commission
	o.Total = o.Subtotal.Add(o.ShippingCost).Sub(o.Discount)
	o.DueAmount = o.Total.Sub(o.PaidAmount)
	o.NetProfit = o.TotalCommission.Sub(o.ShippingCost)
	o.touch()
	o.Revalidate()
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now()
}

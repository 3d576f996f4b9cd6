package domain

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

// IsValid checks if the order status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusReturned:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid.
// The forward chain is pending → confirmed → processing → shipped → delivered;
// cancelled and returned are reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if newStatus == OrderStatusCancelled || newStatus == OrderStatusReturned {
		return true
	}

	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return newStatus == OrderStatusProcessing
	case OrderStatusProcessing:
		return newStatus == OrderStatusShipped
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	default:
		return false
	}
}

// CommissionType selects how a merchant's commission is computed
type CommissionType string

const (
	// CommissionFixedVariable is a per-unit amount entered manually per product,
	// with a configured default when no manual value is supplied.
	CommissionFixedVariable CommissionType = "fixed_variable"
	// CommissionPercentageVariable is a percentage entered manually per product,
	// falling back to the midpoint of the configured rate range.
	CommissionPercentageVariable CommissionType = "percentage_variable"
	// CommissionPercentageFixedDual is two fixed percentage legs: one on the
	// product price and one on merchant-side offers.
	CommissionPercentageFixedDual CommissionType = "percentage_fixed"
	// CommissionComplexExternal means the commission lives in an offline
	// document and cannot be computed here.
	CommissionComplexExternal CommissionType = "complex_external"
	// CommissionNone earns nothing (the house catalog and unknown merchants).
	CommissionNone CommissionType = "none"
)

// ReturnResponsible identifies who absorbs the cost of a returned order
type ReturnResponsible string

const (
	ReturnResponsibleMerchant ReturnResponsible = "merchant"
	ReturnResponsiblePlatform ReturnResponsible = "platform"
)

// Availability represents product stock status from the upstream catalog
type Availability string

const (
	AvailabilityInStock     Availability = "in stock"
	AvailabilityUnavailable Availability = "unavailable"
)

// PaymentMethod represents how the customer pays
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentVodafoneCash   PaymentMethod = "vodafone_cash"
	PaymentFawry          PaymentMethod = "fawry"
)

// OrderSource records which channel the order arrived through
type OrderSource string

const (
	SourceWhatsApp  OrderSource = "whatsapp"
	SourceWebsite   OrderSource = "website"
	SourcePhone     OrderSource = "phone"
	SourceFacebook  OrderSource = "facebook"
	SourceInstagram OrderSource = "instagram"
)

package service

import (
	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/commission"
	"github.com/argentostore/storefront/internal/config"
	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/metrics"
	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/store"
)

type OrderService struct {
	catalog   *store.CatalogStore
	orders    *store.OrderStore
	merchants *registry.Merchants
	geo       *registry.Geo
	shipping  config.ShippingConfig
	metrics   *metrics.Registry
	logger    *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	catalog *store.CatalogStore,
	orders *store.OrderStore,
	merchants *registry.Merchants,
	geo *registry.Geo,
	shipping config.ShippingConfig,
	m *metrics.Registry,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		catalog:   catalog,
		orders:    orders,
		merchants: merchants,
		geo:       geo,
		shipping:  shipping,
		metrics:   m,
		logger:    logger,
	}
}

// CreateOrder builds an order from a landing-page submission: resolves every
// product from the catalog cache, computes per-line commissions, sets the
// shipping cost by region, and evaluates free shipping. A malformed
// submission yields an order with Valid=false rather than an error; only
// valid orders are persisted. Unknown products do error, since there is no
// sensible default price to fall back to.
func (s *OrderService) CreateOrder(req OrderSubmitRequest) (*domain.Order, error) {
	order := domain.NewOrder(
		domain.Customer{
			Name:     req.Customer.Name,
			Phone:    req.Customer.Phone,
			WhatsApp: req.Customer.WhatsApp,
			Email:    req.Customer.Email,
			Notes:    req.Customer.Notes,
		},
		domain.ShippingDetails{
			Address:   req.Shipping.Address,
			City:      req.Shipping.City,
			Area:      req.Shipping.Area,
			Building:  req.Shipping.Building,
			Floor:     req.Shipping.Floor,
			Apartment: req.Shipping.Apartment,
			Landmark:  req.Shipping.Landmark,
			Notes:     req.Shipping.Notes,
		},
	)
	order.ReferenceID = req.ReferenceID
	if req.PaymentMethod != "" {
		order.PaymentMethod = domain.PaymentMethod(req.PaymentMethod)
	}
	if req.Source != "" {
		order.Source = domain.OrderSource(req.Source)
	}

	ctx := domain.OrderContext{
		HasMerchantOffer:   req.HasMerchantOffer,
		MerchantOfferTotal: req.MerchantOfferTotal,
	}

	for _, item := range req.Items {
		product, err := s.catalog.FindByIDOrSlug(item.ProductID)
		if err != nil {
			return nil, err
		}

		merchant := s.merchants.Lookup(product.MerchantID)
		result := commission.Calculate(merchant, domain.CommissionLine{
			ProductID:   product.ID,
			ProductName: product.Title,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			ManualValue: item.CommissionValue,
		}, ctx)

		if err := order.AddLine(*product, merchant, item.Quantity, result.Amount, result.Details); err != nil {
			return nil, err
		}
	}

	// Region follows the canonical city; unrecognized cities pay the default
	// rate for the home region.
	region, _ := s.geo.CanonicalCity(req.Shipping.City)
	order.SetShippingCost(region, s.rateTable(), s.shipping.HandlingFee, s.freeShippingPolicy())

	if !order.Valid {
		s.metrics.OrdersInvalid.Inc()
		s.logger.Warn("Order submission did not validate",
			zap.String("order_id", order.OrderID),
		)
		return order, nil
	}

	if err := s.orders.Append(order); err != nil {
		return nil, err
	}
	s.metrics.OrdersCreated.Inc()
	s.logger.Info("Order created",
		zap.String("order_id", order.OrderID),
		zap.String("total", order.Total.StringFixed(2)),
		zap.Int("lines", len(order.Lines)),
	)
	return order, nil
}

// PreviewCommission quotes the commission for one product line before order
// confirmation.
func (s *OrderService) PreviewCommission(req CommissionPreviewRequest) (*domain.CommissionResult, error) {
	product, err := s.catalog.FindByIDOrSlug(req.ProductID)
	if err != nil {
		return nil, err
	}
	merchant := s.merchants.Lookup(product.MerchantID)
	result := commission.Calculate(merchant, domain.CommissionLine{
		ProductID:   product.ID,
		ProductName: product.Title,
		UnitPrice:   product.Price,
		Quantity:    req.Quantity,
		ManualValue: req.CommissionValue,
	}, domain.OrderContext{
		ShippingCost:       req.ShippingCost,
		HasMerchantOffer:   req.HasMerchantOffer,
		MerchantOfferTotal: req.MerchantOfferTotal,
	})
	return &result, nil
}

// UpdateStatus transitions a stored order and persists the change.
func (s *OrderService) UpdateStatus(orderID string, newStatus domain.OrderStatus, note string) (*domain.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if err := order.UpdateStatus(newStatus, note); err != nil {
		return nil, err
	}
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	s.metrics.StatusChanges.Inc()
	s.logger.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(newStatus)),
	)
	return order, nil
}

// GetOrder returns one stored order.
func (s *OrderService) GetOrder(orderID string) (*domain.Order, error) {
	return s.orders.GetByID(orderID)
}

// ListOrders returns stored orders, optionally filtered by status.
func (s *OrderService) ListOrders(statuses ...domain.OrderStatus) ([]domain.Order, error) {
	return s.orders.ListByStatus(statuses...)
}

// Stats summarizes the order book for the admin dashboard.
func (s *OrderService) Stats() (*DashboardStats, error) {
	orders, err := s.orders.Load()
	if err != nil {
		return nil, err
	}
	stats := &DashboardStats{
		TotalOrders:    len(orders),
		OrdersByStatus: make(map[string]int),
	}
	for _, o := range orders {
		stats.OrdersByStatus[string(o.Status)]++
		if o.Status == domain.OrderStatusCancelled || o.Status == domain.OrderStatusReturned {
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		stats.TotalCommission = stats.TotalCommission.Add(o.TotalCommission)
		stats.NetProfit = stats.NetProfit.Add(o.NetProfit)
	}
	return stats, nil
}

func (s *OrderService) rateTable() domain.ShippingRateTable {
	return domain.ShippingRateTable{
		Regions: s.shipping.RegionRates,
		Default: s.shipping.DefaultRate,
	}
}

func (s *OrderService) freeShippingPolicy() domain.FreeShippingPolicy {
	return domain.FreeShippingPolicy{
		Threshold: s.shipping.FreeShippingThreshold,
		MinProfit: s.shipping.MinProfit,
	}
}

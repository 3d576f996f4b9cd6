package store

import (
	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/domain"
	apperrors "github.com/argentostore/storefront/pkg/errors"
)

// OrderStore holds the orders document on disk as a flat sequence of orders.
type OrderStore struct {
	path   string
	logger *zap.Logger
}

// NewOrderStore creates an order store backed by the given file.
func NewOrderStore(path string, logger *zap.Logger) *OrderStore {
	return &OrderStore{path: path, logger: logger}
}

// Load reads every stored order; a missing file reads as no orders.
func (s *OrderStore) Load() ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := readDocument(s.path, &orders); err != nil {
		s.logger.Error("Failed to load orders", zap.String("path", s.path), zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// Save atomically replaces the orders document.
func (s *OrderStore) Save(orders []domain.Order) error {
	if err := writeDocument(s.path, orders); err != nil {
		s.logger.Error("Failed to save orders", zap.String("path", s.path), zap.Error(err))
		return err
	}
	return nil
}

// Append adds one order to the document.
func (s *OrderStore) Append(order *domain.Order) error {
	orders, err := s.Load()
	if err != nil {
		return err
	}
	orders = append(orders, *order)
	return s.Save(orders)
}

// GetByID finds one order by its order id.
func (s *OrderStore) GetByID(orderID string) (*domain.Order, error) {
	orders, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, &apperrors.ErrNotFound{Resource: "order", ID: orderID}
}

// Update replaces the stored order with the same order id.
func (s *OrderStore) Update(order *domain.Order) error {
	orders, err := s.Load()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].OrderID == order.OrderID {
			orders[i] = *order
			return s.Save(orders)
		}
	}
	return &apperrors.ErrNotFound{Resource: "order", ID: order.OrderID}
}

// ListByStatus returns the orders whose status is in the given set; an empty
// set returns everything.
func (s *OrderStore) ListByStatus(statuses ...domain.OrderStatus) ([]domain.Order, error) {
	orders, err := s.Load()
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return orders, nil
	}
	wanted := make(map[domain.OrderStatus]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}
	var out []domain.Order
	for _, o := range orders {
		if wanted[o.Status] {
			out = append(out, o)
		}
	}
	return out, nil
}

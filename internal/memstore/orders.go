package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"boutique-storefront/internal/models"
)

// OrderStore holds placed orders.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Create records a new pending order and computes its total.
func (s *OrderStore) Create(req *models.OrderRequest) models.Order {
	total := 0.0
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}

	order := models.Order{
		ID:              uuid.NewString(),
		UserEmail:       req.UserEmail,
		UserFullName:    req.UserFullName,
		Items:           append([]models.OrderItem(nil), req.Items...),
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
		CreatedAt:       time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return order
}

// List returns all orders, newest first.
func (s *OrderStore) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders
}

func (s *OrderStore) Get(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// SetStatus transitions an order to a new status.
func (s *OrderStore) SetStatus(id, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders[i].Status = status
			return s.orders[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *OrderStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Stats aggregates the dashboard counters. Revenue counts confirmed orders
// only.
func (s *OrderStore) Stats(productsCount int) models.AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := models.AdminStats{
		OrdersCount:   len(s.orders),
		ProductsCount: productsCount,
	}
	for _, o := range s.orders {
		if o.Status == models.OrderStatusConfirmed {
			stats.TotalRevenue += o.TotalAmount
		}
	}
	return stats
}

package repository

import (
	"context"
	"sync"

	"logistics-service/internal/domain"
)

// OrderRepository defines the interface for order storage
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
}

// InMemoryOrderRepository keeps orders in a process-local map. One lock per
// collection serializes concurrent writers to the same key.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func NewOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]*domain.Order),
	}
}

// Create inserts a new order, rejecting duplicate identifiers
func (r *InMemoryOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.OrderID]; exists {
		return domain.ErrOrderExists
	}
	r.orders[order.OrderID] = order
	return nil
}

func (r *InMemoryOrderRepository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[orderID]
	if !exists {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

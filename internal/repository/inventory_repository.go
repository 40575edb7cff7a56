package repository

import (
	"context"
	"sort"
	"sync"

	"logistics-service/internal/domain"
)

// InventoryRepository defines the interface for inventory storage
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	FindByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	List(ctx context.Context) ([]*domain.InventoryItem, error)
}

// InMemoryInventoryRepository keeps inventory items in a process-local map
// guarded by a single lock. Reads hand out copies.
type InMemoryInventoryRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.InventoryItem
}

func NewInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{
		items: make(map[string]*domain.InventoryItem),
	}
}

// Create inserts a new item, rejecting duplicate identifiers
func (r *InMemoryInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ItemID]; exists {
		return domain.ErrItemExists
	}
	r.items[item.ItemID] = item
	return nil
}

func (r *InMemoryInventoryRepository) FindByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[itemID]
	if !exists {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

// Update replaces the stored item
func (r *InMemoryInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ItemID]; !exists {
		return domain.ErrItemNotFound
	}
	r.items[item.ItemID] = item
	return nil
}

// List returns all items ordered by item ID for stable output
func (r *InMemoryInventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*domain.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		clone := *item
		items = append(items, &clone)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ItemID < items[j].ItemID
	})
	return items, nil
}

package repository

import (
	"context"
	"sort"
	"sync"

	"logistics-service/internal/domain"
)

// ShipmentRepository defines the interface for shipment storage
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *domain.Shipment) error
	FindByID(ctx context.Context, shipmentID string) (*domain.Shipment, error)
	Update(ctx context.Context, shipment *domain.Shipment) error
	List(ctx context.Context, status string) ([]*domain.Shipment, error)
}

// InMemoryShipmentRepository keeps shipments in a process-local map guarded
// by a single lock. Reads hand out clones so a caller mutating a shipment
// never races a concurrent marshal of the stored record.
type InMemoryShipmentRepository struct {
	mu        sync.RWMutex
	shipments map[string]*domain.Shipment
}

func NewShipmentRepository() *InMemoryShipmentRepository {
	return &InMemoryShipmentRepository{
		shipments: make(map[string]*domain.Shipment),
	}
}

// Create inserts a new shipment, rejecting duplicate identifiers
func (r *InMemoryShipmentRepository) Create(ctx context.Context, shipment *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.shipments[shipment.ShipmentID]; exists {
		return domain.ErrShipmentExists
	}
	r.shipments[shipment.ShipmentID] = shipment
	return nil
}

func (r *InMemoryShipmentRepository) FindByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shipment, exists := r.shipments[shipmentID]
	if !exists {
		return nil, domain.ErrShipmentNotFound
	}
	return shipment.Clone(), nil
}

// Update replaces the stored shipment
func (r *InMemoryShipmentRepository) Update(ctx context.Context, shipment *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.shipments[shipment.ShipmentID]; !exists {
		return domain.ErrShipmentNotFound
	}
	r.shipments[shipment.ShipmentID] = shipment
	return nil
}

// List returns all shipments, or only those matching status when it is
// non-empty, ordered by shipment ID for stable output.
func (r *InMemoryShipmentRepository) List(ctx context.Context, status string) ([]*domain.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shipments := make([]*domain.Shipment, 0, len(r.shipments))
	for _, shipment := range r.shipments {
		if status != "" && shipment.Status != status {
			continue
		}
		shipments = append(shipments, shipment.Clone())
	}

	sort.Slice(shipments, func(i, j int) bool {
		return shipments[i].ShipmentID < shipments[j].ShipmentID
	})
	return shipments, nil
}

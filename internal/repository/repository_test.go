package repository

import (
	"context"
	"testing"

	"logistics-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestOrderRepository_CreateAndFind(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	order := domain.NewOrder("ORD-001", "John Doe", []string{"item1"})
	assert.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByID(ctx, "ORD-001")
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", found.Customer)
	assert.Equal(t, domain.OrderStatusCreated, found.Status)
}

func TestOrderRepository_DuplicateKeepsFirstRecord(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	first := domain.NewOrder("ORD-001", "John Doe", nil)
	assert.NoError(t, repo.Create(ctx, first))

	second := domain.NewOrder("ORD-001", "Jane Doe", nil)
	assert.Equal(t, domain.ErrOrderExists, repo.Create(ctx, second))

	found, err := repo.FindByID(ctx, "ORD-001")
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", found.Customer)
}

func TestOrderRepository_FindMissing(t *testing.T) {
	repo := NewOrderRepository()

	_, err := repo.FindByID(context.Background(), "UNKNOWN")
	assert.Equal(t, domain.ErrOrderNotFound, err)
}

func TestShipmentRepository_UpdatePersistsHistory(t *testing.T) {
	repo := NewShipmentRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, domain.NewShipment("SHP-001", "NY", "LA", nil)))

	shipment, err := repo.FindByID(ctx, "SHP-001")
	assert.NoError(t, err)
	shipment.UpdateLocation("Chicago", domain.ShipmentStatusInTransit, "")
	assert.NoError(t, repo.Update(ctx, shipment))

	stored, err := repo.FindByID(ctx, "SHP-001")
	assert.NoError(t, err)
	assert.Equal(t, "Chicago", stored.CurrentLocation)
	assert.Len(t, stored.TrackingHistory, 2)
}

func TestShipmentRepository_FindReturnsClone(t *testing.T) {
	repo := NewShipmentRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, domain.NewShipment("SHP-001", "NY", "LA", nil)))

	// Mutating a fetched shipment must not leak into the store until Update
	shipment, _ := repo.FindByID(ctx, "SHP-001")
	shipment.UpdateLocation("Chicago", domain.ShipmentStatusInTransit, "")

	stored, _ := repo.FindByID(ctx, "SHP-001")
	assert.Equal(t, "NY", stored.CurrentLocation)
	assert.Len(t, stored.TrackingHistory, 1)
}

func TestShipmentRepository_ListFiltersByStatus(t *testing.T) {
	repo := NewShipmentRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, domain.NewShipment("SHP-001", "NY", "LA", nil)))
	assert.NoError(t, repo.Create(ctx, domain.NewShipment("SHP-002", "SF", "SEA", nil)))

	moving, _ := repo.FindByID(ctx, "SHP-002")
	moving.UpdateLocation("Portland", domain.ShipmentStatusInTransit, "")
	assert.NoError(t, repo.Update(ctx, moving))

	all, err := repo.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "SHP-001", all[0].ShipmentID)
	assert.Equal(t, "SHP-002", all[1].ShipmentID)

	pending, err := repo.List(ctx, domain.ShipmentStatusPending)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "SHP-001", pending[0].ShipmentID)

	delivered, err := repo.List(ctx, "delivered")
	assert.NoError(t, err)
	assert.Empty(t, delivered)
}

func TestShipmentRepository_UpdateMissing(t *testing.T) {
	repo := NewShipmentRepository()

	err := repo.Update(context.Background(), domain.NewShipment("SHP-404", "NY", "LA", nil))
	assert.Equal(t, domain.ErrShipmentNotFound, err)
}

func TestInventoryRepository_CreateFindUpdate(t *testing.T) {
	repo := NewInventoryRepository()
	ctx := context.Background()

	item := domain.NewInventoryItem("ITM-001", "Widget", 100, "Warehouse A", "Electronics")
	assert.NoError(t, repo.Create(ctx, item))
	assert.Equal(t, domain.ErrItemExists, repo.Create(ctx, item))

	found, err := repo.FindByID(ctx, "ITM-001")
	assert.NoError(t, err)
	assert.Equal(t, 100, found.Quantity)

	found.SetQuantity(250)
	assert.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, "ITM-001")
	assert.NoError(t, err)
	assert.Equal(t, 250, updated.Quantity)
}

func TestInventoryRepository_ListOrderedByID(t *testing.T) {
	repo := NewInventoryRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, domain.NewInventoryItem("ITM-002", "Bolt", 5, "Warehouse", "General")))
	assert.NoError(t, repo.Create(ctx, domain.NewInventoryItem("ITM-001", "Widget", 10, "Warehouse", "General")))

	items, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "ITM-001", items[0].ItemID)
	assert.Equal(t, "ITM-002", items[1].ItemID)
}

func TestInventoryRepository_UpdateMissing(t *testing.T) {
	repo := NewInventoryRepository()

	err := repo.Update(context.Background(), domain.NewInventoryItem("ITM-404", "Ghost", 1, "Warehouse", "General"))
	assert.Equal(t, domain.ErrItemNotFound, err)
}

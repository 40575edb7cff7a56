package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
}

// Order domain events
type OrderCreatedEvent struct {
	OrderID    string   `json:"order_id"`
	Customer   string   `json:"customer"`
	Items      []string `json:"items"`
	OccurredAt string   `json:"occurred_at"`
}

// Shipment domain events
type ShipmentCreatedEvent struct {
	ShipmentID  string `json:"shipment_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	OccurredAt  string `json:"occurred_at"`
}

type ShipmentLocationUpdatedEvent struct {
	ShipmentID string `json:"shipment_id"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// Inventory domain events
type InventoryItemAddedEvent struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Location   string `json:"location"`
	Category   string `json:"category"`
	OccurredAt string `json:"occurred_at"`
}

type StockUpdatedEvent struct {
	ItemID     string `json:"item_id"`
	Quantity   int    `json:"quantity"`
	OccurredAt string `json:"occurred_at"`
}

// InMemoryEventPublisher records events locally. It is the fallback when no
// event broker is reachable, and what handler tests inspect.
type InMemoryEventPublisher struct {
	mu     sync.Mutex
	logger *zap.Logger
	events []interface{}
}

func NewInMemoryEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryEventPublisher{
		logger: logger,
		events: make([]interface{}, 0),
	}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	p.logger.Debug("Event published (in-memory)", zap.Any("event", event))
	return nil
}

// Events returns a snapshot of everything published so far
func (p *InMemoryEventPublisher) Events() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := make([]interface{}, len(p.events))
	copy(snapshot, p.events)
	return snapshot
}

package domain

// OrderStatusCreated is the only status an order can have in this service;
// orders are never mutated after creation.
const OrderStatusCreated = "created"

// DefaultCustomer is used when the caller does not name a customer
const DefaultCustomer = "Unknown"

// Order represents a customer order keyed by a caller-supplied identifier
type Order struct {
	OrderID   string   `json:"order_id"`
	Customer  string   `json:"customer"`
	Items     []string `json:"items"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
}

// NewOrder creates a new order. An absent items list becomes an empty one
// so it serializes as [] rather than null.
func NewOrder(orderID, customer string, items []string) *Order {
	if items == nil {
		items = []string{}
	}
	return &Order{
		OrderID:   orderID,
		Customer:  customer,
		Items:     items,
		Status:    OrderStatusCreated,
		CreatedAt: Now(),
	}
}

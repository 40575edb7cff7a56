package domain

// Domain errors
var (
	ErrOrderExists      = &DomainError{Message: "Order already exists"}
	ErrOrderNotFound    = &DomainError{Message: "Order not found"}
	ErrShipmentExists   = &DomainError{Message: "Shipment already exists"}
	ErrShipmentNotFound = &DomainError{Message: "Shipment not found"}
	ErrItemExists       = &DomainError{Message: "Item already exists"}
	ErrItemNotFound     = &DomainError{Message: "Item not found"}
	ErrWaypointsNotList = &DomainError{Message: "Waypoints must be a list"}
)

// DomainError represents a domain-level error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

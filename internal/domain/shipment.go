package domain

// Shipment statuses. A shipment starts out pending; location updates move it
// to in_transit unless the caller supplies a status of their own.
const (
	ShipmentStatusPending   = "pending"
	ShipmentStatusInTransit = "in_transit"
)

// TrackingEntry is one record in a shipment's tracking history. The entry
// written at creation has no notes; entries appended by location updates
// always carry notes, possibly empty.
type TrackingEntry struct {
	Location  string  `json:"location"`
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Notes     *string `json:"notes,omitempty"`
}

// Shipment represents a shipment keyed by a caller-supplied identifier.
// TrackingHistory is append-only and always reflects update order.
type Shipment struct {
	ShipmentID        string          `json:"shipment_id"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	Status            string          `json:"status"`
	CurrentLocation   string          `json:"current_location"`
	CreatedAt         string          `json:"created_at"`
	EstimatedDelivery *string         `json:"estimated_delivery"`
	TrackingHistory   []TrackingEntry `json:"tracking_history"`
}

// NewShipment creates a new shipment at its origin with an initial
// tracking entry
func NewShipment(shipmentID, origin, destination string, estimatedDelivery *string) *Shipment {
	now := Now()
	return &Shipment{
		ShipmentID:        shipmentID,
		Origin:            origin,
		Destination:       destination,
		Status:            ShipmentStatusPending,
		CurrentLocation:   origin,
		CreatedAt:         now,
		EstimatedDelivery: estimatedDelivery,
		TrackingHistory: []TrackingEntry{
			{
				Location:  origin,
				Status:    ShipmentStatusPending,
				Timestamp: now,
			},
		},
	}
}

// UpdateLocation moves the shipment to a new location and status and
// appends the transition to the tracking history
func (s *Shipment) UpdateLocation(location, status, notes string) {
	s.CurrentLocation = location
	s.Status = status
	s.TrackingHistory = append(s.TrackingHistory, TrackingEntry{
		Location:  location,
		Status:    status,
		Timestamp: Now(),
		Notes:     &notes,
	})
}

// Clone returns a copy of the shipment with its own tracking history slice
func (s *Shipment) Clone() *Shipment {
	clone := *s
	clone.TrackingHistory = make([]TrackingEntry, len(s.TrackingHistory))
	copy(clone.TrackingHistory, s.TrackingHistory)
	return &clone
}

package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"logistics-service/internal/domain"
	"logistics-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse documents the error body shape
// @Description Error response with error message and, for multi-field
// @Description payloads, the list of required field names
type ErrorResponse struct {
	Error    string   `json:"error" example:"Shipment not found"`
	Required []string `json:"required,omitempty" example:"shipment_id,origin,destination"`
}

// OrderResponse wraps a created order
type OrderResponse struct {
	Message string        `json:"message" example:"Order created successfully"`
	Order   *domain.Order `json:"order"`
}

// ShipmentResponse wraps a created or updated shipment
type ShipmentResponse struct {
	Message  string           `json:"message" example:"Shipment created successfully"`
	Shipment *domain.Shipment `json:"shipment"`
}

// ShipmentListResponse is the response for listing shipments
type ShipmentListResponse struct {
	Count     int                `json:"count" example:"2"`
	Shipments []*domain.Shipment `json:"shipments"`
}

// InventoryItemResponse wraps a created or updated inventory item
type InventoryItemResponse struct {
	Message string                `json:"message" example:"Inventory item added successfully"`
	Item    *domain.InventoryItem `json:"item"`
}

// InventoryListResponse is the response for listing inventory
type InventoryListResponse struct {
	Count     int                     `json:"count" example:"3"`
	Inventory []*domain.InventoryItem `json:"inventory"`
}

// RouteResponse wraps an optimized route
type RouteResponse struct {
	Message string        `json:"message" example:"Route optimized successfully"`
	Route   *domain.Route `json:"route"`
}

// ServiceInfoResponse is the service information body
type ServiceInfoResponse struct {
	Service  string   `json:"service" example:"Logistics Service"`
	Status   string   `json:"status" example:"Running"`
	Version  string   `json:"version" example:"2.0"`
	Features []string `json:"features"`
}

// respondError writes a structured error with its mapped HTTP status
func respondError(c *gin.Context, err *errors.APIError) {
	c.JSON(err.HTTPStatus(), err)
}

// parseQuantity coerces a raw JSON value into an integer quantity. JSON
// integers pass through, floats truncate toward zero and numeric strings
// are parsed; anything else is a validation error. Absence must be checked
// by the caller, a nil raw means the field was never sent; an explicit
// null arrives here as the literal null token.
func parseQuantity(raw json.RawMessage) (int, *errors.APIError) {
	// json.Unmarshal treats null as a no-op for an int target, so it has
	// to be rejected before the numeric checks run
	if string(bytes.TrimSpace(raw)) == "null" {
		return 0, errors.NewValidationError("Quantity must be a valid integer")
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return parsed, nil
		}
	}

	return 0, errors.NewValidationError("Quantity must be a valid integer")
}

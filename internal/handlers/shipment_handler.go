package handlers

import (
	"net/http"

	"logistics-service/internal/domain"
	"logistics-service/internal/events"
	"logistics-service/internal/repository"
	"logistics-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var shipmentRequiredFields = []string{"shipment_id", "origin", "destination"}

// ShipmentHandler serves the shipment endpoints
type ShipmentHandler struct {
	logger     *zap.Logger
	repository repository.ShipmentRepository
	eventBus   events.EventPublisher
}

func NewShipmentHandler(logger *zap.Logger, repo repository.ShipmentRepository, eventBus events.EventPublisher) *ShipmentHandler {
	return &ShipmentHandler{
		logger:     logger,
		repository: repo,
		eventBus:   eventBus,
	}
}

type createShipmentRequest struct {
	ShipmentID        *string `json:"shipment_id"`
	Origin            *string `json:"origin"`
	Destination       *string `json:"destination"`
	EstimatedDelivery *string `json:"estimated_delivery"`
}

type updateLocationRequest struct {
	Location *string `json:"location"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

// Create handles POST /shipment
// @Summary      Create a new shipment
// @Description  Creates a shipment at its origin with status "pending" and a single tracking history entry.
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        request  body      createShipmentRequest  true  "Shipment creation request"
// @Success      201      {object}  ShipmentResponse  "Shipment created"
// @Failure      400      {object}  ErrorResponse     "Required fields missing"
// @Failure      409      {object}  ErrorResponse     "Duplicate shipment_id"
// @Router       /shipment [post]
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req createShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewMissingFieldsError(shipmentRequiredFields))
		return
	}
	if req.ShipmentID == nil || req.Origin == nil || req.Destination == nil {
		respondError(c, errors.NewMissingFieldsError(shipmentRequiredFields))
		return
	}

	shipment := domain.NewShipment(*req.ShipmentID, *req.Origin, *req.Destination, req.EstimatedDelivery)

	if err := h.repository.Create(c.Request.Context(), shipment); err != nil {
		respondError(c, errors.NewConflictError("Shipment already exists"))
		return
	}

	event := events.ShipmentCreatedEvent{
		ShipmentID:  shipment.ShipmentID,
		Origin:      shipment.Origin,
		Destination: shipment.Destination,
		OccurredAt:  shipment.CreatedAt,
	}
	if err := h.eventBus.Publish(c.Request.Context(), event); err != nil {
		h.logger.Error("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Shipment created",
		zap.String("shipment_id", shipment.ShipmentID),
		zap.String("origin", shipment.Origin),
		zap.String("destination", shipment.Destination),
	)
	c.JSON(http.StatusCreated, ShipmentResponse{
		Message:  "Shipment created successfully",
		Shipment: shipment,
	})
}

// Get handles GET /shipment/:id
// @Summary      Get shipment status and tracking information
// @Tags         shipments
// @Produce      json
// @Param        id   path      string  true  "Shipment ID"
// @Success      200  {object}  domain.Shipment
// @Failure      404  {object}  ErrorResponse  "Shipment not found"
// @Router       /shipment/{id} [get]
func (h *ShipmentHandler) Get(c *gin.Context) {
	shipment, err := h.repository.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, errors.NewNotFoundError("Shipment not found"))
		return
	}

	c.JSON(http.StatusOK, shipment)
}

// UpdateLocation handles PUT /shipment/:id/location
// @Summary      Update shipment location
// @Description  Moves the shipment to a new location, sets its status (default "in_transit") and appends the transition to the tracking history. History entries always reflect call order.
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Shipment ID"
// @Param        request  body      updateLocationRequest  true  "Location update request"
// @Success      200      {object}  ShipmentResponse  "Location updated"
// @Failure      400      {object}  ErrorResponse     "location missing"
// @Failure      404      {object}  ErrorResponse     "Shipment not found"
// @Router       /shipment/{id}/location [put]
func (h *ShipmentHandler) UpdateLocation(c *gin.Context) {
	shipment, err := h.repository.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, errors.NewNotFoundError("Shipment not found"))
		return
	}

	var req updateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Location == nil {
		respondError(c, errors.NewValidationError("Location is required"))
		return
	}

	status := domain.ShipmentStatusInTransit
	if req.Status != nil {
		status = *req.Status
	}
	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	shipment.UpdateLocation(*req.Location, status, notes)

	if err := h.repository.Update(c.Request.Context(), shipment); err != nil {
		respondError(c, errors.NewNotFoundError("Shipment not found"))
		return
	}

	event := events.ShipmentLocationUpdatedEvent{
		ShipmentID: shipment.ShipmentID,
		Location:   shipment.CurrentLocation,
		Status:     shipment.Status,
		OccurredAt: shipment.TrackingHistory[len(shipment.TrackingHistory)-1].Timestamp,
	}
	if err := h.eventBus.Publish(c.Request.Context(), event); err != nil {
		h.logger.Error("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Shipment location updated",
		zap.String("shipment_id", shipment.ShipmentID),
		zap.String("location", shipment.CurrentLocation),
		zap.String("status", shipment.Status),
	)
	c.JSON(http.StatusOK, ShipmentResponse{
		Message:  "Location updated successfully",
		Shipment: shipment,
	})
}

// List handles GET /shipments
// @Summary      List shipments
// @Description  Lists all shipments, or only those whose status equals the filter when provided.
// @Tags         shipments
// @Produce      json
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  ShipmentListResponse
// @Router       /shipments [get]
func (h *ShipmentHandler) List(c *gin.Context) {
	shipments, err := h.repository.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.logger.Error("Failed to list shipments", zap.Error(err))
		respondError(c, errors.NewInternalError())
		return
	}

	c.JSON(http.StatusOK, ShipmentListResponse{
		Count:     len(shipments),
		Shipments: shipments,
	})
}

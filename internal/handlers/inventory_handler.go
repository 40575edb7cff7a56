package handlers

import (
	"encoding/json"
	"net/http"

	"logistics-service/internal/domain"
	"logistics-service/internal/events"
	"logistics-service/internal/repository"
	"logistics-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var inventoryRequiredFields = []string{"item_id", "name", "quantity"}

// InventoryHandler serves the inventory endpoints
type InventoryHandler struct {
	logger     *zap.Logger
	repository repository.InventoryRepository
	eventBus   events.EventPublisher
}

func NewInventoryHandler(logger *zap.Logger, repo repository.InventoryRepository, eventBus events.EventPublisher) *InventoryHandler {
	return &InventoryHandler{
		logger:     logger,
		repository: repo,
		eventBus:   eventBus,
	}
}

// Quantity stays raw so absence, null and non-integer values can be told
// apart and reported as distinct validation failures.
type addItemRequest struct {
	ItemID   *string         `json:"item_id"`
	Name     *string         `json:"name"`
	Quantity json.RawMessage `json:"quantity"`
	Location *string         `json:"location"`
	Category *string         `json:"category"`
}

type updateStockRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

// List handles GET /inventory
// @Summary      List all inventory items
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  InventoryListResponse
// @Router       /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.repository.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list inventory", zap.Error(err))
		respondError(c, errors.NewInternalError())
		return
	}

	c.JSON(http.StatusOK, InventoryListResponse{
		Count:     len(items),
		Inventory: items,
	})
}

// Add handles POST /inventory
// @Summary      Add a new inventory item
// @Description  Adds an item keyed by the caller-supplied item_id. Quantity must be integer-parseable and non-negative; the two failure modes are reported separately. Location defaults to "Warehouse", category to "General".
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      addItemRequest  true  "Item creation request"
// @Success      201      {object}  InventoryItemResponse  "Item added"
// @Failure      400      {object}  ErrorResponse  "Required fields missing or invalid quantity"
// @Failure      409      {object}  ErrorResponse  "Duplicate item_id"
// @Router       /inventory [post]
func (h *InventoryHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewMissingFieldsError(inventoryRequiredFields))
		return
	}
	if req.ItemID == nil || req.Name == nil || req.Quantity == nil {
		respondError(c, errors.NewMissingFieldsError(inventoryRequiredFields))
		return
	}

	// Duplicate keys are reported before quantity validation
	if _, err := h.repository.FindByID(c.Request.Context(), *req.ItemID); err == nil {
		respondError(c, errors.NewConflictError("Item already exists"))
		return
	}

	quantity, apiErr := parseQuantity(req.Quantity)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	if quantity < 0 {
		respondError(c, errors.NewValidationError("Quantity must be non-negative"))
		return
	}

	location := domain.DefaultItemLocation
	if req.Location != nil {
		location = *req.Location
	}
	category := domain.DefaultItemCategory
	if req.Category != nil {
		category = *req.Category
	}

	item := domain.NewInventoryItem(*req.ItemID, *req.Name, quantity, location, category)

	if err := h.repository.Create(c.Request.Context(), item); err != nil {
		respondError(c, errors.NewConflictError("Item already exists"))
		return
	}

	event := events.InventoryItemAddedEvent{
		ItemID:     item.ItemID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Location:   item.Location,
		Category:   item.Category,
		OccurredAt: item.LastUpdated,
	}
	if err := h.eventBus.Publish(c.Request.Context(), event); err != nil {
		h.logger.Error("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Inventory item added",
		zap.String("item_id", item.ItemID),
		zap.Int("quantity", item.Quantity),
	)
	c.JSON(http.StatusCreated, InventoryItemResponse{
		Message: "Inventory item added successfully",
		Item:    item,
	})
}

// Get handles GET /inventory/:id
// @Summary      Get a specific inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  domain.InventoryItem
// @Failure      404  {object}  ErrorResponse  "Item not found"
// @Router       /inventory/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.repository.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, errors.NewNotFoundError("Item not found"))
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateStock handles PUT /inventory/:id/stock
// @Summary      Update inventory stock quantity
// @Description  Overwrites the item's quantity and refreshes its last_updated timestamp. Quantity validation happens before any state mutation.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Item ID"
// @Param        request  body      updateStockRequest  true  "Stock update request"
// @Success      200      {object}  InventoryItemResponse  "Stock updated"
// @Failure      400      {object}  ErrorResponse  "quantity missing or invalid"
// @Failure      404      {object}  ErrorResponse  "Item not found"
// @Router       /inventory/{id}/stock [put]
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	item, err := h.repository.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, errors.NewNotFoundError("Item not found"))
		return
	}

	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		respondError(c, errors.NewValidationError("Quantity is required"))
		return
	}

	quantity, apiErr := parseQuantity(req.Quantity)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	if quantity < 0 {
		respondError(c, errors.NewValidationError("Quantity must be non-negative"))
		return
	}

	item.SetQuantity(quantity)

	if err := h.repository.Update(c.Request.Context(), item); err != nil {
		respondError(c, errors.NewNotFoundError("Item not found"))
		return
	}

	event := events.StockUpdatedEvent{
		ItemID:     item.ItemID,
		Quantity:   item.Quantity,
		OccurredAt: item.LastUpdated,
	}
	if err := h.eventBus.Publish(c.Request.Context(), event); err != nil {
		h.logger.Error("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Stock updated",
		zap.String("item_id", item.ItemID),
		zap.Int("quantity", item.Quantity),
	)
	c.JSON(http.StatusOK, InventoryItemResponse{
		Message: "Stock updated successfully",
		Item:    item,
	})
}

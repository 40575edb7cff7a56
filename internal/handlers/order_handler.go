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

// OrderHandler serves the order endpoints
type OrderHandler struct {
	logger     *zap.Logger
	repository repository.OrderRepository
	eventBus   events.EventPublisher
}

func NewOrderHandler(logger *zap.Logger, repo repository.OrderRepository, eventBus events.EventPublisher) *OrderHandler {
	return &OrderHandler{
		logger:     logger,
		repository: repo,
		eventBus:   eventBus,
	}
}

type createOrderRequest struct {
	OrderID  *string  `json:"order_id"`
	Customer *string  `json:"customer"`
	Items    []string `json:"items"`
}

// Create handles POST /order
// @Summary      Create a new order
// @Description  Creates an order keyed by the caller-supplied order_id. Customer defaults to "Unknown" and items to an empty list. Orders are immutable once created.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      createOrderRequest  true  "Order creation request"
// @Success      201      {object}  OrderResponse       "Order created"
// @Failure      400      {object}  ErrorResponse       "order_id missing"
// @Failure      409      {object}  ErrorResponse       "Duplicate order_id"
// @Router       /order [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == nil {
		respondError(c, errors.NewValidationError("Invalid order data - order_id is required"))
		return
	}

	customer := domain.DefaultCustomer
	if req.Customer != nil {
		customer = *req.Customer
	}

	order := domain.NewOrder(*req.OrderID, customer, req.Items)

	if err := h.repository.Create(c.Request.Context(), order); err != nil {
		respondError(c, errors.NewConflictError("Order already exists"))
		return
	}

	event := events.OrderCreatedEvent{
		OrderID:    order.OrderID,
		Customer:   order.Customer,
		Items:      order.Items,
		OccurredAt: order.CreatedAt,
	}
	if err := h.eventBus.Publish(c.Request.Context(), event); err != nil {
		h.logger.Error("Failed to publish event", zap.Error(err))
	}

	h.logger.Info("Order created", zap.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, OrderResponse{
		Message: "Order created successfully",
		Order:   order,
	})
}

// Get handles GET /order/:id
// @Summary      Get order details
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  ErrorResponse  "Order not found"
// @Router       /order/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.repository.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, errors.NewNotFoundError("Order not found"))
		return
	}

	c.JSON(http.StatusOK, order)
}

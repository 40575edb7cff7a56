package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics-service/internal/domain"
	"logistics-service/internal/events"
	"logistics-service/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockEventPublisher is a mock implementation of events.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event interface{}) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func setupOrderRouter(handler *OrderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/order", handler.Create)
	router.GET("/order/:id", handler.Get)

	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("PUT", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_Success(t *testing.T) {
	mockEventBus := new(MockEventPublisher)
	handler := NewOrderHandler(zap.NewNop(), repository.NewOrderRepository(), mockEventBus)
	router := setupOrderRouter(handler)

	mockEventBus.On("Publish", mock.Anything, mock.AnythingOfType("events.OrderCreatedEvent")).Return(nil)

	w := postJSON(router, "/order", map[string]interface{}{
		"order_id": "ORD-001",
		"customer": "John Doe",
		"items":    []string{"item1", "item2"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response OrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Order created successfully", response.Message)
	assert.Equal(t, "ORD-001", response.Order.OrderID)
	assert.Equal(t, "John Doe", response.Order.Customer)
	assert.Equal(t, []string{"item1", "item2"}, response.Order.Items)
	assert.Equal(t, "created", response.Order.Status)
	mockEventBus.AssertExpectations(t)
}

func TestCreateOrder_AppliesDefaults(t *testing.T) {
	handler := NewOrderHandler(zap.NewNop(), repository.NewOrderRepository(), events.NewInMemoryEventPublisher(nil))
	router := setupOrderRouter(handler)

	w := postJSON(router, "/order", map[string]interface{}{"order_id": "ORD-002"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response OrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, domain.DefaultCustomer, response.Order.Customer)
	assert.NotNil(t, response.Order.Items)
	assert.Empty(t, response.Order.Items)

	// items must serialize as [], not null
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestCreateOrder_MissingID(t *testing.T) {
	handler := NewOrderHandler(zap.NewNop(), repository.NewOrderRepository(), events.NewInMemoryEventPublisher(nil))
	router := setupOrderRouter(handler)

	w := postJSON(router, "/order", map[string]interface{}{"customer": "John"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid order data - order_id is required", response["error"])
}

func TestCreateOrder_Duplicate(t *testing.T) {
	handler := NewOrderHandler(zap.NewNop(), repository.NewOrderRepository(), events.NewInMemoryEventPublisher(nil))
	router := setupOrderRouter(handler)

	first := postJSON(router, "/order", map[string]interface{}{"order_id": "ORD-001", "customer": "John Doe"})
	assert.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(router, "/order", map[string]interface{}{"order_id": "ORD-001", "customer": "Jane Doe"})
	assert.Equal(t, http.StatusConflict, second.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(second.Body.Bytes(), &response))
	assert.Equal(t, "Order already exists", response["error"])

	// The stored record keeps the first call's data
	w := get(router, "/order/ORD-001")
	assert.Equal(t, http.StatusOK, w.Code)
	var order domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "John Doe", order.Customer)
}

func TestGetOrder_RoundTrip(t *testing.T) {
	handler := NewOrderHandler(zap.NewNop(), repository.NewOrderRepository(), events.NewInMemoryEventPublisher(nil))
	router := setupOrderRouter(handler)

	postJSON(router, "/order", map[string]interface{}{"order_id": "ORD-001", "customer": "John Doe"})

	w := get(router, "/order/ORD-001")
	assert.Equal(t, http.StatusOK, w.Code)

	var order domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "ORD-001", order.OrderID)
	assert.Equal(t, "created", order.Status)

	// Timestamps are naive UTC, no timezone suffix
	_, err := time.Parse(domain.TimestampLayout, order.CreatedAt)
	assert.NoError(t, err)
	assert.NotContains(t, order.CreatedAt, "Z")
}

func TestGetOrder_NotFound(t *testing.T) {
	handler := NewOrderHandler(zap.NewNop(), repository.NewOrderRepository(), events.NewInMemoryEventPublisher(nil))
	router := setupOrderRouter(handler)

	w := get(router, "/order/UNKNOWN")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Order not found", response["error"])
}

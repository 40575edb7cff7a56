package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupRouteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/route/optimize", NewRouteHandler(zap.NewNop()).Optimize)

	return router
}

func TestOptimizeRoute_Success(t *testing.T) {
	router := setupRouteRouter()

	w := postJSON(router, "/route/optimize", map[string]interface{}{
		"start":     "New York",
		"waypoints": []string{"Chicago", "Denver"},
		"end":       "Los Angeles",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response RouteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Route optimized successfully", response.Message)
	assert.Equal(t, 3, response.Route.TotalStops)
	assert.Equal(t, 90, response.Route.EstimatedTimeMinutes)
	assert.True(t, response.Route.Optimized)
	assert.Equal(t, "optimal", response.Route.RouteEfficiency)
	assert.Equal(t, json.RawMessage(`"New York"`), response.Route.Start)
}

func TestOptimizeRoute_MissingFields(t *testing.T) {
	router := setupRouteRouter()

	w := postJSON(router, "/route/optimize", map[string]interface{}{"start": "New York"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Missing required fields", response.Error)
	assert.Equal(t, []string{"start", "waypoints", "end"}, response.Required)
}

func TestOptimizeRoute_WaypointsNotAList(t *testing.T) {
	router := setupRouteRouter()

	w := postJSON(router, "/route/optimize", map[string]interface{}{
		"start":     "New York",
		"waypoints": "Chicago",
		"end":       "Los Angeles",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Waypoints must be a list")
}

func TestOptimizeRoute_NoWaypoints(t *testing.T) {
	router := setupRouteRouter()

	w := postJSON(router, "/route/optimize", map[string]interface{}{
		"start":     "A",
		"waypoints": []string{},
		"end":       "B",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response RouteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Route.TotalStops)
	assert.Equal(t, 30, response.Route.EstimatedTimeMinutes)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"logistics-service/internal/domain"
	"logistics-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var routeRequiredFields = []string{"start", "waypoints", "end"}

// RouteHandler serves the route optimization endpoint. The optimizer is a
// deterministic stub with no state, so the handler holds only a logger.
type RouteHandler struct {
	logger *zap.Logger
}

func NewRouteHandler(logger *zap.Logger) *RouteHandler {
	return &RouteHandler{logger: logger}
}

// Start and end are echoed back verbatim, so they stay raw JSON. Waypoints
// stays raw so a non-list value can be reported distinctly.
type optimizeRouteRequest struct {
	Start     json.RawMessage `json:"start"`
	Waypoints json.RawMessage `json:"waypoints"`
	End       json.RawMessage `json:"end"`
}

// Optimize handles POST /route/optimize
// @Summary      Calculate an optimized route
// @Description  Stub optimizer: total_stops is the waypoint count plus the end stop, at a flat 30 minutes per stop. Deterministic for a given input.
// @Tags         routes
// @Accept       json
// @Produce      json
// @Param        request  body      optimizeRouteRequest  true  "Route optimization request"
// @Success      200      {object}  RouteResponse  "Route optimized"
// @Failure      400      {object}  ErrorResponse  "Required fields missing or waypoints not a list"
// @Router       /route/optimize [post]
func (h *RouteHandler) Optimize(c *gin.Context) {
	var req optimizeRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewMissingFieldsError(routeRequiredFields))
		return
	}
	if req.Start == nil || req.Waypoints == nil || req.End == nil {
		respondError(c, errors.NewMissingFieldsError(routeRequiredFields))
		return
	}

	route, err := domain.OptimizeRoute(req.Start, req.Waypoints, req.End)
	if err != nil {
		respondError(c, errors.NewValidationError(err.Error()))
		return
	}

	h.logger.Info("Route optimized",
		zap.Int("total_stops", route.TotalStops),
		zap.Int("estimated_time_minutes", route.EstimatedTimeMinutes),
	)
	c.JSON(http.StatusOK, RouteResponse{
		Message: "Route optimized successfully",
		Route:   route,
	})
}

package handlers

import (
	_ "embed"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed dashboard.html
var dashboardHTML []byte

var serviceInfo = ServiceInfoResponse{
	Service: "Logistics Service",
	Status:  "Running",
	Version: "2.0",
	Features: []string{
		"Shipment Tracking",
		"Inventory Management",
		"Route Optimization",
		"Order Management",
	},
}

// ServiceHandler serves the dashboard, service info and health endpoints
type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

// Home handles GET /
// @Summary      Dashboard
// @Description  Serves the dashboard page to browsers; API clients that do not accept HTML get the service-info JSON instead.
// @Tags         service
// @Produce      html,json
// @Success      200  {object}  ServiceInfoResponse
// @Router       / [get]
func (h *ServiceHandler) Home(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Data(http.StatusOK, "text/html; charset=utf-8", dashboardHTML)
		return
	}
	c.JSON(http.StatusOK, serviceInfo)
}

// Info handles GET /api
// @Summary      Service information
// @Tags         service
// @Produce      json
// @Success      200  {object}  ServiceInfoResponse
// @Router       /api [get]
func (h *ServiceHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, serviceInfo)
}

// Health handles GET /health
// @Summary      Health check endpoint for container orchestration
// @Tags         service
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *ServiceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

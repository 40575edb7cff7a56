package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupServiceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.NoRoute(middleware.NotFoundHandler())

	handler := NewServiceHandler()
	router.GET("/", handler.Home)
	router.GET("/api", handler.Info)
	router.GET("/health", handler.Health)

	return router
}

func TestServiceInfo(t *testing.T) {
	router := setupServiceRouter()

	w := get(router, "/api")
	assert.Equal(t, http.StatusOK, w.Code)

	var response ServiceInfoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Logistics Service", response.Service)
	assert.Equal(t, "Running", response.Status)
	assert.Equal(t, "2.0", response.Version)
	assert.NotEmpty(t, response.Features)
}

func TestHealth(t *testing.T) {
	router := setupServiceRouter()

	w := get(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "UP", response["status"])
}

func TestHome_JSONForAPIClients(t *testing.T) {
	router := setupServiceRouter()

	w := get(router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var response ServiceInfoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Logistics Service", response.Service)
}

func TestHome_DashboardForBrowsers(t *testing.T) {
	router := setupServiceRouter()

	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Logistics Service")
}

func TestUnmatchedRoute(t *testing.T) {
	router := setupServiceRouter()

	w := get(router, "/does-not-exist")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Resource not found", response["error"])
}

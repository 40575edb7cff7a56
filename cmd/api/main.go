package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics-service/internal/config"
	"logistics-service/internal/events"
	"logistics-service/internal/handlers"
	"logistics-service/internal/repository"
	"logistics-service/pkg/logger"
	"logistics-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "logistics-service/docs" // Import docs for Swagger
)

// @title           Logistics Service API
// @version         2.0
// @description     Demonstration logistics API exposing order, shipment, inventory and route-optimization resources over HTTP. State is process-local and cleared on restart.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /

// @schemes   http
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting Logistics Service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	appLogger.Info("📡 Kafka Configuration",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic_orders", cfg.KafkaTopicOrders),
		zap.String("topic_shipments", cfg.KafkaTopicShipments),
		zap.String("topic_inventory", cfg.KafkaTopicInventory),
		zap.String("client_id", cfg.KafkaClientID),
		zap.String("acks", cfg.KafkaAcks),
		zap.Int("retries", cfg.KafkaRetries),
	)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())

	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))

	// Unmatched routes get the same structured 404 as missing resources
	router.NoRoute(middleware.NotFoundHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize event publisher; fall back to the in-memory publisher when
	// no broker is reachable so the API stays usable on its own.
	var eventBus events.EventPublisher
	kafkaPublisher, err := events.NewKafkaEventPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Failed to initialize Kafka publisher, using in-memory fallback", zap.Error(err))
		eventBus = events.NewInMemoryEventPublisher(appLogger)
	} else {
		eventBus = kafkaPublisher
		defer kafkaPublisher.Close()
	}

	// Initialize stores; state lives for the process lifetime only
	orderRepo := repository.NewOrderRepository()
	shipmentRepo := repository.NewShipmentRepository()
	inventoryRepo := repository.NewInventoryRepository()

	// Initialize handlers
	appLogger.Info("🔧 Initializing handlers...")
	serviceHandler := handlers.NewServiceHandler()
	orderHandler := handlers.NewOrderHandler(appLogger, orderRepo, eventBus)
	shipmentHandler := handlers.NewShipmentHandler(appLogger, shipmentRepo, eventBus)
	inventoryHandler := handlers.NewInventoryHandler(appLogger, inventoryRepo, eventBus)
	routeHandler := handlers.NewRouteHandler(appLogger)
	appLogger.Info("✅ Handlers initialized successfully")

	// Routes
	router.GET("/", serviceHandler.Home)
	router.GET("/api", serviceHandler.Info)
	router.GET("/health", serviceHandler.Health)

	router.POST("/order", orderHandler.Create)
	router.GET("/order/:id", orderHandler.Get)

	router.POST("/shipment", shipmentHandler.Create)
	router.GET("/shipment/:id", shipmentHandler.Get)
	router.PUT("/shipment/:id/location", shipmentHandler.UpdateLocation)
	router.GET("/shipments", shipmentHandler.List)

	router.GET("/inventory", inventoryHandler.List)
	router.POST("/inventory", inventoryHandler.Add)
	router.GET("/inventory/:id", inventoryHandler.Get)
	router.PUT("/inventory/:id/stock", inventoryHandler.UpdateStock)

	router.POST("/route/optimize", routeHandler.Optimize)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("Starting logistics service",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

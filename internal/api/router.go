package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/api/handlers"
	"github.com/argentostore/storefront/internal/api/middleware"
	"github.com/argentostore/storefront/internal/config"
	"github.com/argentostore/storefront/internal/metrics"
	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/service"
)

// Services bundles the service layer the router dispatches into.
type Services struct {
	Orders  *service.OrderService
	Catalog *service.CatalogService
	Export  *service.ExportService
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svc Services, geo *registry.Geo, m *metrics.Registry, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Public landing-page API
	api := router.Group("/api")
	{
		api.GET("/products/:id", handlers.HandleGetProduct(svc.Catalog, logger))
		api.POST("/orders", handlers.HandleCreateOrder(svc.Orders, logger))
		api.POST("/commission/preview", handlers.HandleCommissionPreview(svc.Orders, logger))
		api.GET("/cities-areas", handlers.HandleCitiesAreas(geo))
	}

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKeyHash, logger))
	{
		admin.GET("/orders", handlers.HandleListOrders(svc.Orders, logger))
		admin.GET("/orders/:id", handlers.HandleGetOrder(svc.Orders, logger))
		admin.POST("/orders/:id/status", handlers.HandleUpdateOrderStatus(svc.Orders, logger))
		admin.GET("/export/speedaf", handlers.HandleExportSpeedaf(svc.Export, logger))
		admin.POST("/catalog/sync", handlers.HandleSyncCatalog(svc.Catalog, logger))
		admin.GET("/sync-status", handlers.HandleSyncStatus(svc.Catalog, logger))
		admin.GET("/dashboard-stats", handlers.HandleDashboardStats(svc.Orders, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/service"
	apperrors "github.com/argentostore/storefront/pkg/errors"
)

// HandleListOrders handles GET /api/admin/orders?status=pending
func HandleListOrders(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var statuses []domain.OrderStatus
		if raw := c.Query("status"); raw != "" {
			status := domain.OrderStatus(raw)
			if !status.IsValid() {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown status " + raw})
				return
			}
			statuses = append(statuses, status)
		}

		list, err := orders.ListOrders(statuses...)
		if err != nil {
			logger.Error("Failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(list),
			"orders":  list,
		})
	}
}

// HandleGetOrder handles GET /api/admin/orders/:id
func HandleGetOrder(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.GetOrder(c.Param("id"))
		if err != nil {
			var notFound *apperrors.ErrNotFound
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "order not found"})
				return
			}
			logger.Error("Failed to get order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note,omitempty"`
}

// HandleUpdateOrderStatus handles POST /api/admin/orders/:id/status
func HandleUpdateOrderStatus(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "validation failed", "details": err.Error()})
			return
		}

		order, err := orders.UpdateStatus(c.Param("id"), domain.OrderStatus(req.Status), req.Note)
		if err != nil {
			var notFound *apperrors.ErrNotFound
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "order not found"})
				return
			}
			var badTransition *apperrors.ErrInvalidStateTransition
			if errors.As(err, &badTransition) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
				return
			}
			var invalid *apperrors.ErrValidation
			if errors.As(err, &invalid) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			logger.Error("Failed to update order status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// HandleExportSpeedaf handles GET /api/admin/export/speedaf. Optional
// ?status= narrows the batch; the default covers pending, confirmed, and
// processing orders.
func HandleExportSpeedaf(export *service.ExportService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var statuses []domain.OrderStatus
		if raw := c.Query("status"); raw != "" {
			status := domain.OrderStatus(raw)
			if !status.IsValid() {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown status " + raw})
				return
			}
			statuses = append(statuses, status)
		}

		result, err := export.Generate(statuses...)
		if err != nil {
			logger.Error("Failed to generate Speedaf export", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"row_count": result.RowCount,
			"skipped":   result.Skipped,
			"content":   result.Content,
		})
	}
}

// HandleSyncCatalog handles POST /api/admin/catalog/sync
func HandleSyncCatalog(catalog *service.CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := catalog.Sync(c.Request.Context())
		if err != nil {
			logger.Error("Catalog sync failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error(), "result": result})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
	}
}

// HandleSyncStatus handles GET /api/admin/sync-status
func HandleSyncStatus(catalog *service.CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta, err := catalog.SyncStatus()
		if err != nil {
			logger.Error("Failed to read sync status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "metadata": meta})
	}
}

// HandleDashboardStats handles GET /api/admin/dashboard-stats
func HandleDashboardStats(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := orders.Stats()
		if err != nil {
			logger.Error("Failed to compute dashboard stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	}
}

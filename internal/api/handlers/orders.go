package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/service"
	apperrors "github.com/argentostore/storefront/pkg/errors"
)

// HandleCreateOrder handles POST /api/orders: the landing-page submission.
// A submission that fails validation still returns the constructed order id
// with valid=false; only resolvable problems (unknown product, bad quantity)
// are reported as errors.
func HandleCreateOrder(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.OrderSubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		order, err := orders.CreateOrder(req)
		if err != nil {
			var notFound *apperrors.ErrNotFound
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
				return
			}
			var invalid *apperrors.ErrValidation
			if errors.As(err, &invalid) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			logger.Error("Failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  order.Valid,
			"order_id": order.OrderID,
			"valid":    order.Valid,
			"total":    order.Total,
		})
	}
}

// HandleCommissionPreview handles POST /api/commission/preview: a quote shown
// before the order is confirmed.
func HandleCommissionPreview(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CommissionPreviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		result, err := orders.PreviewCommission(req)
		if err != nil {
			var notFound *apperrors.ErrNotFound
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
				return
			}
			logger.Error("Failed to preview commission", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"commission": result,
		})
	}
}

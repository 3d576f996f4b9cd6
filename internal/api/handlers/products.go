package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/service"
	apperrors "github.com/argentostore/storefront/pkg/errors"
)

// HandleGetProduct handles GET /api/products/:id
func HandleGetProduct(catalog *service.CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")

		product, err := catalog.GetProduct(key)
		if err != nil {
			var notFound *apperrors.ErrNotFound
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"success": false,
					"error":   "product not found",
					"id":      key,
				})
				return
			}
			logger.Error("Failed to get product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"product": product,
		})
	}
}

// HandleCitiesAreas handles GET /api/cities-areas: the translation tables the
// landing-page pickers are built from.
func HandleCitiesAreas(geo *registry.Geo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"cities":  geo.Cities(),
			"areas":   geo.Areas(),
		})
	}
}

// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/aurelius-time/storefront/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles product browsing endpoints
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetProducts handles GET /products with optional search/filter/sort params
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var req catalog.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products := h.catalog.Search(req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id (id or slug)
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.GetProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetProductBySlug handles GET /products/slug/:slug
func (h *CatalogHandler) GetProductBySlug(c *gin.Context) {
	product, ok := h.catalog.GetProduct(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetFeatured handles GET /products/featured
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Featured products retrieved successfully",
		"data": gin.H{
			"featured":     h.catalog.Featured(),
			"bestsellers":  h.catalog.Bestsellers(),
			"new_arrivals": h.catalog.NewArrivals(),
		},
	})
}

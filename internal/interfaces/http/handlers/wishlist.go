// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/aurelius-time/storefront/internal/domain/cart"
	"github.com/aurelius-time/storefront/internal/domain/wishlist"
	"github.com/gin-gonic/gin"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlist *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(w *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlist: w}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"products": h.wishlist.Products(),
			"count":    h.wishlist.Count(),
		},
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.wishlist.Add(req.ProductID); err != nil {
		h.wishlistError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to wishlist successfully",
		"data": gin.H{
			"count": h.wishlist.Count(),
		},
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	h.wishlist.Remove(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from wishlist successfully",
		"data": gin.H{
			"count": h.wishlist.Count(),
		},
	})
}

// ToggleWishlist handles POST /wishlist/toggle/:id
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	added, err := h.wishlist.Toggle(c.Param("id"))
	if err != nil {
		h.wishlistError(c, err)
		return
	}

	message := "Product removed from wishlist"
	if added {
		message = "Product added to wishlist"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"added": added,
			"count": h.wishlist.Count(),
		},
	})
}

func (h *WishlistHandler) wishlistError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, cart.ErrProductNotFound) {
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

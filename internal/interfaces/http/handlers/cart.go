// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/aurelius-time/storefront/internal/domain/cart"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cart *cart.Cart
}

// NewCartHandler creates a new cart handler
func NewCartHandler(c *cart.Cart) *CartHandler {
	return &CartHandler{cart: c}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string            `json:"product_id" binding:"required"`
	Quantity  int               `json:"quantity"`
	Variant   map[string]string `json:"variant"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ApplyCouponRequest represents coupon application request
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartState(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Quantity is optional and defaults to one unit
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if _, err := h.cart.AddItem(req.ProductID, req.Quantity, req.Variant); err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartState(),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.cart.UpdateQuantity(c.Param("id"), *req.Quantity); err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartState(),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	if err := h.cart.RemoveItem(c.Param("id")); err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartState(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    h.cartState(),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.cart.ItemCount(),
		},
	})
}

// ApplyCoupon handles POST /cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	applied, err := h.cart.ApplyCoupon(req.Code)
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon applied successfully",
		"data": gin.H{
			"coupon": applied,
			"totals": h.cart.Totals(),
		},
	})
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	h.cart.RemoveCoupon()

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon removed successfully",
		"data":    h.cartState(),
	})
}

// cartState assembles the full cart view the UI re-renders from
func (h *CartHandler) cartState() gin.H {
	state := gin.H{
		"items":  h.cart.DetailedItems(),
		"totals": h.cart.Totals(),
	}
	if applied := h.cart.AppliedCoupon(); applied != nil {
		state["coupon"] = applied
	}
	return state
}

// cartError maps cart failures to HTTP responses. Every failure is a
// rejected operation with the cart state unchanged.
func (h *CartHandler) cartError(c *gin.Context, err error) {
	var minSpend *cart.MinimumSpendError
	if errors.As(err, &minSpend) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            err.Error(),
			"required_minimum": minSpend.Required,
			"subtotal":         minSpend.Subtotal,
		})
		return
	}

	status := http.StatusBadRequest
	if errors.Is(err, cart.ErrProductNotFound) || errors.Is(err, cart.ErrItemNotFound) {
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/aurelius-time/storefront/internal/domain/order"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles order placement and order history endpoints
type CheckoutHandler struct {
	orders *order.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(orders *order.Service) *CheckoutHandler {
	return &CheckoutHandler{orders: orders}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req order.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.orders.PlaceOrder(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// GetOrders handles GET /orders
func (h *CheckoutHandler) GetOrders(c *gin.Context) {
	orders := h.orders.Orders()

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// GetOrder handles GET /orders/:id
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	placed, err := h.orders.GetOrder(c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, order.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    placed,
	})
}

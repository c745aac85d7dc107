// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/aurelius-time/storefront/internal/domain/cart"
	"github.com/aurelius-time/storefront/internal/domain/catalog"
	"github.com/aurelius-time/storefront/internal/domain/order"
	"github.com/aurelius-time/storefront/internal/domain/wishlist"
	"github.com/aurelius-time/storefront/internal/interfaces/http/handlers"
	"github.com/gin-gonic/gin"
)

// Services bundles the storefront services the routes are wired to. They are
// constructed once by the composition root and passed down by handle.
type Services struct {
	Catalog  *catalog.Service
	Cart     *cart.Cart
	Wishlist *wishlist.Service
	Orders   *order.Service
}

// SetupRoutes registers all API routes
func SetupRoutes(rg *gin.RouterGroup, svc Services) {
	setupProductRoutes(rg, svc)
	setupCartRoutes(rg, svc)
	setupWishlistRoutes(rg, svc)
	setupCheckoutRoutes(rg, svc)
}

func setupProductRoutes(rg *gin.RouterGroup, svc Services) {
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/featured", catalogHandler.GetFeatured)
		products.GET("/search", catalogHandler.GetProducts)
		products.GET("/slug/:slug", catalogHandler.GetProductBySlug)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, svc Services) {
	cartHandler := handlers.NewCartHandler(svc.Cart)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.POST("/coupon", cartHandler.ApplyCoupon)
		cartGroup.DELETE("/coupon", cartHandler.RemoveCoupon)
	}
}

func setupWishlistRoutes(rg *gin.RouterGroup, svc Services) {
	wishlistHandler := handlers.NewWishlistHandler(svc.Wishlist)

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", wishlistHandler.AddToWishlist)
		wishlistGroup.DELETE("/items/:id", wishlistHandler.RemoveFromWishlist)
		wishlistGroup.POST("/toggle/:id", wishlistHandler.ToggleWishlist)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, svc Services) {
	checkoutHandler := handlers.NewCheckoutHandler(svc.Orders)

	rg.POST("/checkout", checkoutHandler.Checkout)

	orders := rg.Group("/orders")
	{
		orders.GET("", checkoutHandler.GetOrders)
		orders.GET("/:id", checkoutHandler.GetOrder)
	}
}

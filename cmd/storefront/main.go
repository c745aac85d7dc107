// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aurelius-time/storefront/internal/config"
	"github.com/aurelius-time/storefront/internal/domain/cart"
	"github.com/aurelius-time/storefront/internal/domain/catalog"
	"github.com/aurelius-time/storefront/internal/domain/coupon"
	"github.com/aurelius-time/storefront/internal/domain/order"
	"github.com/aurelius-time/storefront/internal/domain/wishlist"
	"github.com/aurelius-time/storefront/internal/infrastructure/storage"
	"github.com/aurelius-time/storefront/internal/interfaces/http"
	"github.com/aurelius-time/storefront/internal/interfaces/http/routes"
	"github.com/aurelius-time/storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	appLogger := logger.New(cfg)

	// Load the static catalog and coupon data
	catalogService, err := catalog.NewService(cfg.Catalog.ProductsPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	couponService, err := coupon.NewService(cfg.Catalog.CouponsPath)
	if err != nil {
		log.Fatalf("Failed to load coupons: %v", err)
	}

	log.Printf("Catalog loaded: %d products", catalogService.Count())

	// Open the persistence store
	store, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// The cart instance is owned here and passed down by handle; nothing
	// reaches for it through ambient globals.
	cartService := cart.New(catalogService, couponService, cfg.Pricing(), store, appLogger)
	wishlistService := wishlist.NewService(catalogService, store, appLogger)
	orderService := order.NewService(cartService, store, appLogger)

	// Create and start HTTP server
	server := http.NewServer(cfg, appLogger, store, routes.Services{
		Catalog:  catalogService,
		Cart:     cartService,
		Wishlist: wishlistService,
		Orders:   orderService,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("Server shutdown completed")
}

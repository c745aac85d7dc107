// internal/domain/order/service.go
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aurelius-time/storefront/internal/domain/cart"
	"github.com/aurelius-time/storefront/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const storageKey = "storefront:orders"

// Order placement failures; all recoverable, reported back to the caller.
var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCOD  = "cod"
	PaymentMethodCard = "card"
	PaymentMethodBank = "bank"
)

// Service places orders from the cart and keeps the order history
type Service struct {
	mu     sync.Mutex
	orders []Order
	cart   *cart.Cart
	store  storage.Store
	logger *logrus.Logger
}

// NewService creates the order service, rehydrating the persisted history
func NewService(c *cart.Cart, store storage.Store, logger *logrus.Logger) *Service {
	s := &Service{
		cart:   c,
		store:  store,
		logger: logger,
	}
	s.load()
	return s
}

// CheckoutRequest represents the checkout form
type CheckoutRequest struct {
	Customer      Customer     `json:"customer" binding:"required"`
	Shipping      ShippingInfo `json:"shipping" binding:"required"`
	PaymentMethod string       `json:"payment_method" binding:"required,oneof=cod card bank"`
}

// PlaceOrder snapshots the cart into a pending order, appends it to the
// history, and clears the cart. The cleared cart is the success signal the
// rest of the storefront observes.
func (s *Service) PlaceOrder(req *CheckoutRequest) (*Order, error) {
	items := s.cart.DetailedItems()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.cart.Totals()

	couponCode := ""
	if applied := s.cart.AppliedCoupon(); applied != nil {
		couponCode = applied.Code
	}

	ord := Order{
		ID:       generateOrderID(),
		Customer: req.Customer,
		Shipping: req.Shipping,
		Items:    make([]Item, len(items)),
		Payment: Payment{
			Method:   req.PaymentMethod,
			Subtotal: totals.Subtotal,
			Discount: totals.Discount,
			Tax:      totals.Tax,
			Shipping: totals.Shipping,
			Total:    totals.Total,
		},
		Coupon:    couponCode,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	for i, item := range items {
		ord.Items[i] = Item{
			ProductID: item.ProductID,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			Total:     item.LineTotal,
		}
		if item.Product != nil {
			ord.Items[i].ProductName = item.Product.Name
			ord.Items[i].Price = item.Product.Price
			if len(item.Product.Images) > 0 {
				ord.Items[i].ProductImage = item.Product.Images[0]
			}
		}
	}

	s.mu.Lock()
	s.orders = append(s.orders, ord)
	s.saveLocked()
	s.mu.Unlock()

	s.cart.Clear()

	s.logger.WithFields(logrus.Fields{
		"order_id": ord.ID,
		"total":    ord.Payment.Total,
		"items":    len(ord.Items),
	}).Info("Order placed")

	return &ord, nil
}

// Orders returns the order history, most recent last
func (s *Service) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// GetOrder looks up an order by id
func (s *Service) GetOrder(id string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			ord := s.orders[i]
			return &ord, nil
		}
	}
	return nil, ErrOrderNotFound
}

func generateOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:9])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

func (s *Service) load() {
	data, err := s.store.Get(context.Background(), storageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.WithError(err).Warn("Failed to load persisted order history")
		}
		return
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		s.logger.WithError(err).Warn("Discarding unreadable persisted order history")
		return
	}
	s.orders = orders
}

func (s *Service) saveLocked() {
	data, err := json.Marshal(s.orders)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode order history for persistence")
		return
	}
	if err := s.store.Set(context.Background(), storageKey, data); err != nil {
		s.logger.WithError(err).Warn("Failed to persist order history")
	}
}

// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/aurelius-time/storefront/internal/config"
	"github.com/aurelius-time/storefront/internal/domain/catalog"
	"github.com/aurelius-time/storefront/internal/domain/coupon"
	"github.com/aurelius-time/storefront/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Persisted state layout: one entry for the line items, one for the applied
// coupon code. Both round-trip exactly through the store.
const (
	storageKeyItems  = "storefront:cart"
	storageKeyCoupon = "storefront:coupon"
)

// Catalog is the read-only product lookup the cart depends on
type Catalog interface {
	GetProduct(idOrSlug string) (*catalog.Product, bool)
	Price(productID string) (int64, bool)
}

// CouponLookup resolves coupon codes. The cart stores only the code and
// re-resolves it on every totals computation, so coupon changes are never
// served from a stale cache.
type CouponLookup interface {
	GetCoupon(code string) (*coupon.Coupon, bool)
}

// Cart is the storefront's cart aggregate. It owns the ordered line items and
// the applied coupon code, persists both best-effort on every mutation, and
// notifies subscribers after each change. A single instance is created by the
// composition root and handed to whoever needs it.
type Cart struct {
	mu          sync.Mutex
	items       []LineItem
	couponCode  string
	catalog     Catalog
	coupons     CouponLookup
	settings    config.PricingSettings
	store       storage.Store
	logger      *logrus.Logger
	subscribers []func()
}

// New creates a cart, rehydrating any persisted state. A store that fails to
// load degrades to an empty in-memory cart rather than an error.
func New(cat Catalog, coupons CouponLookup, settings config.PricingSettings, store storage.Store, logger *logrus.Logger) *Cart {
	c := &Cart{
		catalog:  cat,
		coupons:  coupons,
		settings: settings,
		store:    store,
		logger:   logger,
	}
	c.load()
	return c
}

// Subscribe registers a callback fired after every successful mutation, so
// the presentation layer can re-read and re-render.
func (c *Cart) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// AddItem adds quantity units of a product (by id or slug) to the cart. A
// line with the same product and structurally equal variant is merged;
// otherwise a new line is appended. Adding beyond the product's inventory is
// rejected.
func (c *Cart) AddItem(productID string, quantity int, variant map[string]string) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}

	product, ok := c.catalog.GetProduct(productID)
	if !ok {
		return LineItem{}, ErrProductNotFound
	}

	c.mu.Lock()

	key := (&LineItem{ProductID: product.ID, Variant: variant}).MergeKey()
	idx := c.indexOfMergeKeyLocked(key)

	newQuantity := quantity
	if idx >= 0 {
		newQuantity += c.items[idx].Quantity
	}
	if newQuantity > product.Inventory {
		c.mu.Unlock()
		return LineItem{}, ErrInsufficientInventory
	}

	var item LineItem
	if idx >= 0 {
		c.items[idx].Quantity = newQuantity
		item = c.items[idx]
	} else {
		item = LineItem{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  quantity,
			Variant:   copyVariant(variant),
			AddedAt:   time.Now().UTC(),
		}
		c.items = append(c.items, item)
	}

	c.saveItemsLocked()
	c.mu.Unlock()

	c.notify()
	return item, nil
}

// UpdateQuantity sets a line's quantity to an absolute value. A value of zero
// or less removes the line, exactly like RemoveItem.
func (c *Cart) UpdateQuantity(itemID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(itemID)
	}

	c.mu.Lock()

	idx := c.indexOfItemLocked(itemID)
	if idx < 0 {
		c.mu.Unlock()
		return ErrItemNotFound
	}

	// Same inventory policy as AddItem. A product that no longer resolves
	// has nothing to enforce against.
	if product, ok := c.catalog.GetProduct(c.items[idx].ProductID); ok && quantity > product.Inventory {
		c.mu.Unlock()
		return ErrInsufficientInventory
	}

	c.items[idx].Quantity = quantity
	c.saveItemsLocked()
	c.mu.Unlock()

	c.notify()
	return nil
}

// RemoveItem removes a line. Removing an absent id is a no-op, not an error.
func (c *Cart) RemoveItem(itemID string) error {
	c.mu.Lock()

	idx := c.indexOfItemLocked(itemID)
	if idx < 0 {
		c.mu.Unlock()
		return nil
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.saveItemsLocked()
	c.mu.Unlock()

	c.notify()
	return nil
}

// Clear empties the cart and drops the applied coupon. Called directly by the
// user and by order placement on success.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.couponCode = ""
	c.saveItemsLocked()
	c.saveCouponLocked()
	c.mu.Unlock()

	c.notify()
}

// ApplyCoupon validates and applies a coupon code, replacing any previous
// one. A failed application leaves the previously applied coupon untouched.
func (c *Cart) ApplyCoupon(code string) (*coupon.Coupon, error) {
	cpn, ok := c.coupons.GetCoupon(code)
	if !ok {
		return nil, ErrInvalidCoupon
	}

	c.mu.Lock()

	subtotal := ComputeTotals(c.items, c.catalog, c.settings, nil).Subtotal
	if cpn.MinSpend > 0 && subtotal < cpn.MinSpend {
		c.mu.Unlock()
		return nil, &MinimumSpendError{Code: cpn.Code, Required: cpn.MinSpend, Subtotal: subtotal}
	}

	c.couponCode = cpn.Code
	c.saveCouponLocked()
	c.mu.Unlock()

	c.notify()
	return cpn, nil
}

// RemoveCoupon drops the applied coupon. Always succeeds.
func (c *Cart) RemoveCoupon() {
	c.mu.Lock()
	c.couponCode = ""
	c.saveCouponLocked()
	c.mu.Unlock()

	c.notify()
}

// AppliedCoupon resolves the applied coupon code, or nil when none is applied
// or the code no longer resolves.
func (c *Cart) AppliedCoupon() *coupon.Coupon {
	c.mu.Lock()
	code := c.couponCode
	c.mu.Unlock()

	if code == "" {
		return nil
	}
	cpn, ok := c.coupons.GetCoupon(code)
	if !ok {
		return nil
	}
	return cpn
}

// Items returns a snapshot of the line items in display order
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// ItemDetail is a line item joined with its current product record
type ItemDetail struct {
	LineItem
	Product   *catalog.Product `json:"product,omitempty"`
	LineTotal int64            `json:"line_total"`
}

// DetailedItems returns the line items with product records and line totals
// resolved against the current catalog. Lines whose product is gone keep a
// nil product and a zero line total.
func (c *Cart) DetailedItems() []ItemDetail {
	items := c.Items()

	details := make([]ItemDetail, len(items))
	for i, item := range items {
		details[i] = ItemDetail{LineItem: item}
		if product, ok := c.catalog.GetProduct(item.ProductID); ok {
			details[i].Product = product
			details[i].LineTotal = product.Price * int64(item.Quantity)
		}
	}
	return details
}

// ItemCount returns the sum of quantities across all lines (the badge count)
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}

// Totals recomputes the derived pricing view from the current state
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	items := c.snapshotLocked()
	code := c.couponCode
	c.mu.Unlock()

	var applied *coupon.Coupon
	if code != "" {
		if cpn, ok := c.coupons.GetCoupon(code); ok {
			applied = cpn
		}
	}

	return ComputeTotals(items, c.catalog, c.settings, applied)
}

// Private helpers

func (c *Cart) indexOfMergeKeyLocked(key string) int {
	for i := range c.items {
		if c.items[i].MergeKey() == key {
			return i
		}
	}
	return -1
}

func (c *Cart) indexOfItemLocked(itemID string) int {
	for i := range c.items {
		if c.items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func (c *Cart) snapshotLocked() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	for i := range items {
		items[i].Variant = copyVariant(items[i].Variant)
	}
	return items
}

// load rehydrates persisted state. Failures degrade to an empty cart.
func (c *Cart) load() {
	ctx := context.Background()

	if data, err := c.store.Get(ctx, storageKeyItems); err == nil {
		var items []LineItem
		if err := json.Unmarshal(data, &items); err != nil {
			c.logger.WithError(err).Warn("Discarding unreadable persisted cart")
		} else {
			c.items = items
		}
	} else if err != storage.ErrNotFound {
		c.logger.WithError(err).Warn("Failed to load persisted cart")
	}

	if data, err := c.store.Get(ctx, storageKeyCoupon); err == nil {
		c.couponCode = strings.TrimSpace(string(data))
	} else if err != storage.ErrNotFound {
		c.logger.WithError(err).Warn("Failed to load persisted coupon")
	}
}

// saveItemsLocked persists the line items. Persistence is best-effort: a
// failed write is logged and the session continues in memory.
func (c *Cart) saveItemsLocked() {
	data, err := json.Marshal(c.items)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to encode cart for persistence")
		return
	}
	if err := c.store.Set(context.Background(), storageKeyItems, data); err != nil {
		c.logger.WithError(err).Warn("Failed to persist cart")
	}
}

func (c *Cart) saveCouponLocked() {
	ctx := context.Background()

	var err error
	if c.couponCode == "" {
		err = c.store.Delete(ctx, storageKeyCoupon)
	} else {
		err = c.store.Set(ctx, storageKeyCoupon, []byte(c.couponCode))
	}
	if err != nil {
		c.logger.WithError(err).Warn("Failed to persist applied coupon")
	}
}

func (c *Cart) notify() {
	c.mu.Lock()
	subscribers := make([]func(), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}

func copyVariant(variant map[string]string) map[string]string {
	if variant == nil {
		return nil
	}
	out := make(map[string]string, len(variant))
	for k, v := range variant {
		out[k] = v
	}
	return out
}

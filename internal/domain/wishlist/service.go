// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aurelius-time/storefront/internal/domain/cart"
	"github.com/aurelius-time/storefront/internal/domain/catalog"
	"github.com/aurelius-time/storefront/internal/infrastructure/storage"
	"github.com/sirupsen/logrus"
)

const storageKey = "storefront:wishlist"

// Service owns the wishlist: an ordered set of product ids persisted through
// the same best-effort store as the cart.
type Service struct {
	mu         sync.Mutex
	productIDs []string
	catalog    cart.Catalog
	store      storage.Store
	logger     *logrus.Logger
}

// NewService creates the wishlist, rehydrating any persisted state
func NewService(cat cart.Catalog, store storage.Store, logger *logrus.Logger) *Service {
	s := &Service{
		catalog: cat,
		store:   store,
		logger:  logger,
	}
	s.load()
	return s
}

// Add puts a product on the wishlist. Duplicates are no-ops.
func (s *Service) Add(productID string) error {
	product, ok := s.catalog.GetProduct(productID)
	if !ok {
		return cart.ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfLocked(product.ID) >= 0 {
		return nil
	}
	s.productIDs = append(s.productIDs, product.ID)
	s.saveLocked()
	return nil
}

// Remove takes a product off the wishlist; absent ids are a no-op
func (s *Service) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(productID)
	if idx < 0 {
		return
	}
	s.productIDs = append(s.productIDs[:idx], s.productIDs[idx+1:]...)
	s.saveLocked()
}

// Toggle flips a product's wishlist membership and reports whether it ended
// up added.
func (s *Service) Toggle(productID string) (bool, error) {
	product, ok := s.catalog.GetProduct(productID)
	if !ok {
		return false, cart.ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOfLocked(product.ID); idx >= 0 {
		s.productIDs = append(s.productIDs[:idx], s.productIDs[idx+1:]...)
		s.saveLocked()
		return false, nil
	}

	s.productIDs = append(s.productIDs, product.ID)
	s.saveLocked()
	return true, nil
}

// Contains reports wishlist membership
func (s *Service) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOfLocked(productID) >= 0
}

// ProductIDs returns the wishlist in insertion order
func (s *Service) ProductIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.productIDs))
	copy(ids, s.productIDs)
	return ids
}

// Count returns the number of wishlisted products (the badge count)
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.productIDs)
}

// Products resolves the wishlist against the current catalog, skipping
// products that no longer exist.
func (s *Service) Products() []catalog.Product {
	ids := s.ProductIDs()

	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.catalog.GetProduct(id); ok {
			products = append(products, *p)
		}
	}
	return products
}

func (s *Service) indexOfLocked(productID string) int {
	for i, id := range s.productIDs {
		if id == productID {
			return i
		}
	}
	return -1
}

func (s *Service) load() {
	data, err := s.store.Get(context.Background(), storageKey)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.WithError(err).Warn("Failed to load persisted wishlist")
		}
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		s.logger.WithError(err).Warn("Discarding unreadable persisted wishlist")
		return
	}
	s.productIDs = ids
}

func (s *Service) saveLocked() {
	data, err := json.Marshal(s.productIDs)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode wishlist for persistence")
		return
	}
	if err := s.store.Set(context.Background(), storageKey, data); err != nil {
		s.logger.WithError(err).Warn("Failed to persist wishlist")
	}
}

// internal/domain/catalog/service.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Service serves read-only product lookups over the in-memory catalog
type Service struct {
	products []Product
	byID     map[string]*Product
	bySlug   map[string]*Product
}

// NewService loads the catalog from the seed data file
func NewService(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog data: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}

	return NewServiceFromProducts(products), nil
}

// NewServiceFromProducts builds a catalog from records already in memory
func NewServiceFromProducts(products []Product) *Service {
	s := &Service{
		products: products,
		byID:     make(map[string]*Product, len(products)),
		bySlug:   make(map[string]*Product, len(products)),
	}
	for i := range s.products {
		p := &s.products[i]
		s.byID[p.ID] = p
		s.bySlug[p.Slug] = p
	}
	return s
}

// GetProduct resolves a product by id, falling back to slug
func (s *Service) GetProduct(idOrSlug string) (*Product, bool) {
	if p, ok := s.byID[idOrSlug]; ok {
		return p, true
	}
	p, ok := s.bySlug[idOrSlug]
	return p, ok
}

// Price reports the current price for a product id, for totals computation
func (s *Service) Price(productID string) (int64, bool) {
	p, ok := s.byID[productID]
	if !ok {
		return 0, false
	}
	return p.Price, true
}

// Products returns all catalog records
func (s *Service) Products() []Product {
	return s.products
}

// Count returns the number of catalog records
func (s *Service) Count() int {
	return len(s.products)
}

// SearchRequest represents search and filter parameters
type SearchRequest struct {
	Query      string   `form:"q"`
	Categories []string `form:"category"`
	Brands     []string `form:"brand"`
	MinPrice   int64    `form:"min_price"`
	MaxPrice   int64    `form:"max_price"`
	Sort       string   `form:"sort"`
}

// Sort orders accepted by Search.
const (
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// Search filters and sorts the catalog. The zero request returns every
// product in catalog order.
func (s *Service) Search(req SearchRequest) []Product {
	results := make([]Product, 0, len(s.products))

	for _, p := range s.products {
		if req.Query != "" && !matchesQuery(&p, req.Query) {
			continue
		}
		if len(req.Categories) > 0 && !matchesAnyCategory(&p, req.Categories) {
			continue
		}
		if len(req.Brands) > 0 && !matchesAnyBrand(&p, req.Brands) {
			continue
		}
		if req.MinPrice > 0 && p.Price < req.MinPrice {
			continue
		}
		if req.MaxPrice > 0 && p.Price > req.MaxPrice {
			continue
		}
		results = append(results, p)
	}

	sortProducts(results, req.Sort)
	return results
}

// Featured returns the products flagged for the landing page
func (s *Service) Featured() []Product {
	return s.filter(func(p *Product) bool { return p.Featured })
}

// Bestsellers returns the products flagged as bestsellers
func (s *Service) Bestsellers() []Product {
	return s.filter(func(p *Product) bool { return p.Bestseller })
}

// NewArrivals returns the products flagged as new
func (s *Service) NewArrivals() []Product {
	return s.filter(func(p *Product) bool { return p.New })
}

func (s *Service) filter(keep func(*Product) bool) []Product {
	var results []Product
	for _, p := range s.products {
		if keep(&p) {
			results = append(results, p)
		}
	}
	return results
}

func matchesQuery(p *Product, query string) bool {
	term := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, cat := range p.Categories {
		if strings.Contains(strings.ToLower(cat), term) {
			return true
		}
	}
	return false
}

func matchesAnyCategory(p *Product, categories []string) bool {
	for _, want := range categories {
		for _, have := range p.Categories {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

func matchesAnyBrand(p *Product, brands []string) bool {
	for _, want := range brands {
		if strings.EqualFold(p.Brand, want) {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, order string) {
	switch order {
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name > products[j].Name })
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	}
}

// internal/domain/catalog/entity.go
package catalog

// Product represents an immutable catalog record. The catalog is loaded once
// from the seed data file and never mutated at runtime.
type Product struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	SKU         string            `json:"sku"`
	Name        string            `json:"name"`
	Brand       string            `json:"brand"`
	Price       int64             `json:"price"` // minor currency units
	CompareAt   *int64            `json:"compare_at,omitempty"`
	Inventory   int               `json:"inventory"`
	Images      []string          `json:"images"`
	Categories  []string          `json:"categories"`
	Attributes  map[string]string `json:"attributes"`
	Rating      float64           `json:"rating"`
	Description string            `json:"description"`
	Featured    bool              `json:"featured"`
	New         bool              `json:"new"`
	Bestseller  bool              `json:"bestseller"`
}

// OnSale reports whether the product carries a compare-at price above the
// current price.
func (p *Product) OnSale() bool {
	return p.CompareAt != nil && *p.CompareAt > p.Price
}

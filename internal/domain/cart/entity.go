// internal/domain/cart/entity.go
package cart

import (
	"sort"
	"strings"
	"time"
)

// LineItem represents one line of the cart. Lines are kept in insertion
// order, which is the display order.
type LineItem struct {
	ID        string            `json:"id"`
	ProductID string            `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Variant   map[string]string `json:"variant,omitempty"`
	AddedAt   time.Time         `json:"added_at"`
}

// MergeKey returns the composite identity of a line: product id plus the
// canonical variant encoding. At most one line per merge key ever exists.
func (li *LineItem) MergeKey() string {
	return li.ProductID + "|" + VariantKey(li.Variant)
}

// VariantKey canonicalizes a variant mapping into an order-independent
// string: sorted key=value pairs. Nil and empty maps encode identically.
func VariantKey(variant map[string]string) string {
	if len(variant) == 0 {
		return ""
	}

	keys := make([]string, 0, len(variant))
	for k := range variant {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+variant[k])
	}
	return strings.Join(pairs, ";")
}

// Totals represents the derived pricing view of the cart. It is computed on
// every read and never stored, so price or settings changes between sessions
// are always reflected.
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	Subtotal      int64 `json:"subtotal"`       // Before discount/tax/shipping
	Discount      int64 `json:"discount"`
	Tax           int64 `json:"tax"`
	Shipping      int64 `json:"shipping"`
	Total         int64 `json:"total"`
}

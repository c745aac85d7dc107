// internal/domain/coupon/entity.go
package coupon

// Discount types supported by the storefront.
const (
	TypePercentage = "percentage"
	TypeFixed      = "fixed"
)

// Coupon represents a discount code. Amounts are in minor currency units;
// Value is a percent for percentage coupons and an amount for fixed ones.
type Coupon struct {
	Code        string `json:"code"`
	Type        string `json:"type"`
	Value       int64  `json:"value"`
	MinSpend    int64  `json:"min_spend,omitempty"`
	MaxDiscount int64  `json:"max_discount,omitempty"` // percentage type only
	Description string `json:"description,omitempty"`
}

// internal/domain/cart/totals.go
package cart

import (
	"math"

	"github.com/aurelius-time/storefront/internal/config"
	"github.com/aurelius-time/storefront/internal/domain/coupon"
)

// PriceSource resolves a product id to its current price. Lines whose product
// no longer resolves contribute nothing to the subtotal.
type PriceSource interface {
	Price(productID string) (int64, bool)
}

// ComputeTotals derives the pricing view from snapshots of the cart lines,
// the catalog prices, the pricing settings, and the resolved coupon (nil when
// none is applied). It is a pure function so pricing policy is testable
// without any ambient state.
//
// Policy, in order:
//   - tax applies to the pre-discount subtotal;
//   - the free-shipping threshold compares the subtotal, not subtotal-discount;
//   - the discount never exceeds the subtotal, so the total never goes negative.
func ComputeTotals(items []LineItem, prices PriceSource, settings config.PricingSettings, applied *coupon.Coupon) Totals {
	totals := Totals{ItemCount: len(items)}

	for i := range items {
		totals.TotalQuantity += items[i].Quantity
		if price, ok := prices.Price(items[i].ProductID); ok {
			totals.Subtotal += price * int64(items[i].Quantity)
		}
	}

	totals.Discount = discountFor(applied, totals.Subtotal)

	if settings.Tax.Enabled {
		totals.Tax = int64(math.Round(float64(totals.Subtotal) * settings.Tax.Rate))
	}

	if totals.Subtotal < settings.Shipping.FreeShippingThreshold {
		totals.Shipping = settings.Shipping.StandardRate
	}

	totals.Total = totals.Subtotal - totals.Discount + totals.Tax + totals.Shipping
	if totals.Total < 0 {
		totals.Total = 0
	}

	return totals
}

func discountFor(applied *coupon.Coupon, subtotal int64) int64 {
	if applied == nil {
		return 0
	}

	var discount int64
	switch applied.Type {
	case coupon.TypePercentage:
		discount = int64(math.Round(float64(subtotal) * float64(applied.Value) / 100))
		if applied.MaxDiscount > 0 && discount > applied.MaxDiscount {
			discount = applied.MaxDiscount
		}
	case coupon.TypeFixed:
		discount = applied.Value
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// internal/domain/cart/errors.go
package cart

import (
	"errors"
	"fmt"
)

// All cart failures are rejected operations the presentation layer can show
// to the user; none of them leaves the cart in a changed state.
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrItemNotFound          = errors.New("item not found in cart")
	ErrInvalidCoupon         = errors.New("invalid coupon code")
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// MinimumSpendError reports a coupon whose minimum spend exceeds the current
// subtotal. It carries the required minimum for display.
type MinimumSpendError struct {
	Code     string
	Required int64
	Subtotal int64
}

func (e *MinimumSpendError) Error() string {
	return fmt.Sprintf("coupon %s requires a minimum spend of %d (current subtotal %d)",
		e.Code, e.Required, e.Subtotal)
}

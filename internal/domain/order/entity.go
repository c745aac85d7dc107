// internal/domain/order/entity.go
package order

import "time"

// Status represents the order status. This storefront only ever creates
// pending orders; fulfilment happens elsewhere.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Customer holds the contact details collected at checkout
type Customer struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

// ShippingInfo holds the delivery address collected at checkout
type ShippingInfo struct {
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	District string `json:"district" binding:"required"`
	Notes    string `json:"notes"`
}

// Item is a line item snapshotted into the order at placement time, with the
// price that was charged.
type Item struct {
	ProductID    string            `json:"product_id"`
	ProductName  string            `json:"product_name"`
	ProductImage string            `json:"product_image,omitempty"`
	Variant      map[string]string `json:"variant,omitempty"`
	Quantity     int               `json:"quantity"`
	Price        int64             `json:"price"`
	Total        int64             `json:"total"`
}

// Payment holds the payment method and the totals breakdown charged
type Payment struct {
	Method   string `json:"method"`
	Subtotal int64  `json:"subtotal"`
	Discount int64  `json:"discount"`
	Tax      int64  `json:"tax"`
	Shipping int64  `json:"shipping"`
	Total    int64  `json:"total"`
}

// Order represents a placed order
type Order struct {
	ID        string       `json:"id"`
	Customer  Customer     `json:"customer"`
	Shipping  ShippingInfo `json:"shipping"`
	Items     []Item       `json:"items"`
	Payment   Payment      `json:"payment"`
	Coupon    string       `json:"coupon,omitempty"`
	Status    Status       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

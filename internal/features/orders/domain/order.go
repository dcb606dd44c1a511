package domain

import (
	"errors"
	"time"

	trackingdomain "storefront-tracker/internal/features/tracking/domain"
)

// ErrOrderNotFound is returned when the backend has no order with the
// requested identifier.
var ErrOrderNotFound = errors.New("order not found")

// Order represents a customer order as served by the storefront
// backend. Orders are created by the checkout flow and read-only here
// except for their derived status display.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"id"`
	// UserID is the owning customer.
	UserID string `json:"user_id"`
	// TotalAmount is the order total as a decimal string.
	TotalAmount string `json:"total_amount"`
	// Status is the order's own lifecycle state, used as a fallback
	// when no tracking events exist yet.
	Status trackingdomain.Status `json:"status"`
	// CreatedAt is the order creation timestamp.
	CreatedAt time.Time `json:"created_at"`
	// UserName is the customer display name, joined for display.
	UserName string `json:"user_name,omitempty"`
	// UserEmail is the customer email, joined for display.
	UserEmail string `json:"user_email,omitempty"`
	// PaymentID references the payment, joined for display.
	PaymentID string `json:"payment_id,omitempty"`
	// ProductID references the purchased product, joined for display.
	ProductID string `json:"product_id,omitempty"`
}

// CreateOrderInput is a request to place a new order.
type CreateOrderInput struct {
	// UserID is the purchasing customer.
	UserID string `json:"user_id"`
	// ProductID is the product being purchased.
	ProductID string `json:"product_id"`
	// TotalAmount is the order total as a decimal string.
	TotalAmount string `json:"total_amount"`
	// PaymentID references the completed payment.
	PaymentID string `json:"payment_id,omitempty"`
}

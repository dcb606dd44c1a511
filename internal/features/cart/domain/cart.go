package domain

import "errors"

var (
	// ErrInvalidQuantity is returned when a quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrMissingField is returned when a cart request omits a required field.
	ErrMissingField = errors.New("missing required field")
)

// CartItem represents one product line in a customer's cart.
type CartItem struct {
	// ID is the backend-assigned identifier of the line.
	ID string `json:"id"`
	// UserID is the cart owner.
	UserID string `json:"user_id"`
	// ProductID is the product in the line.
	ProductID string `json:"product_id"`
	// Quantity is the number of units, always positive.
	Quantity int `json:"quantity"`
}

// AddItemInput is a request to put a product into a cart.
type AddItemInput struct {
	// UserID is the cart owner.
	UserID string `json:"user_id"`
	// ProductID is the product to add.
	ProductID string `json:"product_id"`
	// Quantity is the number of units to add.
	Quantity int `json:"quantity"`
}

// Validate checks the input against the cart rules.
func (i AddItemInput) Validate() error {
	if i.UserID == "" || i.ProductID == "" {
		return ErrMissingField
	}
	if i.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

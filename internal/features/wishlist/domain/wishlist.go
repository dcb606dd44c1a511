package domain

import "errors"

// ErrMissingField is returned when a wishlist request omits a required field.
var ErrMissingField = errors.New("missing required field")

// WishlistItem represents one product on a customer's wishlist.
type WishlistItem struct {
	// ID is the backend-assigned identifier of the entry.
	ID string `json:"id"`
	// UserID is the wishlist owner.
	UserID string `json:"user_id"`
	// ProductID is the wished-for product.
	ProductID string `json:"product_id"`
}

// AddItemInput is a request to put a product on a wishlist.
type AddItemInput struct {
	// UserID is the wishlist owner.
	UserID string `json:"user_id"`
	// ProductID is the product to add.
	ProductID string `json:"product_id"`
}

// Validate checks the input for required fields.
func (i AddItemInput) Validate() error {
	if i.UserID == "" || i.ProductID == "" {
		return ErrMissingField
	}
	return nil
}

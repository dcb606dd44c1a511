package ports

import (
	"context"

	"storefront-tracker/internal/features/cart/domain"
)

// CartProvider defines the interface for the upstream cart backend.
// This is a Secondary Port (Driven Port).
type CartProvider interface {
	// ItemsForUser retrieves the cart lines belonging to one customer.
	ItemsForUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	// AddItem puts a product into a cart and returns the stored line.
	AddItem(ctx context.Context, input domain.AddItemInput) (*domain.CartItem, error)
	// UpdateQuantity changes the quantity of one cart line.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error)
	// RemoveItem deletes one cart line.
	RemoveItem(ctx context.Context, itemID, userID string) error
}

package ports

import (
	"context"

	"storefront-tracker/internal/features/wishlist/domain"
)

// WishlistProvider defines the interface for the upstream wishlist backend.
// This is a Secondary Port (Driven Port).
type WishlistProvider interface {
	// ItemsForUser retrieves a customer's wishlist, deduplicated by product.
	ItemsForUser(ctx context.Context, userID string) ([]domain.WishlistItem, error)
	// AddItem puts a product on a wishlist and returns the stored entry.
	AddItem(ctx context.Context, input domain.AddItemInput) (*domain.WishlistItem, error)
	// RemoveItem deletes one wishlist entry.
	RemoveItem(ctx context.Context, itemID, userID string) error
}

package service

import (
	"context"

	"storefront-tracker/internal/features/wishlist/domain"
	"storefront-tracker/internal/features/wishlist/ports"
)

// WishlistService handles the business logic for wishlist operations.
type WishlistService struct {
	provider ports.WishlistProvider
}

// NewWishlistService creates a new instance of WishlistService.
func NewWishlistService(provider ports.WishlistProvider) *WishlistService {
	return &WishlistService{
		provider: provider,
	}
}

// ItemsForUser retrieves one customer's wishlist.
func (s *WishlistService) ItemsForUser(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	return s.provider.ItemsForUser(ctx, userID)
}

// AddItem validates and adds a product to a wishlist.
func (s *WishlistService) AddItem(ctx context.Context, input domain.AddItemInput) (*domain.WishlistItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.provider.AddItem(ctx, input)
}

// RemoveItem deletes one wishlist entry.
func (s *WishlistService) RemoveItem(ctx context.Context, itemID, userID string) error {
	if itemID == "" || userID == "" {
		return domain.ErrMissingField
	}
	return s.provider.RemoveItem(ctx, itemID, userID)
}

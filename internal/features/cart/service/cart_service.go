package service

import (
	"context"

	"storefront-tracker/internal/features/cart/domain"
	"storefront-tracker/internal/features/cart/ports"
)

// CartService handles the business logic for cart operations.
type CartService struct {
	provider ports.CartProvider
}

// NewCartService creates a new instance of CartService.
func NewCartService(provider ports.CartProvider) *CartService {
	return &CartService{
		provider: provider,
	}
}

// ItemsForUser retrieves one customer's cart.
func (s *CartService) ItemsForUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.provider.ItemsForUser(ctx, userID)
}

// AddItem validates and adds a product to a cart.
func (s *CartService) AddItem(ctx context.Context, input domain.AddItemInput) (*domain.CartItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.provider.AddItem(ctx, input)
}

// UpdateQuantity changes a cart line's quantity.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	if itemID == "" {
		return nil, domain.ErrMissingField
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.provider.UpdateQuantity(ctx, itemID, quantity)
}

// RemoveItem deletes one cart line.
func (s *CartService) RemoveItem(ctx context.Context, itemID, userID string) error {
	if itemID == "" || userID == "" {
		return domain.ErrMissingField
	}
	return s.provider.RemoveItem(ctx, itemID, userID)
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"storefront-tracker/internal/core/storefront"
	"storefront-tracker/internal/features/wishlist/domain"
)

// StorefrontAdapter implements ports.WishlistProvider against the
// storefront REST backend.
type StorefrontAdapter struct {
	client *storefront.Client
}

// NewStorefrontAdapter creates a wishlist adapter backed by the given client.
func NewStorefrontAdapter(client *storefront.Client) *StorefrontAdapter {
	return &StorefrontAdapter{client: client}
}

// ItemsForUser retrieves a customer's wishlist. The backend serves the
// unique view, one entry per product.
func (a *StorefrontAdapter) ItemsForUser(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, "/api/wishes/unique/"+userID, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}

	var items []domain.WishlistItem
	if err := storefront.UnwrapList(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist: %w", err)
	}
	return items, nil
}

// AddItem puts a product on a wishlist.
func (a *StorefrontAdapter) AddItem(ctx context.Context, input domain.AddItemInput) (*domain.WishlistItem, error) {
	var item domain.WishlistItem
	if err := a.client.Post(ctx, "/api/wishes/add", input, &item); err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return &item, nil
}

// RemoveItem deletes one wishlist entry.
func (a *StorefrontAdapter) RemoveItem(ctx context.Context, itemID, userID string) error {
	path := "/api/wishes/" + itemID + "?userId=" + url.QueryEscape(userID)
	if err := a.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	return nil
}

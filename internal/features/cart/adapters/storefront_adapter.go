package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"storefront-tracker/internal/core/storefront"
	"storefront-tracker/internal/features/cart/domain"
)

// StorefrontAdapter implements ports.CartProvider against the
// storefront REST backend.
type StorefrontAdapter struct {
	client *storefront.Client
}

// NewStorefrontAdapter creates a cart adapter backed by the given client.
func NewStorefrontAdapter(client *storefront.Client) *StorefrontAdapter {
	return &StorefrontAdapter{client: client}
}

// ItemsForUser retrieves the cart lines belonging to one customer.
func (a *StorefrontAdapter) ItemsForUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, "/api/cart/user/"+userID, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	var items []domain.CartItem
	if err := storefront.UnwrapList(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return items, nil
}

// AddItem puts a product into a cart.
func (a *StorefrontAdapter) AddItem(ctx context.Context, input domain.AddItemInput) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := a.client.Post(ctx, "/api/cart/add", input, &item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return &item, nil
}

// UpdateQuantity changes the quantity of one cart line.
func (a *StorefrontAdapter) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	body := map[string]int{"quantity": quantity}

	var item domain.CartItem
	if err := a.client.Patch(ctx, "/api/cart/"+itemID, body, &item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return &item, nil
}

// RemoveItem deletes one cart line.
func (a *StorefrontAdapter) RemoveItem(ctx context.Context, itemID, userID string) error {
	path := "/api/cart/" + itemID + "?userId=" + url.QueryEscape(userID)
	if err := a.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

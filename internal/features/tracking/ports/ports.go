package ports

import (
	"context"

	ordersdomain "storefront-tracker/internal/features/orders/domain"
	"storefront-tracker/internal/features/tracking/domain"
)

// TrackingProvider defines the interface for the upstream tracking backend.
// This is a Secondary Port (Driven Port).
type TrackingProvider interface {
	// OrderHistory retrieves the tracking history scoped to one order.
	OrderHistory(ctx context.Context, orderID string) ([]domain.TrackingEntry, error)
	// EntriesForUser retrieves the flat customer-facing event feed
	// spanning all of a user's orders.
	EntriesForUser(ctx context.Context, userID string) ([]domain.UserEntry, error)
	// AddUpdate appends a tracking event and returns the created entry.
	AddUpdate(ctx context.Context, input domain.UpdateInput) (*domain.TrackingEntry, error)
}

// OrderSource defines the interface for listing orders to aggregate over.
type OrderSource interface {
	// ListOrders retrieves every order visible to the operator.
	ListOrders(ctx context.Context) ([]ordersdomain.Order, error)
}

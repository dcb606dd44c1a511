package ports

import (
	"context"

	"storefront-tracker/internal/features/orders/domain"
)

// OrderProvider defines the interface for the upstream order backend.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// ListOrders retrieves every order visible to the operator.
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// GetOrder retrieves a single order by its identifier.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	// OrdersForUser retrieves the orders belonging to one customer.
	OrdersForUser(ctx context.Context, userID string) ([]domain.Order, error)
	// CreateOrder places a new order and returns it as stored.
	CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error)
}

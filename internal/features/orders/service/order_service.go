package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-tracker/internal/features/orders/domain"
	"storefront-tracker/internal/features/orders/ports"
)

// ErrMissingField is returned when a create request omits a required field.
var ErrMissingField = errors.New("missing required field")

// OrderService handles the business logic for retrieving and placing orders.
type OrderService struct {
	// provider is the interface for fetching order data from the backend.
	provider ports.OrderProvider
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(provider ports.OrderProvider) *OrderService {
	return &OrderService{
		provider: provider,
	}
}

// ListOrders retrieves every order visible to the operator.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.provider.ListOrders(ctx)
}

// GetOrder retrieves a single order by its identifier.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.provider.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}

// OrdersForUser retrieves the orders belonging to one customer.
func (s *OrderService) OrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.provider.OrdersForUser(ctx, userID)
}

// CreateOrder validates and places a new order.
func (s *OrderService) CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id", ErrMissingField)
	}
	if input.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingField)
	}
	if input.TotalAmount == "" {
		return nil, fmt.Errorf("%w: total_amount", ErrMissingField)
	}

	return s.provider.CreateOrder(ctx, input)
}

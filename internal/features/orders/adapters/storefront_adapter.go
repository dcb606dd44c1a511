package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-tracker/internal/core/storefront"
	"storefront-tracker/internal/features/orders/domain"
	trackingdomain "storefront-tracker/internal/features/tracking/domain"
)

// StorefrontAdapter implements ports.OrderProvider against the
// storefront REST backend.
type StorefrontAdapter struct {
	client *storefront.Client
}

// NewStorefrontAdapter creates an order adapter backed by the given client.
func NewStorefrontAdapter(client *storefront.Client) *StorefrontAdapter {
	return &StorefrontAdapter{client: client}
}

type orderDTO struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	TotalAmount storefront.Amount `json:"total_amount"`
	Status      string            `json:"status"`
	CreatedAt   storefront.Time   `json:"created_at"`
	UserName    string            `json:"user_name"`
	UserEmail   string            `json:"user_email"`
	PaymentID   string            `json:"payment_id"`
	ProductID   string            `json:"product_id"`
}

func (d orderDTO) toDomain() domain.Order {
	return domain.Order{
		ID:          d.ID,
		UserID:      d.UserID,
		TotalAmount: d.TotalAmount.String(),
		Status:      trackingdomain.Status(d.Status),
		CreatedAt:   time.Time(d.CreatedAt),
		UserName:    d.UserName,
		UserEmail:   d.UserEmail,
		PaymentID:   d.PaymentID,
		ProductID:   d.ProductID,
	}
}

func (a *StorefrontAdapter) list(ctx context.Context, path string) ([]domain.Order, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	var dtos []orderDTO
	if err := storefront.UnwrapList(raw, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, dto.toDomain())
	}
	return orders, nil
}

// ListOrders retrieves every order visible to the operator.
func (a *StorefrontAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return a.list(ctx, "/api/orders/")
}

// OrdersForUser retrieves the orders belonging to one customer.
func (a *StorefrontAdapter) OrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return a.list(ctx, "/api/orders/user/"+userID)
}

// GetOrder retrieves a single order by its identifier.
func (a *StorefrontAdapter) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var dto orderDTO
	if err := a.client.Get(ctx, "/api/orders/"+orderID, &dto); err != nil {
		if storefront.IsNotFound(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	order := dto.toDomain()
	return &order, nil
}

// CreateOrder places a new order and returns it as stored.
func (a *StorefrontAdapter) CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error) {
	var dto orderDTO
	if err := a.client.Post(ctx, "/api/orders", input, &dto); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order := dto.toDomain()
	return &order, nil
}

// HealthCheck verifies the storefront backend is reachable.
func (a *StorefrontAdapter) HealthCheck(ctx context.Context) error {
	if err := a.client.Get(ctx, "/api/orders/", nil); err != nil {
		return fmt.Errorf("storefront backend unreachable: %w", err)
	}
	return nil
}

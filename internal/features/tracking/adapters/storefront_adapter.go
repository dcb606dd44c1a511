package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-tracker/internal/core/storefront"
	"storefront-tracker/internal/features/tracking/domain"
)

// StorefrontAdapter implements ports.TrackingProvider against the
// storefront REST backend.
type StorefrontAdapter struct {
	client *storefront.Client
}

// NewStorefrontAdapter creates a tracking adapter backed by the given client.
func NewStorefrontAdapter(client *storefront.Client) *StorefrontAdapter {
	return &StorefrontAdapter{client: client}
}

type trackingEntryDTO struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	Status         string          `json:"status"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
	AddressDisplay *string         `json:"address_display"`
	AddressCity    *string         `json:"address_city"`
	AddressState   *string         `json:"address_state"`
	Notes          *string         `json:"notes"`
	CreatedAt      storefront.Time `json:"created_at"`
}

type userEntryDTO struct {
	trackingEntryDTO
	TotalAmount storefront.Amount `json:"total_amount"`
	UserID      string            `json:"user_id"`
	UserName    string            `json:"user_name"`
}

type orderHistoryResponse struct {
	TrackingHistory []trackingEntryDTO `json:"tracking_history"`
}

func (d trackingEntryDTO) toDomain() domain.TrackingEntry {
	return domain.TrackingEntry{
		ID:             d.ID,
		OrderID:        d.OrderID,
		Status:         domain.Status(d.Status),
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		AddressDisplay: d.AddressDisplay,
		AddressCity:    d.AddressCity,
		AddressState:   d.AddressState,
		Notes:          d.Notes,
		CreatedAt:      time.Time(d.CreatedAt),
	}
}

// OrderHistory retrieves the tracking history scoped to one order.
func (a *StorefrontAdapter) OrderHistory(ctx context.Context, orderID string) ([]domain.TrackingEntry, error) {
	var resp orderHistoryResponse
	if err := a.client.Get(ctx, "/api/track/order/"+orderID, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch order history: %w", err)
	}

	history := make([]domain.TrackingEntry, 0, len(resp.TrackingHistory))
	for _, dto := range resp.TrackingHistory {
		history = append(history, dto.toDomain())
	}
	return history, nil
}

// EntriesForUser retrieves the flat customer-facing event feed.
func (a *StorefrontAdapter) EntriesForUser(ctx context.Context, userID string) ([]domain.UserEntry, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, "/api/track/my/"+userID, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch user feed: %w", err)
	}

	var dtos []userEntryDTO
	if err := storefront.UnwrapList(raw, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode user feed: %w", err)
	}

	entries := make([]domain.UserEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, domain.UserEntry{
			TrackingEntry: dto.toDomain(),
			TotalAmount:   dto.TotalAmount.String(),
			UserID:        dto.UserID,
			UserName:      dto.UserName,
		})
	}
	return entries, nil
}

// AddUpdate appends a tracking event. An address-bearing input routes
// to the geocode-capable endpoint, an address-less one to the plain
// append endpoint.
func (a *StorefrontAdapter) AddUpdate(ctx context.Context, input domain.UpdateInput) (*domain.TrackingEntry, error) {
	path := "/api/track/add"
	body := map[string]string{
		"order_id": input.OrderID,
		"status":   string(input.Status),
		"notes":    input.Notes,
	}
	if input.Address != "" {
		path = "/api/track/add-with-address"
		body["address"] = input.Address
	}

	var dto trackingEntryDTO
	if err := a.client.Post(ctx, path, body, &dto); err != nil {
		return nil, fmt.Errorf("failed to add tracking update: %w", err)
	}

	entry := dto.toDomain()
	return &entry, nil
}

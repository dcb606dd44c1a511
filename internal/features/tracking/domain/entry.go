package domain

import "time"

// TrackingEntry represents a single immutable status event belonging to
// one order. The backend assigns ID and CreatedAt; the geocoded fields
// stay nil when no address was provided or geocoding failed.
type TrackingEntry struct {
	// ID is the backend-assigned identifier of the event.
	ID string `json:"id"`
	// OrderID is the order this event belongs to.
	OrderID string `json:"order_id"`
	// Status is the lifecycle state recorded by this event.
	Status Status `json:"status"`
	// Latitude is the geocoded latitude, if any.
	Latitude *float64 `json:"latitude"`
	// Longitude is the geocoded longitude, if any.
	Longitude *float64 `json:"longitude"`
	// AddressDisplay is the human-readable geocoded address, if any.
	AddressDisplay *string `json:"address_display"`
	// AddressCity is the geocoded city, if any.
	AddressCity *string `json:"address_city"`
	// AddressState is the geocoded state or region, if any.
	AddressState *string `json:"address_state"`
	// Notes is free-form operator text, if any.
	Notes *string `json:"notes"`
	// CreatedAt is the backend-assigned event timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// UserEntry is a tracking event as served by the customer-facing feed,
// carrying order fields denormalized for display.
type UserEntry struct {
	TrackingEntry
	// TotalAmount is the order total, denormalized.
	TotalAmount string `json:"total_amount"`
	// UserID is the owning customer, denormalized.
	UserID string `json:"user_id"`
	// UserName is the customer display name, denormalized.
	UserName string `json:"user_name"`
}

// UpdateInput is an operator request to append a tracking event.
type UpdateInput struct {
	// OrderID is the order to append to.
	OrderID string `json:"order_id"`
	// Status is the lifecycle state to record.
	Status Status `json:"status"`
	// Address is optional free text; when non-empty the backend
	// attempts geocoding.
	Address string `json:"address,omitempty"`
	// Notes is optional operator text.
	Notes string `json:"notes,omitempty"`
}

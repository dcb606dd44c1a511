package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"storefront-tracker/internal/core/cache"
	"storefront-tracker/internal/core/config"
	"storefront-tracker/internal/core/logger"
	ordersdomain "storefront-tracker/internal/features/orders/domain"
	"storefront-tracker/internal/features/tracking/domain"
	"storefront-tracker/internal/features/tracking/ports"
)

var (
	// ErrUnknownStatus is returned when an update names a status outside
	// the lifecycle vocabulary.
	ErrUnknownStatus = errors.New("unknown tracking status")
	// ErrMissingOrderID is returned when an update carries no order.
	ErrMissingOrderID = errors.New("order id is required")
)

// BoardItem is one order on the operator board together with its
// aggregated tracking state.
type BoardItem struct {
	// Order is the order as served by the backend.
	Order ordersdomain.Order `json:"order"`
	// History is the order's tracking events, chronologically sorted.
	// Empty when the order has no events or its fetch failed.
	History []domain.TrackingEntry `json:"history"`
	// CurrentStatus is the latest event status, falling back to the
	// order's own status field.
	CurrentStatus domain.Status `json:"current_status"`
	// Progress classifies CurrentStatus for display.
	Progress domain.Progress `json:"progress"`
	// SegmentsFilled is how many progress-bar segments render filled.
	SegmentsFilled int `json:"segments_filled"`
	// LatestLocation is the most recent known address, if any.
	LatestLocation *string `json:"latest_location"`
	// NextStatus pre-selects a sensible next state for the update form.
	NextStatus domain.Status `json:"next_status"`
}

// CustomerOrder is one order in the customer-facing "my orders" view,
// built from the denormalized event feed.
type CustomerOrder struct {
	// OrderID identifies the order.
	OrderID string `json:"order_id"`
	// TotalAmount is the order total, denormalized from the feed.
	TotalAmount string `json:"total_amount"`
	// UserName is the customer display name, denormalized.
	UserName string `json:"user_name"`
	// History is the order's tracking events, chronologically sorted.
	History []domain.TrackingEntry `json:"history"`
	// CurrentStatus is the latest event status.
	CurrentStatus domain.Status `json:"current_status"`
	// Progress classifies CurrentStatus for display.
	Progress domain.Progress `json:"progress"`
	// SegmentsFilled is how many progress-bar segments render filled.
	SegmentsFilled int `json:"segments_filled"`
	// LatestLocation is the most recent known address, if any.
	LatestLocation *string `json:"latest_location"`
}

// UpdateResult is the outcome of appending a tracking event: the entry
// as stored plus the order's refreshed authoritative history.
type UpdateResult struct {
	// Entry is the created event with backend-assigned fields.
	Entry domain.TrackingEntry `json:"entry"`
	// History is the order's full history re-fetched after the append.
	History []domain.TrackingEntry `json:"history"`
}

// TrackingService aggregates orders with their tracking histories.
type TrackingService struct {
	provider    ports.TrackingProvider
	orders      ports.OrderSource
	cache       cache.Cache
	concurrency int
	historyTTL  time.Duration
}

// NewTrackingService creates a TrackingService. The cache may be nil,
// in which case every history is fetched from the backend.
func NewTrackingService(provider ports.TrackingProvider, orders ports.OrderSource, c cache.Cache, cfg config.TrackingConfig) *TrackingService {
	concurrency := cfg.FetchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &TrackingService{
		provider:    provider,
		orders:      orders,
		cache:       c,
		concurrency: concurrency,
		historyTTL:  time.Duration(cfg.HistoryTTLSeconds) * time.Second,
	}
}

func historyCacheKey(orderID string) string {
	return "tracking:order:" + orderID + ":history"
}

// Board lists every order with its aggregated tracking state. Per-order
// histories are fetched concurrently; a failed history fetch degrades
// that order to an empty history instead of failing the board.
func (s *TrackingService) Board(ctx context.Context) ([]BoardItem, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	histories := make([][]domain.TrackingEntry, len(orders))
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.concurrency)

	for i, order := range orders {
		wg.Add(1)
		go func(i int, orderID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			history, err := s.orderHistory(ctx, orderID)
			if err != nil {
				logger.Get().Warn("history fetch failed, serving order without events",
					zap.String("order_id", orderID),
					zap.Error(err))
				return
			}
			histories[i] = history
		}(i, order.ID)
	}
	wg.Wait()

	// The caller may be gone by the time the fan-out joins; do not
	// assemble a result that will be applied to a dead request.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]BoardItem, 0, len(orders))
	for i, order := range orders {
		history := histories[i]
		if history == nil {
			history = []domain.TrackingEntry{}
		}
		current := domain.LatestStatus(history, order.Status)
		items = append(items, BoardItem{
			Order:          order,
			History:        history,
			CurrentStatus:  current,
			Progress:       domain.Classify(current),
			SegmentsFilled: domain.SegmentsFilled(current),
			LatestLocation: domain.LatestLocation(history),
			NextStatus:     domain.NextStatus(current),
		})
	}
	return items, nil
}

// MyOrders builds the customer-facing per-order view from the flat
// denormalized event feed.
func (s *TrackingService) MyOrders(ctx context.Context, userID string) ([]CustomerOrder, error) {
	feed, err := s.provider.EntriesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking feed: %w", err)
	}

	entries := make([]domain.TrackingEntry, 0, len(feed))
	meta := make(map[string]domain.UserEntry, len(feed))
	orderSeen := make([]string, 0, len(feed))
	for _, e := range feed {
		entries = append(entries, e.TrackingEntry)
		if _, ok := meta[e.OrderID]; !ok {
			meta[e.OrderID] = e
			orderSeen = append(orderSeen, e.OrderID)
		}
	}

	grouped := domain.GroupByOrder(entries)

	result := make([]CustomerOrder, 0, len(grouped))
	for _, orderID := range orderSeen {
		history := grouped[orderID]
		current := domain.LatestStatus(history, history[0].Status)
		result = append(result, CustomerOrder{
			OrderID:        orderID,
			TotalAmount:    meta[orderID].TotalAmount,
			UserName:       meta[orderID].UserName,
			History:        history,
			CurrentStatus:  current,
			Progress:       domain.Classify(current),
			SegmentsFilled: domain.SegmentsFilled(current),
			LatestLocation: domain.LatestLocation(history),
		})
	}
	// Oldest order first; its earliest event stands in for the order's
	// creation time, which the feed does not carry.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].History[0].CreatedAt.Before(result[j].History[0].CreatedAt)
	})
	return result, nil
}

// AddUpdate validates and appends a tracking event, then re-fetches the
// order's history so the backend stays the sole source of assigned
// timestamps and geocoded fields.
func (s *TrackingService) AddUpdate(ctx context.Context, input domain.UpdateInput) (*UpdateResult, error) {
	if input.OrderID == "" {
		return nil, ErrMissingOrderID
	}
	if !domain.IsValid(input.Status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, input.Status)
	}

	entry, err := s.provider.AddUpdate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to append tracking update: %w", err)
	}

	history, err := s.provider.OrderHistory(ctx, input.OrderID)
	if err != nil {
		logger.Get().Warn("history refresh failed after update",
			zap.String("order_id", input.OrderID),
			zap.Error(err))
		history = []domain.TrackingEntry{*entry}
	}
	domain.SortHistory(history)
	s.cacheHistory(ctx, input.OrderID, history)

	return &UpdateResult{Entry: *entry, History: history}, nil
}

// orderHistory reads one order's history through the cache. Cache
// failures are best-effort; the backend always wins.
func (s *TrackingService) orderHistory(ctx context.Context, orderID string) ([]domain.TrackingEntry, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, historyCacheKey(orderID)); err == nil {
			var cached []domain.TrackingEntry
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	history, err := s.provider.OrderHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}
	domain.SortHistory(history)
	s.cacheHistory(ctx, orderID, history)
	return history, nil
}

func (s *TrackingService) cacheHistory(ctx context.Context, orderID string, history []domain.TrackingEntry) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, historyCacheKey(orderID), raw, s.historyTTL); err != nil {
		logger.Get().Debug("history cache write failed",
			zap.String("order_id", orderID),
			zap.Error(err))
	}
}

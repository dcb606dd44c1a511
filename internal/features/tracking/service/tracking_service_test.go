package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront-tracker/internal/core/config"
	ordersdomain "storefront-tracker/internal/features/orders/domain"
	"storefront-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mu           sync.Mutex
	histories    map[string][]domain.TrackingEntry
	historyErr   map[string]error
	feed         []domain.UserEntry
	feedErr      error
	added        []domain.UpdateInput
	addErr       error
	historyCalls map[string]int
	onHistory    func(orderID string)
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		histories:    make(map[string][]domain.TrackingEntry),
		historyErr:   make(map[string]error),
		historyCalls: make(map[string]int),
	}
}

func (m *mockProvider) OrderHistory(ctx context.Context, orderID string) ([]domain.TrackingEntry, error) {
	m.mu.Lock()
	m.historyCalls[orderID]++
	onHistory := m.onHistory
	m.mu.Unlock()
	if onHistory != nil {
		onHistory(orderID)
	}
	if err := m.historyErr[orderID]; err != nil {
		return nil, err
	}
	return m.histories[orderID], nil
}

func (m *mockProvider) EntriesForUser(ctx context.Context, userID string) ([]domain.UserEntry, error) {
	return m.feed, m.feedErr
}

func (m *mockProvider) AddUpdate(ctx context.Context, input domain.UpdateInput) (*domain.TrackingEntry, error) {
	m.mu.Lock()
	m.added = append(m.added, input)
	m.mu.Unlock()
	if m.addErr != nil {
		return nil, m.addErr
	}
	return &domain.TrackingEntry{
		ID:        "new",
		OrderID:   input.OrderID,
		Status:    input.Status,
		CreatedAt: time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC),
	}, nil
}

func (m *mockProvider) calls(orderID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.historyCalls[orderID]
}

type mockOrderSource struct {
	orders []ordersdomain.Order
	err    error
}

func (m *mockOrderSource) ListOrders(ctx context.Context) ([]ordersdomain.Order, error) {
	return m.orders, m.err
}

type mockCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.store[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	return nil
}

func (m *mockCache) Ping(ctx context.Context) error { return nil }
func (m *mockCache) Close() error                   { return nil }

func testConfig() config.TrackingConfig {
	return config.TrackingConfig{FetchConcurrency: 4, HistoryTTLSeconds: 60}
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 1, hour, 0, 0, 0, time.UTC)
}

// TestBoard_AggregatesHistories verifies each order carries its sorted
// history and derived display state.
func TestBoard_AggregatesHistories(t *testing.T) {
	provider := newMockProvider()
	provider.histories["o1"] = []domain.TrackingEntry{
		{ID: "t2", OrderID: "o1", Status: domain.StatusShipped, CreatedAt: at(12)},
		{ID: "t1", OrderID: "o1", Status: domain.StatusOrderPlaced, CreatedAt: at(10)},
	}
	source := &mockOrderSource{orders: []ordersdomain.Order{
		{ID: "o1", Status: domain.StatusProcessing},
		{ID: "o2", Status: domain.StatusOrderPlaced},
	}}

	svc := NewTrackingService(provider, source, nil, testConfig())
	items, err := svc.Board(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "o1", items[0].Order.ID)
	require.Len(t, items[0].History, 2)
	assert.Equal(t, "t1", items[0].History[0].ID)
	assert.Equal(t, domain.StatusShipped, items[0].CurrentStatus)
	assert.Equal(t, domain.StatusInTransit, items[0].NextStatus)
	assert.Equal(t, 4, items[0].SegmentsFilled)

	// no events: fall back to the order's own status
	assert.Equal(t, domain.StatusOrderPlaced, items[1].CurrentStatus)
	assert.NotNil(t, items[1].History)
	assert.Empty(t, items[1].History)
}

// TestBoard_PartialFailure verifies one failed history fetch does not
// fail the whole board.
func TestBoard_PartialFailure(t *testing.T) {
	provider := newMockProvider()
	provider.histories["o1"] = []domain.TrackingEntry{
		{ID: "t1", OrderID: "o1", Status: domain.StatusDelivered, CreatedAt: at(10)},
	}
	provider.historyErr["o2"] = errors.New("backend down")
	source := &mockOrderSource{orders: []ordersdomain.Order{
		{ID: "o1", Status: domain.StatusProcessing},
		{ID: "o2", Status: domain.StatusPacked},
	}}

	svc := NewTrackingService(provider, source, nil, testConfig())
	items, err := svc.Board(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.StatusDelivered, items[0].CurrentStatus)
	assert.Empty(t, items[1].History)
	assert.Equal(t, domain.StatusPacked, items[1].CurrentStatus)
}

// TestBoard_ListOrdersError verifies the board fails when orders cannot
// be listed at all.
func TestBoard_ListOrdersError(t *testing.T) {
	svc := NewTrackingService(newMockProvider(), &mockOrderSource{err: errors.New("boom")}, nil, testConfig())

	_, err := svc.Board(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list orders")
}

// TestBoard_ServesHistoriesFromCache verifies the read-through cache
// skips the backend on a second fetch.
func TestBoard_ServesHistoriesFromCache(t *testing.T) {
	provider := newMockProvider()
	provider.histories["o1"] = []domain.TrackingEntry{
		{ID: "t1", OrderID: "o1", Status: domain.StatusShipped, CreatedAt: at(10)},
	}
	source := &mockOrderSource{orders: []ordersdomain.Order{{ID: "o1", Status: domain.StatusProcessing}}}
	c := newMockCache()

	svc := NewTrackingService(provider, source, c, testConfig())

	_, err := svc.Board(context.Background())
	require.NoError(t, err)
	items, err := svc.Board(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls("o1"))
	require.Len(t, items, 1)
	assert.Equal(t, domain.StatusShipped, items[0].CurrentStatus)
}

// TestBoard_ContextCancelled verifies a cancelled request is not
// assembled after the fan-out joins.
func TestBoard_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	provider := newMockProvider()
	provider.onHistory = func(string) { cancel() }
	source := &mockOrderSource{orders: []ordersdomain.Order{{ID: "o1", Status: domain.StatusProcessing}}}

	svc := NewTrackingService(provider, source, nil, testConfig())
	_, err := svc.Board(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMyOrders_GroupsFeed verifies the flat feed splits into per-order
// views with denormalized display fields.
func TestMyOrders_GroupsFeed(t *testing.T) {
	provider := newMockProvider()
	provider.feed = []domain.UserEntry{
		{TrackingEntry: domain.TrackingEntry{ID: "t3", OrderID: "o2", Status: domain.StatusPacked, CreatedAt: at(14)}, TotalAmount: "120.00", UserID: "u1", UserName: "Ana"},
		{TrackingEntry: domain.TrackingEntry{ID: "t2", OrderID: "o1", Status: domain.StatusShipped, CreatedAt: at(12)}, TotalAmount: "59.99", UserID: "u1", UserName: "Ana"},
		{TrackingEntry: domain.TrackingEntry{ID: "t1", OrderID: "o1", Status: domain.StatusOrderPlaced, CreatedAt: at(10)}, TotalAmount: "59.99", UserID: "u1", UserName: "Ana"},
	}

	svc := NewTrackingService(provider, &mockOrderSource{}, nil, testConfig())
	orders, err := svc.MyOrders(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, orders, 2)

	// oldest order first
	assert.Equal(t, "o1", orders[0].OrderID)
	assert.Equal(t, "59.99", orders[0].TotalAmount)
	require.Len(t, orders[0].History, 2)
	assert.Equal(t, "t1", orders[0].History[0].ID)
	assert.Equal(t, domain.StatusShipped, orders[0].CurrentStatus)

	assert.Equal(t, "o2", orders[1].OrderID)
	assert.Equal(t, "120.00", orders[1].TotalAmount)
	assert.Equal(t, domain.StatusPacked, orders[1].CurrentStatus)
}

// TestMyOrders_FeedError verifies feed failures propagate.
func TestMyOrders_FeedError(t *testing.T) {
	provider := newMockProvider()
	provider.feedErr = errors.New("backend down")

	svc := NewTrackingService(provider, &mockOrderSource{}, nil, testConfig())
	_, err := svc.MyOrders(context.Background(), "u1")

	require.Error(t, err)
}

// TestAddUpdate_RejectsUnknownStatus verifies vocabulary validation
// happens before any backend call.
func TestAddUpdate_RejectsUnknownStatus(t *testing.T) {
	provider := newMockProvider()
	svc := NewTrackingService(provider, &mockOrderSource{}, nil, testConfig())

	_, err := svc.AddUpdate(context.Background(), domain.UpdateInput{
		OrderID: "o1",
		Status:  domain.Status("NOT_A_REAL_STATUS"),
	})

	require.ErrorIs(t, err, ErrUnknownStatus)
	assert.Empty(t, provider.added)
}

// TestAddUpdate_RejectsMissingOrder verifies the order id is required.
func TestAddUpdate_RejectsMissingOrder(t *testing.T) {
	svc := NewTrackingService(newMockProvider(), &mockOrderSource{}, nil, testConfig())

	_, err := svc.AddUpdate(context.Background(), domain.UpdateInput{Status: domain.StatusPacked})

	require.ErrorIs(t, err, ErrMissingOrderID)
}

// TestAddUpdate_RefetchesHistory verifies the authoritative history is
// re-fetched after the append and the cache refreshed.
func TestAddUpdate_RefetchesHistory(t *testing.T) {
	provider := newMockProvider()
	provider.histories["o1"] = []domain.TrackingEntry{
		{ID: "t1", OrderID: "o1", Status: domain.StatusOrderPlaced, CreatedAt: at(10)},
		{ID: "new", OrderID: "o1", Status: domain.StatusPacked, CreatedAt: at(12)},
	}
	c := newMockCache()

	svc := NewTrackingService(provider, &mockOrderSource{}, c, testConfig())
	result, err := svc.AddUpdate(context.Background(), domain.UpdateInput{
		OrderID: "o1",
		Status:  domain.StatusPacked,
		Notes:   "ready",
	})

	require.NoError(t, err)
	assert.Equal(t, "new", result.Entry.ID)
	require.Len(t, result.History, 2)
	assert.Equal(t, 1, provider.calls("o1"))

	raw, err := c.Get(context.Background(), "tracking:order:o1:history")
	require.NoError(t, err)
	var cached []domain.TrackingEntry
	require.NoError(t, json.Unmarshal(raw, &cached))
	assert.Len(t, cached, 2)
}

// TestAddUpdate_AppendError verifies backend append failures propagate
// without touching the cache.
func TestAddUpdate_AppendError(t *testing.T) {
	provider := newMockProvider()
	provider.addErr = errors.New("order not found")
	c := newMockCache()

	svc := NewTrackingService(provider, &mockOrderSource{}, c, testConfig())
	_, err := svc.AddUpdate(context.Background(), domain.UpdateInput{
		OrderID: "missing",
		Status:  domain.StatusPacked,
	})

	require.Error(t, err)
	assert.Empty(t, c.store)
}

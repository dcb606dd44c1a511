package adapters

import (
	"context"
	"testing"
	"time"

	"storefront-tracker/internal/core/cache"
	"storefront-tracker/internal/features/identity/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, ttl time.Duration) (*RedisSessionRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisSessionRepository(adapter, ttl), mr
}

// TestRedisSessionRepository_SaveGet verifies the round-trip through Redis.
func TestRedisSessionRepository_SaveGet(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID: "s1",
		Identity: domain.Identity{
			ID:    "u1",
			Email: "ana@example.com",
			Role:  domain.RoleUser,
			Name:  "Ana",
		},
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, session.Identity, got.Identity)
	assert.True(t, session.CreatedAt.Equal(got.CreatedAt))
}

// TestRedisSessionRepository_GetMissing verifies unknown ids map to not-found.
func TestRedisSessionRepository_GetMissing(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)

	_, err := repo.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

// TestRedisSessionRepository_Expiry verifies sessions expire after the TTL.
func TestRedisSessionRepository_Expiry(t *testing.T) {
	repo, mr := newTestRepo(t, time.Minute)
	ctx := context.Background()

	session := &domain.Session{
		ID:       "s1",
		Identity: domain.Identity{ID: "u1", Email: "ana@example.com", Role: domain.RoleUser},
	}
	require.NoError(t, repo.Save(ctx, session))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

// TestRedisSessionRepository_Delete verifies closed sessions disappear.
func TestRedisSessionRepository_Delete(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID:       "s1",
		Identity: domain.Identity{ID: "u1", Email: "ana@example.com", Role: domain.RoleUser},
	}
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

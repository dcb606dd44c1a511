package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"storefront-tracker/internal/core/cache"
	"storefront-tracker/internal/features/identity/domain"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository implements ports.SessionRepository on the cache.
type RedisSessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisSessionRepository creates a new RedisSessionRepository. Every
// saved session expires after ttl.
func NewRedisSessionRepository(c cache.Cache, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// Save stores the session with the repository TTL.
func (r *RedisSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.cache.Set(ctx, sessionKey(session.ID), data, r.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Get retrieves a session by its identifier.
func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := r.cache.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete removes a session.
func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

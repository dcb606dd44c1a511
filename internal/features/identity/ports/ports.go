package ports

import (
	"context"

	"storefront-tracker/internal/features/identity/domain"
)

// SessionService defines the primary port for session operations.
type SessionService interface {
	Open(ctx context.Context, id, email string, role domain.Role, name, phone string) (*domain.Session, error)
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Close(ctx context.Context, sessionID string) error
}

// SessionRepository defines the secondary port for session storage.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

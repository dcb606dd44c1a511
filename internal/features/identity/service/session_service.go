package service

import (
	"context"
	"time"

	"storefront-tracker/internal/features/identity/domain"
	"storefront-tracker/internal/features/identity/ports"

	"github.com/google/uuid"
)

// SessionService handles opening, resolving and closing sessions.
type SessionService struct {
	repo ports.SessionRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo ports.SessionRepository) *SessionService {
	return &SessionService{
		repo: repo,
	}
}

// Open validates the identity and stores a new session under a fresh id.
func (s *SessionService) Open(ctx context.Context, id, email string, role domain.Role, name, phone string) (*domain.Session, error) {
	identity, err := domain.NewIdentity(id, email, role, name, phone)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Identity:  *identity,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Get resolves a session by its identifier.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.repo.Get(ctx, sessionID)
}

// Close removes a session.
func (s *SessionService) Close(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

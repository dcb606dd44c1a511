package domain

import (
	"errors"
	"strings"
	"time"
)

// Role represents the access level of an identity.
type Role string

const (
	// RoleAdmin grants access to operator views.
	RoleAdmin Role = "ADMIN"
	// RoleUser grants access to customer views.
	RoleUser Role = "USER"
)

var (
	// ErrInvalidRole is returned for a role outside the known set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidEmail is returned for a missing or malformed email.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrSessionNotFound is returned when no session exists for an id.
	ErrSessionNotFound = errors.New("session not found")
)

// Identity represents the signed-in user a session belongs to.
type Identity struct {
	// ID is the user's identifier in the storefront backend.
	ID string `json:"id"`
	// Email is the user's contact email.
	Email string `json:"email"`
	// Role is the user's access level.
	Role Role `json:"role"`
	// Name is the user's display name.
	Name string `json:"name,omitempty"`
	// Phone is the user's contact number.
	Phone string `json:"phone,omitempty"`
}

// Session represents one signed-in session held server-side.
type Session struct {
	// ID is the opaque session identifier handed to the client.
	ID string `json:"session_id"`
	// Identity is the user the session belongs to.
	Identity Identity `json:"identity"`
	// CreatedAt is when the session was opened.
	CreatedAt time.Time `json:"created_at"`
}

// NewIdentity validates and builds an Identity.
func NewIdentity(id, email string, role Role, name, phone string) (*Identity, error) {
	if role != RoleAdmin && role != RoleUser {
		return nil, ErrInvalidRole
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Identity{
		ID:    id,
		Email: email,
		Role:  role,
		Name:  name,
		Phone: phone,
	}, nil
}

// IsAdmin reports whether the identity may access operator views.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

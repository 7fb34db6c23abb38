package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront/internal/modules/user"
)

var (
	// ErrInvalidCredentials means no user row matched the supplied name and password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated means no principal is logged in.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAccessDenied means the current principal lacks the required role.
	ErrAccessDenied = errors.New("access denied")
)

// Session is the single-slot record of the authenticated principal.
type Session struct {
	ID     uuid.UUID
	UserID int64
	Name   string
}

// Service defines the interface for authentication and authorization.
// Only one principal may be active at a time.
type Service interface {
	// Login matches name and password verbatim against the user store and,
	// on a unique match, fills the session slot.
	Login(ctx context.Context, name, password string) (*Session, error)

	// Logout clears the session slot.
	Logout()

	// Current returns the active session, if any.
	Current() (*Session, bool)

	// Require verifies the current principal's row carries the given role.
	// Returns ErrNotAuthenticated or ErrAccessDenied on failure.
	Require(ctx context.Context, role user.Role) error
}

package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	// Register self-registers a new account. The role is always customer.
	Register(ctx context.Context, name, password string, latitude, longitude float64) (*User, error)

	// Get retrieves a user by id.
	Get(ctx context.Context, id int64) (*User, error)

	// AdminUpdate overwrites every field of an existing user row.
	AdminUpdate(ctx context.Context, u *User) error
}

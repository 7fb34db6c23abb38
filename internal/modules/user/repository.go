package user

import "context"

// Repository defines data access for users.
type Repository interface {
	// Create persists a new user and returns the sequence-assigned id.
	Create(ctx context.Context, u *User) (int64, error)

	// GetByCredentials matches name and password verbatim. A miss returns
	// sql.ErrNoRows.
	GetByCredentials(ctx context.Context, name, password string) (*User, error)

	// GetByID retrieves a user by primary key.
	GetByID(ctx context.Context, id int64) (*User, error)

	// HasRole reports whether the user's row carries the given role.
	HasRole(ctx context.Context, id int64, role Role) (bool, error)

	// Update overwrites every mutable field of the user row. Admin override only.
	Update(ctx context.Context, u *User) error
}

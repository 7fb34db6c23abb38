package store

import "context"

// Repository defines data access for stores.
type Repository interface {
	// ListAll returns every store.
	ListAll(ctx context.Context) ([]Store, error)

	// ListByManager returns the stores owned by the given manager.
	ListByManager(ctx context.Context, managerID int64) ([]Store, error)

	// GetByID retrieves a store by primary key.
	GetByID(ctx context.Context, id int64) (*Store, error)
}

package product

import "context"

// Repository defines data access for products and their audit trail.
type Repository interface {
	// ListByStore returns a store's products ordered by name.
	ListByStore(ctx context.Context, storeID int64) ([]Product, error)

	// ListByStoreByStock returns a store's products ordered ascending by
	// units on hand, lowest first.
	ListByStoreByStock(ctx context.Context, storeID int64) ([]Product, error)

	// Get retrieves one product by its composite key.
	Get(ctx context.Context, storeID int64, name string) (*Product, error)

	// Exists reports whether a product exists at a store.
	Exists(ctx context.Context, storeID int64, name string) (bool, error)

	// FindByName returns every store's row for a product name. Admin view.
	FindByName(ctx context.Context, name string) ([]Product, error)

	// Update sets a product's units and price and inserts the audit row in
	// the same transaction.
	Update(ctx context.Context, managerID, storeID int64, name string, units int, price float64) error

	// AdminUpdate overwrites a product row, possibly rekeying it, and inserts
	// the audit row attributed to the new store's manager, all in one
	// transaction.
	AdminUpdate(ctx context.Context, req AdminUpdateRequest) error

	// RecentUpdates returns the manager's latest audit rows at a store,
	// newest first.
	RecentUpdates(ctx context.Context, managerID, storeID int64, limit int) ([]Update, error)
}

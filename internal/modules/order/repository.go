package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// Place inserts the order and decrements the product's stock atomically.
	// The availability check runs under a row lock so concurrent placements
	// cannot jointly oversell; a failed check returns ErrInsufficientStock
	// with nothing written.
	Place(ctx context.Context, customerID, storeID int64, productName string, units int) (*Order, error)

	// RecentByCustomer returns the customer's latest orders, newest first.
	RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]Order, error)

	// RecentByStore returns a store's latest orders with customer names, newest first.
	RecentByStore(ctx context.Context, storeID int64, limit int) ([]StoreOrder, error)

	// PopularProducts aggregates units sold per product at a store, top sellers first.
	PopularProducts(ctx context.Context, storeID int64, limit int) ([]ProductSales, error)

	// PopularCustomers aggregates units purchased per customer at a store, top buyers first.
	PopularCustomers(ctx context.Context, storeID int64, limit int) ([]CustomerSales, error)
}

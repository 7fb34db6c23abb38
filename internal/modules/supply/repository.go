package supply

import "context"

// Repository defines data access for warehouses and supply requests.
type Repository interface {
	// ListWarehouses returns every warehouse.
	ListWarehouses(ctx context.Context) ([]Warehouse, error)

	// Place increments the product's stock and inserts the request row
	// atomically; neither commits without the other.
	Place(ctx context.Context, req *Request) error
}

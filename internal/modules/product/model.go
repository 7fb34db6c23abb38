package product

import (
	"errors"
	"time"
)

// ErrNotFound means the (store, product) pair does not exist.
var ErrNotFound = errors.New("product not found")

// Product is a store's inventory row, keyed by (storeID, productName).
// NumberOfUnits never goes negative after a committed mutation.
type Product struct {
	StoreID       int64   `json:"store_id"`
	Name          string  `json:"product_name"`
	NumberOfUnits int     `json:"number_of_units"`
	PricePerUnit  float64 `json:"price_per_unit"`
}

// Update is an append-only audit row documenting one committed Product
// mutation. It is inserted in the same transaction as the mutation.
type Update struct {
	UpdateNumber int64     `json:"update_number"`
	ManagerID    int64     `json:"manager_id"`
	StoreID      int64     `json:"store_id"`
	ProductName  string    `json:"product_name"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// AdminUpdateRequest carries an admin override of a Product row. The old
// composite key selects the row; the new fields may rekey it.
type AdminUpdateRequest struct {
	StoreID        int64
	ProductName    string
	NewStoreID     int64
	NewProductName string
	NumberOfUnits  int
	PricePerUnit   float64
}

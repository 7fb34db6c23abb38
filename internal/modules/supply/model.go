package supply

import (
	"errors"

	"storefront/internal/geo"
)

// ErrProductNotFound means the restocked (store, product) pair does not exist.
var ErrProductNotFound = errors.New("product not found")

// Warehouse is a stock supplier. Warehouse inventory is assumed unlimited, so
// fulfilling a request never decrements anything on the warehouse side.
type Warehouse struct {
	ID        int64   `json:"warehouse_id"`
	Area      string  `json:"area"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location returns the warehouse's coordinates.
func (w Warehouse) Location() geo.Point {
	return geo.Point{Lat: w.Latitude, Lng: w.Longitude}
}

// Request is an append-only record of a restock, paired 1:1 with the
// inventory increment it documents.
type Request struct {
	RequestNumber  int64  `json:"request_number"`
	ManagerID      int64  `json:"manager_id"`
	WarehouseID    int64  `json:"warehouse_id"`
	StoreID        int64  `json:"store_id"`
	ProductName    string `json:"product_name"`
	UnitsRequested int    `json:"units_requested"`
}

package order

import (
	"errors"
	"time"
)

// ErrInsufficientStock means the store holds fewer units than requested.
// The placement transaction rolls back without writing anything.
var ErrInsufficientStock = errors.New("not enough units available")

// ErrProductNotFound means the (store, product) pair does not exist.
var ErrProductNotFound = errors.New("product not found")

// Order is an append-only purchase record.
type Order struct {
	OrderNumber  int64     `json:"order_number"`
	CustomerID   int64     `json:"customer_id"`
	StoreID      int64     `json:"store_id"`
	ProductName  string    `json:"product_name"`
	UnitsOrdered int       `json:"units_ordered"`
	OrderTime    time.Time `json:"order_time"`
}

// StoreOrder is an order row joined with the purchasing customer's name,
// as shown in a store's recent-orders report.
type StoreOrder struct {
	OrderNumber  int64     `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	UnitsOrdered int       `json:"units_ordered"`
	OrderTime    time.Time `json:"order_time"`
}

// ProductSales aggregates units sold per product at a store.
type ProductSales struct {
	ProductName string `json:"product_name"`
	UnitsSold   int    `json:"units_sold"`
}

// CustomerSales aggregates units purchased per customer at a store.
type CustomerSales struct {
	CustomerName   string `json:"customer_name"`
	UnitsPurchased int    `json:"units_purchased"`
}

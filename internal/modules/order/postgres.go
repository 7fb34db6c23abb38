package order

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Place runs the availability check, the order insert and the stock decrement
// inside a single transaction. FOR UPDATE locks the product row for the
// duration, so two concurrent placements against the same product serialize
// and the second sees the decremented count.
func (r *postgresRepo) Place(ctx context.Context, customerID, storeID int64, productName string, units int) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var onHand int
	err = tx.QueryRowContext(ctx, `
		SELECT numberOfUnits FROM Product
		WHERE storeID = $1 AND productName = $2
		FOR UPDATE`,
		storeID, productName).Scan(&onHand)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock product row: %w", err)
	}
	if onHand < units {
		return nil, ErrInsufficientStock
	}

	o := &Order{
		CustomerID:   customerID,
		StoreID:      storeID,
		ProductName:  productName,
		UnitsOrdered: units,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO Orders (orderNumber, customerID, storeID, productName, unitsOrdered, orderTime)
		VALUES (nextval('orders_ordernumber_seq'), $1, $2, $3, $4, now())
		RETURNING orderNumber, orderTime`,
		customerID, storeID, productName, units).Scan(&o.OrderNumber, &o.OrderTime)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE Product SET numberOfUnits = numberOfUnits - $1
		WHERE storeID = $2 AND productName = $3`,
		units, storeID, productName)
	if err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT orderNumber, customerID, storeID, productName, unitsOrdered, orderTime
		FROM Orders WHERE customerID = $1
		ORDER BY orderTime DESC LIMIT $2`,
		customerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.OrderNumber, &o.CustomerID, &o.StoreID, &o.ProductName, &o.UnitsOrdered, &o.OrderTime); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) RecentByStore(ctx context.Context, storeID int64, limit int) ([]StoreOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT O.orderNumber, U.name, O.productName, O.unitsOrdered, O.orderTime
		FROM Orders O JOIN Users U ON O.customerID = U.userID
		WHERE O.storeID = $1
		ORDER BY O.orderTime DESC LIMIT $2`,
		storeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []StoreOrder
	for rows.Next() {
		var o StoreOrder
		if err := rows.Scan(&o.OrderNumber, &o.CustomerName, &o.ProductName, &o.UnitsOrdered, &o.OrderTime); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) PopularProducts(ctx context.Context, storeID int64, limit int) ([]ProductSales, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT productName, SUM(unitsOrdered) AS sold
		FROM Orders WHERE storeID = $1
		GROUP BY productName
		ORDER BY sold DESC LIMIT $2`,
		storeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sales []ProductSales
	for rows.Next() {
		var s ProductSales
		if err := rows.Scan(&s.ProductName, &s.UnitsSold); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *postgresRepo) PopularCustomers(ctx context.Context, storeID int64, limit int) ([]CustomerSales, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT U.name, SUM(O.unitsOrdered) AS purchased
		FROM Orders O JOIN Users U ON O.customerID = U.userID
		WHERE O.storeID = $1
		GROUP BY U.userID, U.name
		ORDER BY purchased DESC LIMIT $2`,
		storeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sales []CustomerSales
	for rows.Next() {
		var s CustomerSales
		if err := rows.Scan(&s.CustomerName, &s.UnitsPurchased); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

package supply

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL supply repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT wareHouseID, area, latitude, longitude FROM Warehouse ORDER BY wareHouseID`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var warehouses []Warehouse
	for rows.Next() {
		var w Warehouse
		if err := rows.Scan(&w.ID, &w.Area, &w.Latitude, &w.Longitude); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

// Place runs the stock increment and the request insert in one transaction.
func (r *postgresRepo) Place(ctx context.Context, req *Request) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE Product SET numberOfUnits = numberOfUnits + $1
		WHERE storeID = $2 AND productName = $3`,
		req.UnitsRequested, req.StoreID, req.ProductName)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO ProductSupplyRequests (requestNumber, managerID, warehouseID, storeID, productName, unitsRequested)
		VALUES (nextval('productsupplyrequests_requestnumber_seq'), $1, $2, $3, $4, $5)
		RETURNING requestNumber`,
		req.ManagerID, req.WarehouseID, req.StoreID, req.ProductName, req.UnitsRequested).
		Scan(&req.RequestNumber)
	if err != nil {
		return fmt.Errorf("insert supply request: %w", err)
	}

	return tx.Commit()
}

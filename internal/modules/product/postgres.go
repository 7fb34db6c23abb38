package product

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListByStore(ctx context.Context, storeID int64) ([]Product, error) {
	return r.queryProducts(ctx, `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product WHERE storeID = $1 ORDER BY productName`, storeID)
}

func (r *postgresRepo) ListByStoreByStock(ctx context.Context, storeID int64) ([]Product, error) {
	return r.queryProducts(ctx, `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product WHERE storeID = $1 ORDER BY numberOfUnits ASC, productName`, storeID)
}

func (r *postgresRepo) Get(ctx context.Context, storeID int64, name string) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product WHERE storeID = $1 AND productName = $2`, storeID, name).
		Scan(&p.StoreID, &p.Name, &p.NumberOfUnits, &p.PricePerUnit)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Exists(ctx context.Context, storeID int64, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM Product WHERE storeID = $1 AND productName = $2`,
		storeID, name).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *postgresRepo) FindByName(ctx context.Context, name string) ([]Product, error) {
	return r.queryProducts(ctx, `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product WHERE productName = $1 ORDER BY storeID`, name)
}

// Update writes the audit row and the product mutation inside a single
// transaction so neither can commit without the other.
func (r *postgresRepo) Update(ctx context.Context, managerID, storeID int64, name string, units int, price float64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE Product SET numberOfUnits = $1, pricePerUnit = $2
		WHERE storeID = $3 AND productName = $4`,
		units, price, storeID, name)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ProductUpdates (updateNumber, managerID, storeID, productName, updatedOn)
		VALUES (nextval('productupdates_updatenumber_seq'), $1, $2, $3, now())`,
		managerID, storeID, name)
	if err != nil {
		return fmt.Errorf("insert product update: %w", err)
	}

	return tx.Commit()
}

// AdminUpdate overwrites the row selected by the old composite key. The
// audit row is attributed to the manager of the store the row ends up at and
// commits in the same transaction as the mutation.
func (r *postgresRepo) AdminUpdate(ctx context.Context, req AdminUpdateRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE Product SET storeID = $1, productName = $2, numberOfUnits = $3, pricePerUnit = $4
		WHERE storeID = $5 AND productName = $6`,
		req.NewStoreID, req.NewProductName, req.NumberOfUnits, req.PricePerUnit,
		req.StoreID, req.ProductName)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	var managerID int64
	err = tx.QueryRowContext(ctx,
		`SELECT managerID FROM Store WHERE storeID = $1`, req.NewStoreID).Scan(&managerID)
	if err != nil {
		return fmt.Errorf("lookup store manager: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ProductUpdates (updateNumber, managerID, storeID, productName, updatedOn)
		VALUES (nextval('productupdates_updatenumber_seq'), $1, $2, $3, now())`,
		managerID, req.NewStoreID, req.NewProductName)
	if err != nil {
		return fmt.Errorf("insert product update: %w", err)
	}

	return tx.Commit()
}

func (r *postgresRepo) RecentUpdates(ctx context.Context, managerID, storeID int64, limit int) ([]Update, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT updateNumber, managerID, storeID, productName, updatedOn
		FROM ProductUpdates
		WHERE managerID = $1 AND storeID = $2
		ORDER BY updatedOn DESC LIMIT $3`,
		managerID, storeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var updates []Update
	for rows.Next() {
		var u Update
		if err := rows.Scan(&u.UpdateNumber, &u.ManagerID, &u.StoreID, &u.ProductName, &u.UpdatedOn); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, rows.Err()
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.StoreID, &p.Name, &p.NumberOfUnits, &p.PricePerUnit); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

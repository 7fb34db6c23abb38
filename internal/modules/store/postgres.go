package store

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL store repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const storeColumns = `storeID, managerID, latitude, longitude, dateEstablished`

func (r *postgresRepo) ListAll(ctx context.Context) ([]Store, error) {
	return r.queryStores(ctx, `SELECT `+storeColumns+` FROM Store ORDER BY storeID`)
}

func (r *postgresRepo) ListByManager(ctx context.Context, managerID int64) ([]Store, error) {
	return r.queryStores(ctx,
		`SELECT `+storeColumns+` FROM Store WHERE managerID = $1 ORDER BY storeID`,
		managerID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Store, error) {
	s := &Store{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM Store WHERE storeID = $1`, id).
		Scan(&s.ID, &s.ManagerID, &s.Latitude, &s.Longitude, &s.DateEstablished)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) queryStores(ctx context.Context, query string, args ...interface{}) ([]Store, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var stores []Store
	for rows.Next() {
		var s Store
		if err := rows.Scan(&s.ID, &s.ManagerID, &s.Latitude, &s.Longitude, &s.DateEstablished); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

package user

import (
	"context"
	"database/sql"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, u *User) (int64, error) {
	query := `
		INSERT INTO Users (name, password, latitude, longitude, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING userID
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		u.Name, u.Password, u.Latitude, u.Longitude, u.Type).Scan(&id)
	if err != nil {
		return 0, err
	}
	u.ID = id
	return id, nil
}

func (r *postgresRepository) GetByCredentials(ctx context.Context, name, password string) (*User, error) {
	u := &User{}
	query := `
		SELECT userID, name, password, latitude, longitude, type
		FROM Users
		WHERE name = $1 AND password = $2
	`
	err := r.db.QueryRowContext(ctx, query, name, password).Scan(
		&u.ID,
		&u.Name,
		&u.Password,
		&u.Latitude,
		&u.Longitude,
		&u.Type,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	u := &User{}
	query := `
		SELECT userID, name, password, latitude, longitude, type
		FROM Users
		WHERE userID = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Password,
		&u.Latitude,
		&u.Longitude,
		&u.Type,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) HasRole(ctx context.Context, id int64, role Role) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM Users WHERE userID = $1 AND type = $2`,
		id, role).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE Users
		SET name = $1, password = $2, latitude = $3, longitude = $4, type = $5
		WHERE userID = $6`,
		u.Name, u.Password, u.Latitude, u.Longitude, u.Type, u.ID)
	return err
}

package user

import (
	"context"
	"fmt"
)

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, password string, latitude, longitude float64) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	u := &User{
		Name:      name,
		Password:  password,
		Latitude:  latitude,
		Longitude: longitude,
		Type:      RoleCustomer,
	}

	if _, err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) AdminUpdate(ctx context.Context, u *User) error {
	switch u.Type {
	case RoleCustomer, RoleManager, RoleAdmin:
	default:
		return fmt.Errorf("unknown user type %q", u.Type)
	}
	return s.repo.Update(ctx, u)
}

package product

import (
	"context"
	"fmt"
)

// Service defines product business logic.
type Service interface {
	ListByStore(ctx context.Context, storeID int64) ([]Product, error)
	ListByStock(ctx context.Context, storeID int64) ([]Product, error)
	Get(ctx context.Context, storeID int64, name string) (*Product, error)
	Exists(ctx context.Context, storeID int64, name string) (bool, error)
	FindByName(ctx context.Context, name string) ([]Product, error)

	// Update sets units and price for a product; the audit row commits with it.
	Update(ctx context.Context, managerID, storeID int64, name string, units int, price float64) error

	// AdminUpdate overwrites an arbitrary product row; the audit row commits with it.
	AdminUpdate(ctx context.Context, req AdminUpdateRequest) error

	// RecentUpdates returns the manager's latest audit rows at a store.
	RecentUpdates(ctx context.Context, managerID, storeID int64, limit int) ([]Update, error)
}

type service struct {
	repo Repository
}

// NewService creates a new product service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListByStore(ctx context.Context, storeID int64) ([]Product, error) {
	return s.repo.ListByStore(ctx, storeID)
}

func (s *service) ListByStock(ctx context.Context, storeID int64) ([]Product, error) {
	return s.repo.ListByStoreByStock(ctx, storeID)
}

func (s *service) Get(ctx context.Context, storeID int64, name string) (*Product, error) {
	return s.repo.Get(ctx, storeID, name)
}

func (s *service) Exists(ctx context.Context, storeID int64, name string) (bool, error) {
	return s.repo.Exists(ctx, storeID, name)
}

func (s *service) FindByName(ctx context.Context, name string) ([]Product, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *service) Update(ctx context.Context, managerID, storeID int64, name string, units int, price float64) error {
	if units < 0 {
		return fmt.Errorf("number of units must not be negative")
	}
	if price < 0 {
		return fmt.Errorf("price per unit must not be negative")
	}
	return s.repo.Update(ctx, managerID, storeID, name, units, price)
}

func (s *service) AdminUpdate(ctx context.Context, req AdminUpdateRequest) error {
	if req.NewProductName == "" {
		return fmt.Errorf("product name must not be empty")
	}
	if req.NumberOfUnits < 0 {
		return fmt.Errorf("number of units must not be negative")
	}
	if req.PricePerUnit < 0 {
		return fmt.Errorf("price per unit must not be negative")
	}
	return s.repo.AdminUpdate(ctx, req)
}

func (s *service) RecentUpdates(ctx context.Context, managerID, storeID int64, limit int) ([]Update, error) {
	return s.repo.RecentUpdates(ctx, managerID, storeID, limit)
}

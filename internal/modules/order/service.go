package order

import (
	"context"
	"fmt"
)

// Service defines order business logic.
type Service interface {
	// Place validates the request and runs the atomic placement.
	Place(ctx context.Context, customerID, storeID int64, productName string, units int) (*Order, error)

	RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]Order, error)
	RecentByStore(ctx context.Context, storeID int64, limit int) ([]StoreOrder, error)
	PopularProducts(ctx context.Context, storeID int64, limit int) ([]ProductSales, error)
	PopularCustomers(ctx context.Context, storeID int64, limit int) ([]CustomerSales, error)
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Place(ctx context.Context, customerID, storeID int64, productName string, units int) (*Order, error) {
	if units <= 0 {
		return nil, fmt.Errorf("units ordered must be positive")
	}
	return s.repo.Place(ctx, customerID, storeID, productName, units)
}

func (s *service) RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]Order, error) {
	return s.repo.RecentByCustomer(ctx, customerID, limit)
}

func (s *service) RecentByStore(ctx context.Context, storeID int64, limit int) ([]StoreOrder, error) {
	return s.repo.RecentByStore(ctx, storeID, limit)
}

func (s *service) PopularProducts(ctx context.Context, storeID int64, limit int) ([]ProductSales, error) {
	return s.repo.PopularProducts(ctx, storeID, limit)
}

func (s *service) PopularCustomers(ctx context.Context, storeID int64, limit int) ([]CustomerSales, error) {
	return s.repo.PopularCustomers(ctx, storeID, limit)
}

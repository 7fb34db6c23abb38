package supply

import (
	"context"
	"fmt"
)

// Service defines supply-request business logic.
type Service interface {
	// Warehouses returns every warehouse.
	Warehouses(ctx context.Context) ([]Warehouse, error)

	// Request restocks a product from a warehouse and records the request.
	Request(ctx context.Context, managerID, warehouseID, storeID int64, productName string, units int) (*Request, error)
}

type service struct {
	repo Repository
}

// NewService creates a new supply service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Warehouses(ctx context.Context) ([]Warehouse, error) {
	return s.repo.ListWarehouses(ctx)
}

func (s *service) Request(ctx context.Context, managerID, warehouseID, storeID int64, productName string, units int) (*Request, error) {
	if units <= 0 {
		return nil, fmt.Errorf("units requested must be positive")
	}
	req := &Request{
		ManagerID:      managerID,
		WarehouseID:    warehouseID,
		StoreID:        storeID,
		ProductName:    productName,
		UnitsRequested: units,
	}
	if err := s.repo.Place(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

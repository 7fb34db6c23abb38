package store

import (
	"context"
	"sort"

	"storefront/internal/geo"
)

// Service defines store business logic.
type Service interface {
	// All returns every store.
	All(ctx context.Context) ([]Store, error)

	// Nearby returns stores within the given distance of a point, sorted
	// ascending by distance.
	Nearby(ctx context.Context, from geo.Point, within float64) ([]NearbyStore, error)

	// Managed resolves the managed-stores variant for a manager.
	Managed(ctx context.Context, managerID int64) (ManagedStores, error)

	// Get retrieves a single store.
	Get(ctx context.Context, id int64) (*Store, error)
}

type service struct {
	repo Repository
}

// NewService creates a new store service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) All(ctx context.Context) ([]Store, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Nearby(ctx context.Context, from geo.Point, within float64) ([]NearbyStore, error) {
	stores, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var nearby []NearbyStore
	for _, st := range stores {
		d := geo.Distance(from, st.Location())
		if d > within {
			continue
		}
		nearby = append(nearby, NearbyStore{Store: st, Distance: d})
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby, nil
}

func (s *service) Managed(ctx context.Context, managerID int64) (ManagedStores, error) {
	stores, err := s.repo.ListByManager(ctx, managerID)
	if err != nil {
		return ManagedStores{}, err
	}
	return ManagedStores{Stores: stores}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Store, error) {
	return s.repo.GetByID(ctx, id)
}

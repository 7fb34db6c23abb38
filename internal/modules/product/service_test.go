package product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	products map[int64]map[string]*Product
	updates  []Update
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[int64]map[string]*Product{
		7: {
			"Widget": {StoreID: 7, Name: "Widget", NumberOfUnits: 3, PricePerUnit: 2.5},
			"Gadget": {StoreID: 7, Name: "Gadget", NumberOfUnits: 10, PricePerUnit: 8},
		},
	}}
}

func (f *fakeRepo) ListByStore(ctx context.Context, storeID int64) ([]Product, error) {
	var out []Product
	for _, p := range f.products[storeID] {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) ListByStoreByStock(ctx context.Context, storeID int64) ([]Product, error) {
	return f.ListByStore(ctx, storeID)
}

func (f *fakeRepo) Get(ctx context.Context, storeID int64, name string) (*Product, error) {
	p, ok := f.products[storeID][name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) Exists(ctx context.Context, storeID int64, name string) (bool, error) {
	_, ok := f.products[storeID][name]
	return ok, nil
}

func (f *fakeRepo) FindByName(ctx context.Context, name string) ([]Product, error) {
	var out []Product
	for _, store := range f.products {
		if p, ok := store[name]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, managerID, storeID int64, name string, units int, price float64) error {
	p, ok := f.products[storeID][name]
	if !ok {
		return ErrNotFound
	}
	p.NumberOfUnits = units
	p.PricePerUnit = price
	f.updates = append(f.updates, Update{
		ManagerID:   managerID,
		StoreID:     storeID,
		ProductName: name,
		UpdatedOn:   time.Now(),
	})
	return nil
}

func (f *fakeRepo) AdminUpdate(ctx context.Context, req AdminUpdateRequest) error {
	p, ok := f.products[req.StoreID][req.ProductName]
	if !ok {
		return ErrNotFound
	}
	delete(f.products[req.StoreID], req.ProductName)
	if f.products[req.NewStoreID] == nil {
		f.products[req.NewStoreID] = map[string]*Product{}
	}
	p.StoreID = req.NewStoreID
	p.Name = req.NewProductName
	p.NumberOfUnits = req.NumberOfUnits
	p.PricePerUnit = req.PricePerUnit
	f.products[req.NewStoreID][req.NewProductName] = p
	f.updates = append(f.updates, Update{
		StoreID:     req.NewStoreID,
		ProductName: req.NewProductName,
		UpdatedOn:   time.Now(),
	})
	return nil
}

func (f *fakeRepo) RecentUpdates(ctx context.Context, managerID, storeID int64, limit int) ([]Update, error) {
	var out []Update
	for i := len(f.updates) - 1; i >= 0 && len(out) < limit; i-- {
		u := f.updates[i]
		if u.ManagerID == managerID && u.StoreID == storeID {
			out = append(out, u)
		}
	}
	return out, nil
}

func TestUpdateRejectsNegativeValues(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.Error(t, svc.Update(ctx, 10, 7, "Widget", -1, 2.5))
	require.Error(t, svc.Update(ctx, 10, 7, "Widget", 1, -0.5))
	require.Empty(t, repo.updates)
}

func TestUpdateWritesValueAndAuditTogether(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, 10, 7, "Widget", 12, 3.25))

	p, err := svc.Get(ctx, 7, "Widget")
	require.NoError(t, err)
	require.Equal(t, 12, p.NumberOfUnits)
	require.Equal(t, 3.25, p.PricePerUnit)

	require.Len(t, repo.updates, 1)
	require.Equal(t, int64(10), repo.updates[0].ManagerID)
	require.Equal(t, "Widget", repo.updates[0].ProductName)
}

func TestUpdateUnknownProduct(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	err := svc.Update(context.Background(), 10, 7, "Nothing", 1, 1)
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, repo.updates)
}

func TestAdminUpdateValidatesAndAudits(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.Error(t, svc.AdminUpdate(ctx, AdminUpdateRequest{StoreID: 7, ProductName: "Widget"}))

	req := AdminUpdateRequest{
		StoreID:        7,
		ProductName:    "Widget",
		NewStoreID:     8,
		NewProductName: "Widget Pro",
		NumberOfUnits:  4,
		PricePerUnit:   9.99,
	}
	require.NoError(t, svc.AdminUpdate(ctx, req))

	_, err := svc.Get(ctx, 7, "Widget")
	require.ErrorIs(t, err, ErrNotFound)
	p, err := svc.Get(ctx, 8, "Widget Pro")
	require.NoError(t, err)
	require.Equal(t, 4, p.NumberOfUnits)

	// Exactly one audit row per committed mutation.
	require.Len(t, repo.updates, 1)
	require.Equal(t, int64(8), repo.updates[0].StoreID)
	require.Equal(t, "Widget Pro", repo.updates[0].ProductName)
}

func TestRecentUpdatesNewestFirst(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, 10, 7, "Widget", 1, 1))
	require.NoError(t, svc.Update(ctx, 10, 7, "Gadget", 2, 2))

	updates, err := svc.RecentUpdates(ctx, 10, 7, 5)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	require.Equal(t, "Gadget", updates[0].ProductName)
	require.Equal(t, "Widget", updates[1].ProductName)
}

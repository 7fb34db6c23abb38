package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront/internal/geo"
)

type fakeRepo struct {
	stores []Store
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]Store, error) {
	return f.stores, nil
}

func (f *fakeRepo) ListByManager(ctx context.Context, managerID int64) ([]Store, error) {
	var out []Store
	for _, s := range f.stores {
		if s.ManagerID == managerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			st := s
			return &st, nil
		}
	}
	return nil, sql.ErrNoRows
}

func testStores() []Store {
	est := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Store{
		{ID: 1, ManagerID: 10, Latitude: 5, Longitude: 0, DateEstablished: est},
		{ID: 2, ManagerID: 10, Latitude: 40, Longitude: 0, DateEstablished: est},
		{ID: 3, ManagerID: 20, Latitude: 2, Longitude: 0, DateEstablished: est},
	}
}

func TestNearbySortsAndFilters(t *testing.T) {
	svc := NewService(&fakeRepo{stores: testStores()})

	nearby, err := svc.Nearby(context.Background(), geo.Point{Lat: 0, Lng: 0}, 30)
	require.NoError(t, err)

	// Store 2 is 40 away and must be cut; the rest come nearest first.
	require.Len(t, nearby, 2)
	require.Equal(t, int64(3), nearby[0].ID)
	require.Equal(t, 2.0, nearby[0].Distance)
	require.Equal(t, int64(1), nearby[1].ID)
	require.Equal(t, 5.0, nearby[1].Distance)
}

func TestManagedVariants(t *testing.T) {
	svc := NewService(&fakeRepo{stores: testStores()})
	ctx := context.Background()

	none, err := svc.Managed(ctx, 99)
	require.NoError(t, err)
	require.True(t, none.None())

	single, err := svc.Managed(ctx, 20)
	require.NoError(t, err)
	require.False(t, single.None())
	st, ok := single.Single()
	require.True(t, ok)
	require.Equal(t, int64(3), st.ID)

	multiple, err := svc.Managed(ctx, 10)
	require.NoError(t, err)
	require.False(t, multiple.None())
	_, ok = multiple.Single()
	require.False(t, ok)
	require.Len(t, multiple.Candidates(), 2)

	byID, ok := multiple.ByID(2)
	require.True(t, ok)
	require.Equal(t, int64(2), byID.ID)
	_, ok = multiple.ByID(3)
	require.False(t, ok)
}

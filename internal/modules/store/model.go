package store

import (
	"time"

	"storefront/internal/geo"
)

// Store is a retail location owned by a manager. Read-only in this system;
// rows are referenced by distance ranking and by the inventory workflows.
type Store struct {
	ID              int64     `json:"store_id"`
	ManagerID       int64     `json:"manager_id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	DateEstablished time.Time `json:"date_established"`
}

// Location returns the store's coordinates.
func (s Store) Location() geo.Point {
	return geo.Point{Lat: s.Latitude, Lng: s.Longitude}
}

// NearbyStore is a store annotated with its distance from a reference point.
type NearbyStore struct {
	Store
	Distance float64 `json:"distance"`
}

// ManagedStores classifies how many stores a manager runs. Workflows resolve
// it once at entry: none aborts with a notice, a single store is used
// directly, multiple stores go through nearest-neighbor selection.
type ManagedStores struct {
	Stores []Store
}

// None reports that the manager runs no stores.
func (m ManagedStores) None() bool { return len(m.Stores) == 0 }

// Single returns the sole managed store, if there is exactly one.
func (m ManagedStores) Single() (Store, bool) {
	if len(m.Stores) == 1 {
		return m.Stores[0], true
	}
	return Store{}, false
}

// Candidates converts the managed stores into distance-ranking candidates.
func (m ManagedStores) Candidates() []geo.Candidate {
	cands := make([]geo.Candidate, 0, len(m.Stores))
	for _, s := range m.Stores {
		cands = append(cands, geo.Candidate{ID: s.ID, Pos: s.Location()})
	}
	return cands
}

// ByID returns the managed store with the given id.
func (m ManagedStores) ByID(id int64) (Store, bool) {
	for _, s := range m.Stores {
		if s.ID == id {
			return s, true
		}
	}
	return Store{}, false
}

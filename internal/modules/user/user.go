package user

import "storefront/internal/geo"

// Role classifies what a user is allowed to do.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// User represents an account in the system. The password is an opaque
// credential stored and compared verbatim; the login query matches both
// name and password in a single lookup.
type User struct {
	ID        int64   `json:"user_id"`
	Name      string  `json:"name"`
	Password  string  `json:"-"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Type      Role    `json:"type"`
}

// Location returns the user's registered coordinates.
func (u *User) Location() geo.Point {
	return geo.Point{Lat: u.Latitude, Lng: u.Longitude}
}

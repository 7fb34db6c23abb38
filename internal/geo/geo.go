package geo

import (
	"math"
	"sort"
)

// Point is a raw latitude/longitude pair. Coordinates are treated as planar
// Cartesian values over the bounded range the data uses, so no geodesic
// correction is applied.
type Point struct {
	Lat float64
	Lng float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// Candidate is an identifier with a position, as handed to RankByDistance.
type Candidate struct {
	ID  int64
	Pos Point
}

// Ranked is a candidate annotated with its distance from the reference point.
type Ranked struct {
	ID       int64
	Distance float64
}

// RankByDistance orders candidates ascending by distance from ref.
// Ties keep the original input order.
func RankByDistance(candidates []Candidate, ref Point) []Ranked {
	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Ranked{ID: c.ID, Distance: Distance(c.Pos, ref)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked
}

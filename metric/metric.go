// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Space names the coordinate system of a graph.
type Space int

const (
	// Planar coordinates are Cartesian (x, y); distances are Euclidean.
	Planar Space = iota

	// Geodesic coordinates are (longitude, latitude) in degrees; distances
	// are great-circle kilometres.
	Geodesic
)

// String implements fmt.Stringer.
func (s Space) String() string {
	switch s {
	case Planar:
		return "planar"
	case Geodesic:
		return "geodesic"
	default:
		return fmt.Sprintf("space(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Space) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseSpace.
func (s *Space) UnmarshalText(b []byte) error {
	v, err := ParseSpace(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// ParseSpace is the inverse of Space.String.
func ParseSpace(s string) (Space, error) {
	switch s {
	case "planar", "xy", "":
		return Planar, nil
	case "geodesic", "geo", "latlon":
		return Geodesic, nil
	default:
		return Planar, fmt.Errorf("metric: unknown space %q", s)
	}
}

// Metric computes a non-negative cost between two points of one Space.
type Metric interface {
	// Distance returns the cost between a and b.
	Distance(a, b orb.Point) float64

	// Space reports which coordinate system the points are expected in.
	Space() Space
}

// Haversine is the great-circle metric over orb.Point{lon, lat} in degrees.
// A zero Radius means EarthRadiusKm.
type Haversine struct {
	Radius float64
}

// Distance returns the great-circle distance between a and b in the unit of
// Radius (kilometres by default).
func (h Haversine) Distance(a, b orb.Point) float64 {
	r := h.Radius
	if r == 0 {
		r = EarthRadiusKm
	}
	lat1, lat2 := deg2rad(a.Lat()), deg2rad(b.Lat())
	dLat := lat2 - lat1
	dLon := deg2rad(b.Lon() - a.Lon())

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push s a hair outside [0,1] for antipodal points
	s = math.Min(1, math.Max(0, s))

	return r * 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
}

// Space implements Metric.
func (Haversine) Space() Space { return Geodesic }

// Euclidean is the straight-line metric over Cartesian points.
type Euclidean struct{}

// Distance implements Metric.
func (Euclidean) Distance(a, b orb.Point) float64 { return planar.Distance(a, b) }

// Space implements Metric.
func (Euclidean) Space() Space { return Planar }

// For returns the default Metric for space. Unknown spaces fall back to
// Euclidean.
func For(space Space) Metric {
	if space == Geodesic {
		return Haversine{Radius: EarthRadiusKm}
	}

	return Euclidean{}
}

// LatLon builds a geodesic point. orb stores longitude first.
func LatLon(lat, lon float64) orb.Point { return orb.Point{lon, lat} }

// XY builds a planar point.
func XY(x, y float64) orb.Point { return orb.Point{x, y} }

// Valid reports whether p is a usable coordinate in space: both components
// finite and, for Geodesic, latitude within [-90, 90] and longitude within
// [-180, 180].
func Valid(space Space, p orb.Point) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	if space == Geodesic {
		return p.Lat() >= -90 && p.Lat() <= 90 && p.Lon() >= -180 && p.Lon() <= 180
	}

	return true
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

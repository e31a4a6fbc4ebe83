// SPDX-License-Identifier: MIT

// Package metric provides the distance functions a navigation graph is
// measured with.
//
// What
//
//   - Haversine: great-circle distance on a spherical Earth (mean radius
//     6371 km). Points are orb.Point{lon, lat} in degrees; results are km.
//   - Euclidean: straight-line distance on the plane (orb/planar).
//
// Contract
//
//	Every Metric is non-negative, symmetric (d(a,b) == d(b,a)), zero iff
//	a == b, and satisfies the triangle inequality. Because of that a Metric
//	doubles as an admissible, consistent A* heuristic whenever real segment
//	costs are never below the straight-line distance between their endpoints.
//
// A graph commits to exactly one Space for its whole lifetime; For(space)
// returns the Metric matching that choice.
//
// Usage
//
//	m := metric.For(metric.Geodesic)
//	km := m.Distance(metric.LatLon(41.29, 2.08), metric.LatLon(40.47, -3.56))
package metric

// SPDX-License-Identifier: MIT

// Package airnav is an in-memory navigation network: named points with
// planar or geodesic coordinates, costed segments between them, and
// airports (facilities) with designated departure and arrival points.
//
// What is in the box
//
//	• Graph model: insert points, link segments, register facilities, all
//	  under a single RWMutex so queries run concurrently with loading
//	• Reachability: breadth-first traversal with depth, parent and hooks
//	• Routing: A* with a metric heuristic and authoritative segment costs
//	• Loading: line-oriented point, segment and facility files with
//	  per-line diagnostics instead of silent skips
//	• Output: GeoJSON for paths, points and whole networks
//	• Serving: a JSON/GeoJSON HTTP API with Prometheus metrics
//
// Layout
//
//	metric/    - distance metrics (Euclidean, Haversine) and coordinate spaces
//	core/      - Node, Segment, Facility and the Graph aggregate
//	route/     - Path: ordered nodes with per-segment costs
//	bfs/       - breadth-first reachability
//	astar/     - A* shortest path
//	spatial/   - R-tree viewport index over graph nodes
//	navdata/   - file loaders and the plain graph format
//	export/    - GeoJSON encoding
//	airspace/  - the query surface used by the CLI and the server
//	server/    - HTTP API
//	config/    - env, .env and flag configuration
//	cmd/airnav - command-line entry point
//
// Quick start
//
//	g := core.NewGraph(core.WithSpace(metric.Geodesic))
//	_ = g.Insert(core.NewNode(1, "LEBL.D", metric.LatLon(41.297, 2.083)))
//	_ = g.Insert(core.NewNode(2, "LEMD.A", metric.LatLon(40.480, -3.570)))
//	_, _ = g.Link(1, 2, core.WithCost(510))
//
//	p, err := astar.ShortestPath(g, "LEBL.D", "LEMD.A")
//	fmt.Println(p, err) // LEBL.D -> LEMD.A (Total cost: 510.00) <nil>
//
// See examples/ for runnable scenarios.
package airnav

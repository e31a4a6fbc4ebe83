// SPDX-License-Identifier: MIT

// Package core provides the in-memory navigation network that the traversal
// engines (bfs, astar) run over.
//
// The Graph G = (V, E) holds:
//
//   - Nodes: ID (adjacency key), Name (unique lookup handle), Coord in the
//     graph Space, and an ordered neighbor list.
//   - Segments: one record per link with a fixed non-negative Cost.
//   - Facilities: per-site ordered departure/arrival point lists (metadata).
//
// Configuration Options (GraphOption):
//
//	– WithSpace(metric.Planar | metric.Geodesic)
//	    Chooses coordinates and metric for the graph lifetime (default Planar).
//
//	– WithMetric(m)
//	    Installs a custom metric.Metric.
//
//	– WithDirected(true)
//	    Link creates only from→to adjacency. By default adjacency is symmetric:
//	    Link(A, B) makes B a neighbor of A and A a neighbor of B.
//
// Segment options:
//
//	– WithCost(c)
//	    Authoritative cost from source data. Without it the cost is the metric
//	    distance between the endpoints.
//
// Core Methods:
//
//	// Nodes
//	Insert(n *Node) error                 // O(1)
//	AddNode(n *Node) bool                 // O(1), false on duplicate or attached node
//	AddNodeAt(coord orb.Point) *Node      // O(1), auto-named "N<k>"
//	FindByName(name string) (*Node, bool) // O(1), exact match
//	Node(id int64) (*Node, bool)          // O(1)
//	Closest(coord orb.Point) (*Node, bool)// O(V), first inserted wins ties
//
//	// Links
//	Link(from, to int64, opts...) (*Segment, error) // O(1)
//	Connect(a, b string, opts...) bool              // O(1)
//	ConnectByID(a, b int64, opts...) bool           // O(1)
//	Cost(from, to int64) float64                    // O(1)
//
//	// Adjacency
//	Neighbors(id int64) []*Node      // O(d), insertion order
//	NeighborIDs(id int64) []int64    // O(d), insertion order
//	Adjacent(from, to int64) bool    // O(1)
//
// Failure semantics: the boolean forms never panic and return false on
// missing endpoints, duplicates or self links; the error forms carry the
// matching sentinel so loaders can report why a record was dropped.
//
// Concurrency: a Graph is safe for concurrent use. Queries take a read lock,
// mutators a write lock. Traversals never mutate the graph.
package core

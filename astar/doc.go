// Package astar finds minimum-cost routes between two named nodes of a
// core.Graph with best-first A* search.
//
// What
//
//   - Frontier of candidate routes ordered by f = g + h, where g is the real
//     cost accumulated so far and h is the graph metric from the route's last
//     node to the destination.
//   - Ties on f are broken by smaller g, then by insertion order, so results
//     are reproducible for a given load order.
//   - A node is expanded at most once per best-known g (closed map of node ID
//     to the g it was expanded with); a candidate never revisits a node
//     already on its own route.
//   - Segment costs come from core.Graph.Cost: the authoritative cost when the
//     segment carries one, otherwise the metric. WithMetricCosts forces the
//     metric for every hop.
//
// Optimality
//
//	With metric-only costs the heuristic is consistent (it obeys the triangle
//	inequality), so the first route popped at the destination is optimal.
//	Authoritative costs that are smaller than the metric distance between their
//	endpoints make the heuristic optimistic-by-too-much and can yield a
//	near-optimal route instead.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:  O((V + E) log(V + E)) with the closed map pruning re-expansions.
//   - Space: O(V + E) heap entries, each a copy-on-branch route.
//
// Errors
//
//   - ErrGraphNil         nil graph pointer.
//   - ErrNoPath           unknown origin or destination, or no route.
//   - ErrOptionViolation  invalid MaxCost or impassable threshold.
//   - context errors      on cancellation through WithContext.
package astar

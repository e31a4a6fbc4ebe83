// Package bfs answers reachability queries over a core.Graph with a
// breadth-first walk that ignores segment costs.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Return a Result containing:
//   - Order: nodes in visit sequence, start first
//   - Depth: node ID → hops from the start
//   - Parent: node ID → predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue and OnVisit (which may abort).
//   - Neighbor pruning via WithFilterNeighbor and a MaxDepth cap.
//
// Determinism
//
//	Neighbors are taken in the order their links were created, so the visit
//	sequence is reproducible for a given load order. A node is marked visited
//	the moment it is enqueued; the resulting order is identical to marking on
//	dequeue, without duplicate queue entries.
//
// Unknown start
//
//	A start name that is not in the graph yields an empty Result and a nil
//	error: "nothing is reachable" is a valid answer, not a failure.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "LEBL", bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrOptionViolation, context errors or hook errors
//	}
//	for _, n := range res.Order { ... }
package bfs

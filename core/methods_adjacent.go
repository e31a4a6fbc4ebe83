// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries used by the traversal engines.
//
// Determinism:
//   - Neighbors/NeighborIDs return neighbors in the order links were made;
//     BFS visitation order and A* expansion order depend on it.
//
// Concurrency:
//   - Read lock only; returned slices are fresh copies.

package core

// NeighborIDs returns the IDs adjacent to id in insertion order, or nil for
// an unknown id.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id int64) []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok || len(n.adj) == 0 {
		return nil
	}
	out := make([]int64, len(n.adj))
	copy(out, n.adj)

	return out
}

// Neighbors returns the nodes adjacent to id in insertion order, or nil for
// an unknown id.
// Complexity: O(d).
func (g *Graph) Neighbors(id int64) []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok || len(n.adj) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(n.adj))
	for _, nid := range n.adj {
		out = append(out, g.nodes[nid])
	}

	return out
}

// Adjacent reports whether to is a neighbor of from. Membership is by ID.
// Complexity: O(1).
func (g *Graph) Adjacent(from, to int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[from]
	if !ok {
		return false
	}
	_, ok = n.adjSet[to]

	return ok
}

// Degree returns the number of neighbors of id (0 for unknown ids).
func (g *Graph) Degree(id int64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return len(n.adj)
	}

	return 0
}

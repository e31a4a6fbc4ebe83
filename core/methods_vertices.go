// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & lookups.
//
// Determinism:
//   - Nodes() and Closest() walk nodes in insertion order.
//
// Concurrency:
//   - Insert/AddNode/AddNodeAt take the write lock; lookups take the read lock.

package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/airnav/metric"
)

const autoNamePrefix = "N"

// Insert adds n to the graph.
//
// Implementation:
//   - Stage 1: Validate n (nil, empty name, coordinate valid for the graph Space).
//   - Stage 2: Under the write lock reject duplicate names, then duplicate IDs.
//   - Stage 3: Register n in the id and name indexes and append it to the insertion order.
//
// Behavior highlights:
//   - Duplicates are rejected by name first (the lookup handle), then by ID
//     (the adjacency key); the stored node is never replaced.
//   - A Node belongs to at most one Graph: a node that was already
//     inserted (here or elsewhere) is rejected, so another graph's
//     adjacency is never reset.
//
// Errors:
//   - ErrNilNode, ErrEmptyName, ErrBadCoordinate, ErrNodeAttached,
//     ErrDuplicateName, ErrDuplicateID.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) Insert(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Name == "" {
		return ErrEmptyName
	}
	if !metric.Valid(g.metric.Space(), n.Coord) {
		return fmt.Errorf("%w: %q at %v", ErrBadCoordinate, n.Name, n.Coord)
	}

	if n.adjSet != nil {
		return fmt.Errorf("%w: %q", ErrNodeAttached, n.Name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.byName[n.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, n.Name)
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, n.ID)
	}
	g.insertLocked(n)

	return nil
}

// AddNode inserts n unless a node of the same name (or ID) already exists.
// It reports whether n was inserted.
func (g *Graph) AddNode(n *Node) bool {
	return g.Insert(n) == nil
}

// AddNodeAt creates a node at coord with a fresh ID and a generated name
// "N<k>", skipping names already taken. It returns nil if coord is invalid
// for the graph Space.
// Complexity: O(1) amortized.
func (g *Graph) AddNodeAt(coord orb.Point) *Node {
	if !metric.Valid(g.metric.Space(), coord) {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	k := len(g.order) + 1
	name := autoNamePrefix + strconv.Itoa(k)
	for {
		if _, taken := g.byName[name]; !taken {
			break
		}
		k++
		name = autoNamePrefix + strconv.Itoa(k)
	}
	n := &Node{ID: g.nextNodeID + 1, Name: name, Coord: coord}
	g.insertLocked(n)

	return n
}

// insertLocked registers n and marks it attached. Caller holds the write lock.
func (g *Graph) insertLocked(n *Node) {
	n.adjSet = make(map[int64]struct{})
	g.nodes[n.ID] = n
	g.byName[n.Name] = n
	g.order = append(g.order, n.ID)
	if n.ID > g.nextNodeID {
		g.nextNodeID = n.ID
	}
}

// FindByName returns the node whose Name equals name exactly (no trimming,
// no case folding). Repeated calls return the same *Node.
// Complexity: O(1).
func (g *Graph) FindByName(name string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.byName[name]

	return n, ok
}

// Node returns the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id int64) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether a node with the given name exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.FindByName(name)

	return ok
}

// Nodes returns all nodes in insertion order. The slice is a fresh copy; the
// *Node values are shared.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Closest returns the node nearest to coord under the graph metric.
//
// Implementation:
//   - Linear scan in insertion order keeping the first strict minimum, so
//     ties resolve to the earliest inserted node.
//
// Returns:
//   - (*Node, true) on a non-empty graph, (nil, false) otherwise.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Closest(coord orb.Point) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var best *Node
	bestDist := math.Inf(1)
	for _, id := range g.order {
		n := g.nodes[id]
		if d := g.metric.Distance(n.Coord, coord); d < bestDist {
			best, bestDist = n, d
		}
	}

	return best, best != nil
}

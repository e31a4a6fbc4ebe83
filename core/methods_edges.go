// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Segment creation and cost lookup.
//
// Policy:
//   - A segment is accepted only when both endpoints already exist; otherwise
//     nothing is stored and no adjacency is created.
//   - Cost is authoritative when supplied (WithCost), else the graph metric.
//     Once stored it never changes.

package core

import (
	"fmt"
	"math"
	"strconv"
)

const segmentIDPrefix = "s"

// Link connects the node fromID to the node toID and records a Segment.
//
// Implementation:
//   - Stage 1: Apply options and validate an explicit cost (ErrBadCost).
//   - Stage 2: Under the write lock resolve both endpoints (ErrNodeNotFound),
//     reject self links (ErrSelfLink) and existing adjacency (ErrAlreadyConnected).
//   - Stage 3: Append to.ID to from's neighbor list and, unless the graph is
//     directed, from.ID to to's neighbor list; store the Segment once.
//
// Behavior highlights:
//   - In an undirected graph a reverse link (to→from) of an existing one is
//     rejected with ErrAlreadyConnected, so reverse duplicates in source data
//     never create a second Segment.
//
// Returns:
//   - *Segment: the stored segment.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) Link(fromID, toID int64, opts ...SegmentOption) (*Segment, error) {
	var cfg segmentConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasCost && (cfg.cost < 0 || math.IsNaN(cfg.cost) || math.IsInf(cfg.cost, 0)) {
		return nil, fmt.Errorf("%w: %v", ErrBadCost, cfg.cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.nodes[fromID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, fromID)
	}
	to, ok := g.nodes[toID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, toID)
	}
	if fromID == toID {
		return nil, fmt.Errorf("%w: %q", ErrSelfLink, from.Name)
	}
	if _, dup := from.adjSet[toID]; dup {
		return nil, fmt.Errorf("%w: %q → %q", ErrAlreadyConnected, from.Name, to.Name)
	}

	cost := cfg.cost
	if !cfg.hasCost {
		cost = g.metric.Distance(from.Coord, to.Coord)
	}
	g.nextSegID++
	seg := &Segment{
		ID:            segmentIDPrefix + strconv.FormatUint(g.nextSegID, 10),
		From:          fromID,
		To:            toID,
		Cost:          cost,
		Authoritative: cfg.hasCost,
		Directed:      g.directed,
	}

	addNeighbor(from, toID)
	if !g.directed {
		addNeighbor(to, fromID)
	}
	g.segments = append(g.segments, seg)
	g.segIndex[segKey{fromID, toID}] = seg

	return seg, nil
}

// Connect links the nodes named a and b. It reports whether a link was made;
// it is a no-op when either name is unknown, a == b, or b is already a
// neighbor of a.
func (g *Graph) Connect(a, b string, opts ...SegmentOption) bool {
	na, okA := g.FindByName(a)
	nb, okB := g.FindByName(b)
	if !okA || !okB {
		return false
	}
	_, err := g.Link(na.ID, nb.ID, opts...)

	return err == nil
}

// ConnectByID is Connect addressed by node IDs.
func (g *Graph) ConnectByID(a, b int64, opts ...SegmentOption) bool {
	_, err := g.Link(a, b, opts...)

	return err == nil
}

// addNeighbor appends id to n's adjacency. Caller holds the write lock and
// has checked membership.
func addNeighbor(n *Node, id int64) {
	if n.adjSet == nil {
		n.adjSet = make(map[int64]struct{})
	}
	n.adj = append(n.adj, id)
	n.adjSet[id] = struct{}{}
}

// Segment returns the stored segment joining from and to. For undirected
// segments the lookup succeeds in either direction.
// Complexity: O(1).
func (g *Graph) Segment(from, to int64) (*Segment, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.segmentLocked(from, to)
}

func (g *Graph) segmentLocked(from, to int64) (*Segment, bool) {
	if s, ok := g.segIndex[segKey{from, to}]; ok {
		return s, true
	}
	if s, ok := g.segIndex[segKey{to, from}]; ok && !s.Directed {
		return s, true
	}

	return nil, false
}

// Segments returns all segments in insertion order.
// Complexity: O(E).
func (g *Graph) Segments() []*Segment {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Segment, len(g.segments))
	copy(out, g.segments)

	return out
}

// SegmentCount returns the number of stored segments. O(1).
func (g *Graph) SegmentCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.segments)
}

// Cost returns the cost of moving from one node to another: the stored
// segment cost when a segment joins them, otherwise the metric distance.
// Unknown IDs yield +Inf.
// Complexity: O(1).
func (g *Graph) Cost(from, to int64) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if s, ok := g.segmentLocked(from, to); ok {
		return s.Cost
	}
	a, okA := g.nodes[from]
	b, okB := g.nodes[to]
	if !okA || !okB {
		return math.Inf(1)
	}

	return g.metric.Distance(a.Coord, b.Coord)
}

// Distance returns the metric distance between two nodes.
func (g *Graph) Distance(a, b *Node) float64 {
	return g.metric.Distance(a.Coord, b.Coord)
}

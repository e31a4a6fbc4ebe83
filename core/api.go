// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters, statistics and whole-graph reset.
// Policy:
//   - No algorithms here.
//   - Configuration (metric, directedness) is immutable after NewGraph.

package core

import "github.com/katalvlaran/airnav/metric"

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Space         metric.Space
	Directed      bool
	NodeCount     int
	SegmentCount  int
	Authoritative int // segments whose cost came from source data
	FacilityCount int
}

// Metric returns the graph's distance metric.
func (g *Graph) Metric() metric.Metric {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.metric
}

// Space reports the graph's coordinate space.
func (g *Graph) Space() metric.Space {
	return g.Metric().Space()
}

// Directed reports whether Link creates one-way adjacency.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Stats produces a consistent snapshot of counts and configuration.
//
// Complexity:
//   - Time O(E) (counts authoritative segments), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Space:         g.metric.Space(),
		Directed:      g.directed,
		NodeCount:     len(g.order),
		SegmentCount:  len(g.segments),
		FacilityCount: len(g.facilities),
	}
	for _, s := range g.segments {
		if s.Authoritative {
			st.Authoritative++
		}
	}

	return st
}

// Clear resets the graph to empty (nodes, segments, facilities, counters)
// while preserving metric and directedness. Nodes handed out before Clear
// keep their adjacency, no longer belong to g and cannot be inserted again.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextNodeID = 0
	g.nextSegID = 0
	g.order = nil
	g.nodes = make(map[int64]*Node)
	g.byName = make(map[string]*Node)
	g.segments = nil
	g.segIndex = make(map[segKey]*Segment)
	g.facilities = nil
	g.facByCode = make(map[string]*Facility)
}

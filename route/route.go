// SPDX-License-Identifier: MIT

// Package route defines Path, the ordered node sequence a shortest-path query
// returns, together with its accumulated and per-segment costs.
//
// A Path is built either by validated appends (AddNode, which requires each
// new node to be adjacent to the current last node) or by copy-on-branch
// (Branch, used by search engines that only ever extend a path with a
// neighbor read from the graph). A finished Path is treated as read-only;
// every accessor returns copies.
package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/airnav/core"
)

// Adjacency answers whether to is a neighbor of from. *core.Graph implements it.
type Adjacency interface {
	Adjacent(from, to int64) bool
}

// Path is an ordered node sequence with running cost.
//
// costs[i] is the cost of the segment that reached nodes[i]; costs[0] is the
// cost recorded for the first node (zero for paths seeded by New).
type Path struct {
	nodes []*core.Node
	costs []float64
	cost  float64
}

// New returns a path seeded with start, or an empty path when start is nil.
func New(start *core.Node) *Path {
	p := &Path{}
	if start != nil {
		p.nodes = []*core.Node{start}
		p.costs = []float64{0}
	}

	return p
}

// AddNode appends n reached through a segment of the given cost.
//
// The first node of an empty path is always accepted. Afterwards n must be a
// neighbor of the last node according to adj. A nil node, a nil adj on a
// non-empty path, or a negative cost is rejected. It reports whether n was
// appended.
func (p *Path) AddNode(adj Adjacency, n *core.Node, cost float64) bool {
	if n == nil || cost < 0 {
		return false
	}
	if len(p.nodes) > 0 {
		if adj == nil || !adj.Adjacent(p.nodes[len(p.nodes)-1].ID, n.ID) {
			return false
		}
	}
	p.push(n, cost)

	return true
}

// Branch returns a copy of p extended by n. It does not check adjacency:
// callers must have taken n from the graph's neighbor list of p.Last().
// p itself is left untouched.
func (p *Path) Branch(n *core.Node, cost float64) *Path {
	out := &Path{
		nodes: make([]*core.Node, len(p.nodes), len(p.nodes)+1),
		costs: make([]float64, len(p.costs), len(p.costs)+1),
		cost:  p.cost,
	}
	copy(out.nodes, p.nodes)
	copy(out.costs, p.costs)
	out.push(n, cost)

	return out
}

func (p *Path) push(n *core.Node, cost float64) {
	p.nodes = append(p.nodes, n)
	p.costs = append(p.costs, cost)
	p.cost += cost
}

// Clone returns a structural copy sharing no mutable state with p.
func (p *Path) Clone() *Path {
	return &Path{
		nodes: append([]*core.Node(nil), p.nodes...),
		costs: append([]float64(nil), p.costs...),
		cost:  p.cost,
	}
}

// Len returns the number of nodes.
func (p *Path) Len() int { return len(p.nodes) }

// Empty reports whether the path has no nodes.
func (p *Path) Empty() bool { return len(p.nodes) == 0 }

// Cost returns the accumulated real cost.
func (p *Path) Cost() float64 { return p.cost }

// First returns the first node or nil.
func (p *Path) First() *core.Node {
	if len(p.nodes) == 0 {
		return nil
	}

	return p.nodes[0]
}

// Last returns the last node or nil.
func (p *Path) Last() *core.Node {
	if len(p.nodes) == 0 {
		return nil
	}

	return p.nodes[len(p.nodes)-1]
}

// Nodes returns the node sequence.
func (p *Path) Nodes() []*core.Node {
	return append([]*core.Node(nil), p.nodes...)
}

// Names returns the node names in order.
func (p *Path) Names() []string {
	out := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		out[i] = n.Name
	}

	return out
}

// SegmentCosts returns the cost of each hop: element i is the cost of moving
// from node i to node i+1. A single-node path has no hops.
func (p *Path) SegmentCosts() []float64 {
	if len(p.costs) <= 1 {
		return nil
	}

	return append([]float64(nil), p.costs[1:]...)
}

// Contains reports whether a node with the given ID is on the path.
func (p *Path) Contains(id int64) bool {
	for _, n := range p.nodes {
		if n.ID == id {
			return true
		}
	}

	return false
}

// CostTo returns the accumulated cost from the start up to and including the
// first occurrence of node id, by re-summing the prefix segment costs.
func (p *Path) CostTo(id int64) (float64, bool) {
	sum := 0.0
	for i, n := range p.nodes {
		sum += p.costs[i]
		if n.ID == id {
			return sum, true
		}
	}

	return 0, false
}

// String renders "A -> B -> C (Total cost: 5.00)" for diagnostics.
func (p *Path) String() string {
	if p == nil || len(p.nodes) == 0 {
		return "Empty Path"
	}

	return fmt.Sprintf("%s (Total cost: %.2f)", strings.Join(p.Names(), " -> "), p.cost)
}

// SPDX-License-Identifier: MIT

// Package spatial indexes graph nodes in an R-tree for viewport queries:
// "which points fall inside this rectangle", as a map view needs before
// drawing.
package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/airnav/core"
)

// pointTol is the half-width given to each point's box; rtreego rejects
// zero-extent rectangles.
const pointTol = 1e-9

// nodeEntry wraps a node for R-tree storage.
type nodeEntry struct {
	node *core.Node
	seq  int // graph insertion order
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.box }

// Index is an immutable snapshot of node positions.
type Index struct {
	tree *rtreego.Rtree
}

// New builds an index over every node currently in g.
// Nodes added to g afterwards are not seen.
func New(g *core.Graph) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for i, n := range g.Nodes() {
		tree.Insert(&nodeEntry{
			node: n,
			seq:  i,
			box:  rtreego.Point{n.Coord.X(), n.Coord.Y()}.ToRect(pointTol),
		})
	}

	return &Index{tree: tree}
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.tree.Size() }

// Within returns the nodes whose coordinate lies inside b (edges inclusive),
// in graph insertion order.
func (ix *Index) Within(b orb.Bound) []*core.Node {
	query, err := rtreego.NewRect(
		rtreego.Point{b.Min.X() - pointTol, b.Min.Y() - pointTol},
		[]float64{b.Max.X() - b.Min.X() + 2*pointTol, b.Max.Y() - b.Min.Y() + 2*pointTol},
	)
	if err != nil {
		return nil
	}

	hits := ix.tree.SearchIntersect(query)
	entries := make([]*nodeEntry, 0, len(hits))
	for _, h := range hits {
		e := h.(*nodeEntry)
		if b.Contains(e.node.Coord) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]*core.Node, len(entries))
	for i, e := range entries {
		out[i] = e.node
	}

	return out
}

// Around returns the nodes within a square of half-side r centred on p.
func (ix *Index) Around(p orb.Point, r float64) []*core.Node {
	return ix.Within(orb.Bound{
		Min: orb.Point{p.X() - r, p.Y() - r},
		Max: orb.Point{p.X() + r, p.Y() + r},
	})
}

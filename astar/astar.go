package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/route"
)

// ShortestPath returns the minimum-cost route from the node named origin to
// the node named destination.
//
// origin == destination yields a single-node, zero-cost route. Unknown
// names and disconnected pairs yield ErrNoPath wrapped with the names.
//
// Implementation:
//
//	Stage 1: resolve both endpoints and apply options.
//	Stage 2: seed the frontier with the origin (g = 0, f = h(origin)).
//	Stage 3: pop the best candidate; stop when its last node is the
//	         destination; skip it when that node was already expanded with
//	         an equal or better g; otherwise push one branch per neighbor
//	         not already on the candidate.
func ShortestPath(g *core.Graph, origin, destination string, opts ...Option) (*route.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	from, ok := g.FindByName(origin)
	if !ok {
		return nil, fmt.Errorf("%w: unknown origin %q", ErrNoPath, origin)
	}
	to, ok := g.FindByName(destination)
	if !ok {
		return nil, fmt.Errorf("%w: unknown destination %q", ErrNoPath, destination)
	}

	r := &runner{
		g:      g,
		opts:   cfg,
		dest:   to,
		closed: make(map[int64]float64, g.NodeCount()),
	}
	heap.Init(&r.pq)
	r.push(route.New(from), 0)

	p, err := r.process()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, origin, destination)
	}

	return p, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g      *core.Graph
	opts   Options
	dest   *core.Node
	closed map[int64]float64 // node ID → g it was expanded with
	pq     frontier
	seq    uint64
}

func (r *runner) push(p *route.Path, gCost float64) {
	r.seq++
	heap.Push(&r.pq, &candidate{
		path: p,
		g:    gCost,
		f:    gCost + r.g.Distance(p.Last(), r.dest),
		seq:  r.seq,
	})
}

// process runs the main loop; it returns (nil, nil) when the frontier drains.
func (r *runner) process() (*route.Path, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		c := heap.Pop(&r.pq).(*candidate)
		last := c.path.Last()
		if last.ID == r.dest.ID {
			return c.path, nil
		}
		if best, seen := r.closed[last.ID]; seen && best <= c.g {
			continue
		}
		r.closed[last.ID] = c.g
		r.opts.OnExpand(last, c.g)
		r.expand(c, last)
	}

	return nil, nil
}

// expand pushes one branch per admissible neighbor of last.
func (r *runner) expand(c *candidate, last *core.Node) {
	for _, nbr := range r.g.Neighbors(last.ID) {
		if c.path.Contains(nbr.ID) {
			continue
		}
		cost := r.hopCost(last, nbr)
		if cost >= r.opts.Impassable {
			continue
		}
		next := c.g + cost
		if next > r.opts.MaxCost {
			continue
		}
		if best, seen := r.closed[nbr.ID]; seen && best <= next {
			continue
		}
		r.push(c.path.Branch(nbr, cost), next)
	}
}

func (r *runner) hopCost(from, to *core.Node) float64 {
	if r.opts.MetricCosts {
		return r.g.Distance(from, to)
	}

	return r.g.Cost(from.ID, to.ID)
}

// candidate is a frontier entry: a partial route with its costs.
type candidate struct {
	path *route.Path
	g    float64 // real cost so far
	f    float64 // g + heuristic to destination
	seq  uint64  // insertion order, final tie-break
}

// frontier is a min-heap of candidates ordered by (f, g, seq).
type frontier []*candidate

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}

	return a.seq < b.seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

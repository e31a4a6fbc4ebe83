package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/airnav/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int64]bool
	res     *Result
}

// BFS runs breadth-first search on g from the node named start.
//
// An unknown start yields an empty Result and a nil error. Errors are
// ErrGraphNil, ErrOptionViolation, the context's error on cancellation, or a
// wrapped OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{
		Order:  []*core.Node{},
		Depth:  map[int64]int{},
		Parent: map[int64]int64{},
		byID:   map[int64]*core.Node{},
	}
	root, ok := g.FindByName(start)
	if !ok {
		return res, nil
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int64]bool, n),
		res:     res,
	}
	w.enqueue(root, 0, nil)

	return w.res, w.loop()
}

// Reachable returns every node reachable from name (itself included) in
// visit order, or nil when name is unknown.
func Reachable(g *core.Graph, name string) []*core.Node {
	res, err := BFS(g, name)
	if err != nil || len(res.Order) == 0 {
		return nil
	}

	return res.Order
}

// enqueue marks n visited at depth d, records its parent and calls OnEnqueue.
func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	w.visited[n.ID] = true
	w.res.Depth[n.ID] = d
	w.res.byID[n.ID] = n
	if parent != nil {
		w.res.Parent[n.ID] = parent.ID
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.node.Name, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.node.ID) {
		if w.visited[nbr.ID] || !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.node)
	}
}

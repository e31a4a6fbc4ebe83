// Package bfs provides tunable options and error definitions
// for breadth-first reachability over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/airnav/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for nodes outside the BFS tree.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth from the start.
	OnEnqueue func(n *core.Node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n *core.Node, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n *core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip links by returning false.
	FilterNeighbor func(curr, neighbor *core.Node) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(*core.Node, int) {},
		OnDequeue:      func(*core.Node, int) {},
		OnVisit:        func(*core.Node, int) error { return nil },
		FilterNeighbor: func(_, _ *core.Node) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(n *core.Node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(n *core.Node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n *core.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor *core.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists visited nodes in visit sequence; empty for an unknown start.
	Order []*core.Node

	// Depth maps node ID to its hop count from the start.
	Depth map[int64]int

	// Parent maps node ID to its predecessor; the start has no entry.
	Parent map[int64]int64

	byID map[int64]*core.Node
}

// Names returns the visited node names in visit order.
func (r *Result) Names() []string {
	out := make([]string, len(r.Order))
	for i, n := range r.Order {
		out[i] = n.Name
	}

	return out
}

// Reached reports whether the node with the given ID was visited.
func (r *Result) Reached(id int64) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo reconstructs the fewest-hop node sequence from the start to id.
func (r *Result) PathTo(id int64) ([]*core.Node, error) {
	if !r.Reached(id) {
		return nil, fmt.Errorf("%w: id %d", ErrNotReached, id)
	}
	var path []*core.Node
	for cur := id; ; {
		path = append(path, r.byID[cur])
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

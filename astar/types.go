package astar

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/airnav/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrNoPath indicates that no route connects origin and destination,
	// including the case where either name is unknown.
	ErrNoPath = errors.New("astar: no path")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures a single ShortestPath call.
//
// MaxCost       - candidates whose accumulated cost exceeds it are dropped.
// Impassable    - segments costing >= this value are never traversed.
// MetricCosts   - ignore authoritative segment costs and use the metric.
// OnExpand      - called once per node expansion with the node and its g.
type Options struct {
	Ctx         context.Context
	MaxCost     float64
	Impassable  float64
	MetricCosts bool
	OnExpand    func(n *core.Node, g float64)

	err error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns unbounded options with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxCost:    math.Inf(1),
		Impassable: math.Inf(1),
		OnExpand:   func(*core.Node, float64) {},
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

// WithMaxCost caps the accumulated route cost. Negative or NaN values are
// recorded as ErrOptionViolation.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithImpassable treats segments whose cost is >= t as closed.
// t must be positive.
func WithImpassable(t float64) Option {
	return func(o *Options) {
		if !(t > 0) {
			o.err = fmt.Errorf("%w: impassable threshold must be positive (%v)", ErrOptionViolation, t)
			return
		}
		o.Impassable = t
	}
}

// WithMetricCosts prices every hop by the graph metric, ignoring
// authoritative segment costs.
func WithMetricCosts() Option {
	return func(o *Options) { o.MetricCosts = true }
}

// WithOnExpand registers a hook called for every expanded node.
func WithOnExpand(fn func(n *core.Node, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

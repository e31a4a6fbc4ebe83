// SPDX-License-Identifier: MIT

// Package airspace is the query surface over a loaded navigation network:
// reachability, shortest routes (point to point and facility to facility),
// nearest point, name lookup and viewport queries.
//
// An Airspace is read-only once built. Every query allocates its own search
// state, so concurrent queries need no coordination.
package airspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/airnav/astar"
	"github.com/katalvlaran/airnav/bfs"
	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/navdata"
	"github.com/katalvlaran/airnav/route"
	"github.com/katalvlaran/airnav/spatial"
)

// ErrNoFacilityRoute is returned when no departure point of the origin
// facility reaches any arrival point of the destination facility.
var ErrNoFacilityRoute = errors.New("airspace: no route between facilities")

// Airspace wraps a graph with query helpers.
type Airspace struct {
	g           *core.Graph
	logger      *slog.Logger
	metricCosts bool

	indexOnce sync.Once
	index     *spatial.Index
}

// Option configures an Airspace.
type Option func(*Airspace)

// WithLogger sets the logger for query tracing. A nil logger silences it.
func WithLogger(l *slog.Logger) Option {
	return func(a *Airspace) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		a.logger = l
	}
}

// WithMetricCosts prices routes by the metric alone, ignoring costs
// supplied by the navigation data.
func WithMetricCosts() Option {
	return func(a *Airspace) { a.metricCosts = true }
}

// New wraps g. g must not be mutated afterwards.
func New(g *core.Graph, opts ...Option) *Airspace {
	a := &Airspace{g: g, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Load reads navigation sources and wraps the resulting graph.
// The logger given via WithLogger is shared with the loader.
func Load(src navdata.Sources, opts ...Option) (*Airspace, *navdata.Report, error) {
	a := New(nil, opts...)
	g, rep, err := navdata.Load(src, navdata.WithLogger(a.logger))
	if err != nil {
		return nil, nil, err
	}
	a.g = g

	return a, rep, nil
}

// Graph returns the underlying graph.
func (a *Airspace) Graph() *core.Graph { return a.g }

// Stats returns graph counters.
func (a *Airspace) Stats() core.GraphStats { return a.g.Stats() }

// FindByName resolves a point by exact name.
func (a *Airspace) FindByName(name string) (*core.Node, bool) { return a.g.FindByName(name) }

// ClosestTo returns the point nearest to coord under the graph metric.
func (a *Airspace) ClosestTo(coord orb.Point) (*core.Node, bool) { return a.g.Closest(coord) }

// ReachableFrom lists every point reachable from name, itself first, in
// breadth-first order. Unknown names yield nil.
func (a *Airspace) ReachableFrom(name string) []*core.Node {
	return bfs.Reachable(a.g, name)
}

// ShortestPath returns the cheapest route between two named points, or
// false when either is unknown or they are not connected.
func (a *Airspace) ShortestPath(origin, destination string) (*route.Path, bool) {
	p, err := a.Route(context.Background(), origin, destination)
	if err != nil {
		return nil, false
	}

	return p, true
}

// Route is ShortestPath with cancellation and the underlying error.
// A missing route is reported as astar.ErrNoPath.
func (a *Airspace) Route(ctx context.Context, origin, destination string) (*route.Path, error) {
	opts := []astar.Option{astar.WithContext(ctx)}
	if a.metricCosts {
		opts = append(opts, astar.WithMetricCosts())
	}

	expanded := 0
	opts = append(opts, astar.WithOnExpand(func(*core.Node, float64) { expanded++ }))

	p, err := astar.ShortestPath(a.g, origin, destination, opts...)
	if err != nil {
		a.logger.DebugContext(ctx, "airspace: route failed",
			slog.String("from", origin),
			slog.String("to", destination),
			slog.Int("expanded", expanded),
			slog.String("error", err.Error()),
		)

		return nil, err
	}
	a.logger.DebugContext(ctx, "airspace: route",
		slog.String("from", origin),
		slog.String("to", destination),
		slog.Int("hops", p.Len()-1),
		slog.Float64("cost", p.Cost()),
		slog.Int("expanded", expanded),
	)

	return p, nil
}

// FacilityRoute returns the cheapest route from any departure point of
// facility from to any arrival point of facility to. Pairs are tried in
// load order; the first minimum wins.
func (a *Airspace) FacilityRoute(ctx context.Context, from, to string) (*route.Path, error) {
	src, ok := a.g.Facility(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrFacilityNotFound, from)
	}
	dst, ok := a.g.Facility(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrFacilityNotFound, to)
	}

	var best *route.Path
	bestCost := math.Inf(1)
	for _, d := range src.Departures {
		for _, arr := range dst.Arrivals {
			p, err := a.Route(ctx, d.Name, arr.Name)
			switch {
			case errors.Is(err, astar.ErrNoPath):
				continue
			case err != nil:
				return nil, err
			}
			if p.Cost() < bestCost {
				best, bestCost = p, p.Cost()
			}
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoFacilityRoute, from, to)
	}

	return best, nil
}

// Within returns the points inside b in load order. The spatial index is
// built on first use.
func (a *Airspace) Within(b orb.Bound) []*core.Node {
	a.indexOnce.Do(func() { a.index = spatial.New(a.g) })

	return a.index.Within(b)
}

// Facility returns the facility registered under code.
func (a *Airspace) Facility(code string) (*core.Facility, bool) { return a.g.Facility(code) }

// Facilities returns all facilities in load order.
func (a *Airspace) Facilities() []*core.Facility { return a.g.Facilities() }

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Segment, Facility and Graph declarations, options, sentinel errors.
// Concurrency:
//   - A single sync.RWMutex (mu) guards every Graph field. Mutators take the
//     write lock, queries the read lock; no method holds it across a callback.

// Package core defines the navigation network model: points (Node), costed
// links (Segment), facilities with departure/arrival points (Facility) and the
// Graph aggregate that owns them.
//
// Errors:
//
//	ErrNilNode          - node pointer is nil.
//	ErrEmptyName        - node name is empty.
//	ErrDuplicateName    - a node with the same name already exists.
//	ErrDuplicateID      - a node with the same ID already exists.
//	ErrNodeAttached     - the node was already inserted into a graph.
//	ErrBadCoordinate    - coordinate is not valid for the graph's Space.
//	ErrNodeNotFound     - a referenced node does not exist.
//	ErrSelfLink         - both endpoints of a link are the same node.
//	ErrAlreadyConnected - the destination is already adjacent to the origin.
//	ErrBadCost          - explicit segment cost is negative or NaN.
//	ErrFacilityNotFound - a referenced facility code does not exist.
package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/airnav/metric"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates a nil *Node was passed to Insert.
	ErrNilNode = errors.New("core: node is nil")

	// ErrEmptyName indicates the node has an empty Name.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateName indicates a node with the same Name is already present.
	ErrDuplicateName = errors.New("core: duplicate node name")

	// ErrDuplicateID indicates a node with the same ID is already present.
	ErrDuplicateID = errors.New("core: duplicate node id")

	// ErrNodeAttached indicates the *Node was already inserted into a Graph.
	// A Node belongs to one graph only; insert a fresh NewNode instead.
	ErrNodeAttached = errors.New("core: node already belongs to a graph")

	// ErrBadCoordinate indicates the coordinate is outside the graph's Space.
	ErrBadCoordinate = errors.New("core: invalid coordinate")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLink indicates an attempt to link a node to itself.
	ErrSelfLink = errors.New("core: self link not allowed")

	// ErrAlreadyConnected indicates the destination is already a neighbor of the origin.
	ErrAlreadyConnected = errors.New("core: nodes already connected")

	// ErrBadCost indicates an explicit segment cost that is negative or NaN.
	ErrBadCost = errors.New("core: bad segment cost")

	// ErrFacilityNotFound indicates an operation referenced an unknown facility code.
	ErrFacilityNotFound = errors.New("core: facility not found")
)

// Node is a point of the network.
//
// ID is the stable key used for adjacency membership; Name is the unique
// lookup handle (names need not equal IDs). Coord is orb.Point{x, y} for
// planar graphs and orb.Point{lon, lat} for geodesic ones.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID int64

	// Name uniquely names this Node within its Graph.
	Name string

	// Coord is the node position in the graph's Space.
	Coord orb.Point

	// adj holds neighbor IDs in insertion order; adjSet mirrors it for O(1) membership.
	adj    []int64
	adjSet map[int64]struct{}
}

// NewNode returns a detached Node ready for Graph.Insert.
func NewNode(id int64, name string, coord orb.Point) *Node {
	return &Node{ID: id, Name: name, Coord: coord}
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return n.Name
}

// Segment is a costed link between two nodes.
//
// Cost is fixed at creation: the explicit cost supplied by source data
// (Authoritative == true) or the graph metric between the endpoints.
// An undirected Segment is stored once but makes adjacency symmetric.
type Segment struct {
	// ID uniquely identifies this segment in the Graph ("s1", "s2", ...).
	ID string

	// From is the origin node ID.
	From int64

	// To is the destination node ID.
	To int64

	// Cost is the non-negative traversal cost.
	Cost float64

	// Authoritative is true when Cost came from source data rather than the metric.
	Authoritative bool

	// Directed is true when only From→To adjacency was created.
	Directed bool
}

// FacilityPointKind distinguishes departure and arrival points of a Facility.
type FacilityPointKind int

const (
	// Departure marks a designated exit point (SID).
	Departure FacilityPointKind = iota

	// Arrival marks a designated entry point (STAR).
	Arrival
)

// String implements fmt.Stringer.
func (k FacilityPointKind) String() string {
	if k == Arrival {
		return "arrival"
	}

	return "departure"
}

// Facility is a named site (an airport) with ordered lists of designated
// departure and arrival points. It is metadata only; traversal ignores it.
type Facility struct {
	// Code is the facility identifier, e.g. an ICAO code such as "LEBL".
	Code string

	// Departures lists exit points in load order, without duplicates.
	Departures []*Node

	// Arrivals lists entry points in load order, without duplicates.
	Arrivals []*Node
}

// Position returns the coordinate of the first departure point, if any.
func (f *Facility) Position() (orb.Point, bool) {
	if f == nil || len(f.Departures) == 0 {
		return orb.Point{}, false
	}

	return f.Departures[0].Coord, true
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithSpace selects the coordinate space and its default metric.
func WithSpace(space metric.Space) GraphOption {
	return func(g *Graph) { g.metric = metric.For(space) }
}

// WithMetric installs a custom metric; its Space() becomes the graph's space.
// A nil metric is ignored.
func WithMetric(m metric.Metric) GraphOption {
	return func(g *Graph) {
		if m != nil {
			g.metric = m
		}
	}
}

// WithDirected makes Link add only origin→destination adjacency.
// The default (false) mirrors every link so adjacency is symmetric.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// SegmentOption configures a single Link call.
type SegmentOption func(*segmentConfig)

type segmentConfig struct {
	cost    float64
	hasCost bool
}

// WithCost supplies an authoritative segment cost instead of the metric.
func WithCost(cost float64) SegmentOption {
	return func(c *segmentConfig) {
		c.cost = cost
		c.hasCost = true
	}
}

// segKey addresses a stored segment by its (From, To) pair.
type segKey struct{ from, to int64 }

// Graph is the navigation network aggregate.
//
// Nodes are kept in insertion order, which drives every deterministic
// enumeration (Nodes, Closest, Neighbors). Nodes are never removed
// individually; Clear resets the whole graph.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration
	directed bool          // link adds one-way adjacency only
	metric   metric.Metric // fixed for the graph lifetime

	// Storage
	nextNodeID int64               // highest node ID seen; AddNodeAt allocates above it
	nextSegID  uint64              // segment ID generator
	order      []int64             // node IDs in insertion order
	nodes      map[int64]*Node     // id → node
	byName     map[string]*Node    // name → node
	segments   []*Segment          // insertion order
	segIndex   map[segKey]*Segment // (from,to) → segment

	facilities []*Facility          // insertion order
	facByCode  map[string]*Facility // code → facility
}

// NewGraph creates an empty Graph. By default the graph is planar
// (Euclidean metric) with symmetric adjacency.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		metric:    metric.Euclidean{},
		nodes:     make(map[int64]*Node),
		byName:    make(map[string]*Node),
		segIndex:  make(map[segKey]*Segment),
		facByCode: make(map[string]*Facility),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SPDX-License-Identifier: MIT

// Package export renders graphs and routes as GeoJSON for map viewers.
// Coordinates are written as stored: (lon, lat) for geodesic graphs,
// (x, y) for planar ones.
package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/route"
)

// Path returns p as a LineString feature with properties
// "nodes" ([]string), "cost" (float64) and "segment_costs" ([]float64).
// An empty path yields an empty LineString.
func Path(p *route.Path) *geojson.Feature {
	nodes := p.Nodes()
	line := make(orb.LineString, len(nodes))
	for i, n := range nodes {
		line[i] = n.Coord
	}

	f := geojson.NewFeature(line)
	f.Properties["nodes"] = p.Names()
	f.Properties["cost"] = p.Cost()
	costs := p.SegmentCosts()
	if costs == nil {
		costs = []float64{}
	}
	f.Properties["segment_costs"] = costs

	return f
}

// Node returns n as a Point feature with "id" and "name" properties.
func Node(n *core.Node) *geojson.Feature {
	f := geojson.NewFeature(n.Coord)
	f.ID = n.ID
	f.Properties["id"] = n.ID
	f.Properties["name"] = n.Name

	return f
}

// Nodes returns a collection with one Point feature per node, in order.
func Nodes(nodes []*core.Node) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, n := range nodes {
		fc.Append(Node(n))
	}

	return fc
}

// Graph returns every node as a Point followed by every segment as a
// two-point LineString with "id", "from", "to", "cost" and "authoritative"
// properties.
func Graph(g *core.Graph) *geojson.FeatureCollection {
	fc := Nodes(g.Nodes())
	for _, s := range g.Segments() {
		from, okF := g.Node(s.From)
		to, okT := g.Node(s.To)
		if !okF || !okT {
			continue
		}
		f := geojson.NewFeature(orb.LineString{from.Coord, to.Coord})
		f.ID = s.ID
		f.Properties["id"] = s.ID
		f.Properties["from"] = from.Name
		f.Properties["to"] = to.Name
		f.Properties["cost"] = s.Cost
		f.Properties["authoritative"] = s.Authoritative
		f.Properties["directed"] = s.Directed
		fc.Append(f)
	}

	return fc
}

// SPDX-License-Identifier: MIT

package server

import (
	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/route"
)

type nodeResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Coord     [2]float64 `json:"coord"`
	Degree    *int       `json:"degree,omitempty"`
	Neighbors []string   `json:"neighbors,omitempty"`
}

type routeResponse struct {
	From         string    `json:"from"`
	To           string    `json:"to"`
	Nodes        []string  `json:"nodes"`
	Hops         int       `json:"hops"`
	Cost         float64   `json:"cost"`
	SegmentCosts []float64 `json:"segmentCosts"`
}

type facilityResponse struct {
	Code       string   `json:"code"`
	Departures []string `json:"departures"`
	Arrivals   []string `json:"arrivals"`
}

type statsResponse struct {
	Space         string `json:"space"`
	Directed      bool   `json:"directed"`
	Nodes         int    `json:"nodes"`
	Segments      int    `json:"segments"`
	Authoritative int    `json:"authoritative"`
	Facilities    int    `json:"facilities"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toNode(n *core.Node, neighbors []*core.Node) nodeResponse {
	out := nodeResponse{ID: n.ID, Name: n.Name, Coord: [2]float64{n.Coord.X(), n.Coord.Y()}}
	for _, nbr := range neighbors {
		out.Neighbors = append(out.Neighbors, nbr.Name)
	}

	return out
}

func toNodes(nodes []*core.Node) []nodeResponse {
	out := make([]nodeResponse, len(nodes))
	for i, n := range nodes {
		out[i] = toNode(n, nil)
	}

	return out
}

func toRoute(p *route.Path) routeResponse {
	costs := p.SegmentCosts()
	if costs == nil {
		costs = []float64{}
	}

	return routeResponse{
		From:         p.First().Name,
		To:           p.Last().Name,
		Nodes:        p.Names(),
		Hops:         p.Len() - 1,
		Cost:         p.Cost(),
		SegmentCosts: costs,
	}
}

func toFacility(f *core.Facility) facilityResponse {
	out := facilityResponse{Code: f.Code, Departures: []string{}, Arrivals: []string{}}
	for _, n := range f.Departures {
		out.Departures = append(out.Departures, n.Name)
	}
	for _, n := range f.Arrivals {
		out.Arrivals = append(out.Arrivals, n.Name)
	}

	return out
}

func toStats(s core.GraphStats) statsResponse {
	return statsResponse{
		Space:         s.Space.String(),
		Directed:      s.Directed,
		Nodes:         s.NodeCount,
		Segments:      s.SegmentCount,
		Authoritative: s.Authoritative,
		Facilities:    s.FacilityCount,
	}
}

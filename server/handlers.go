// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/airnav/airspace"
	"github.com/katalvlaran/airnav/astar"
	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/export"
	"github.com/katalvlaran/airnav/metric"
	"github.com/katalvlaran/airnav/route"
)

const formatGeoJSON = "geojson"

func (s *Server) fail(c *gin.Context, op string, start time.Time, status int, err error) {
	outcome := outcomeError
	switch status {
	case http.StatusNotFound:
		outcome = outcomeNotFound
	case http.StatusBadRequest:
		outcome = outcomeBadRequest
	}
	s.metrics.observe(op, outcome, start)
	c.JSON(status, errorResponse{Error: err.Error()})
}

func (s *Server) ok(c *gin.Context, op string, start time.Time, body any) {
	s.metrics.observe(op, outcomeOK, start)
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleStats(c *gin.Context) {
	s.ok(c, "stats", time.Now(), toStats(s.air.Stats()))
}

func (s *Server) handleNode(c *gin.Context) {
	start := time.Now()
	name := c.Param("name")
	n, ok := s.air.FindByName(name)
	if !ok {
		s.fail(c, "node", start, http.StatusNotFound, fmt.Errorf("unknown node %q", name))
		return
	}
	g := s.air.Graph()
	out := toNode(n, g.Neighbors(n.ID))
	degree := g.Degree(n.ID)
	out.Degree = &degree
	s.ok(c, "node", start, out)
}

func (s *Server) handleClosest(c *gin.Context) {
	start := time.Now()
	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	if errX != nil || errY != nil {
		s.fail(c, "closest", start, http.StatusBadRequest, errors.New("x and y must be numbers"))
		return
	}
	p := orb.Point{x, y}
	if space := s.air.Graph().Space(); !metric.Valid(space, p) {
		s.fail(c, "closest", start, http.StatusBadRequest, fmt.Errorf("(%v, %v) is not a valid %s coordinate", x, y, space))
		return
	}
	n, ok := s.air.ClosestTo(p)
	if !ok {
		s.fail(c, "closest", start, http.StatusNotFound, errors.New("graph is empty"))
		return
	}
	s.ok(c, "closest", start, toNode(n, nil))
}

func (s *Server) handleReachable(c *gin.Context) {
	start := time.Now()
	name := c.Param("name")
	nodes := s.air.ReachableFrom(name)
	if nodes == nil {
		s.fail(c, "reachable", start, http.StatusNotFound, fmt.Errorf("unknown node %q", name))
		return
	}
	s.ok(c, "reachable", start, gin.H{"from": name, "count": len(nodes), "nodes": toNodes(nodes)})
}

func (s *Server) handleRoute(c *gin.Context) {
	start := time.Now()
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		s.fail(c, "route", start, http.StatusBadRequest, errors.New("from and to are required"))
		return
	}
	p, err := s.air.Route(c.Request.Context(), from, to)
	s.respondRoute(c, "route", start, p, err)
}

func (s *Server) handleFacilityRoute(c *gin.Context) {
	start := time.Now()
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		s.fail(c, "facility_route", start, http.StatusBadRequest, errors.New("from and to are required"))
		return
	}
	p, err := s.air.FacilityRoute(c.Request.Context(), from, to)
	s.respondRoute(c, "facility_route", start, p, err)
}

func (s *Server) respondRoute(c *gin.Context, op string, start time.Time, p *route.Path, err error) {
	switch {
	case errors.Is(err, astar.ErrNoPath),
		errors.Is(err, airspace.ErrNoFacilityRoute),
		errors.Is(err, core.ErrFacilityNotFound):
		s.fail(c, op, start, http.StatusNotFound, err)
		return
	case err != nil:
		s.logger.ErrorContext(c.Request.Context(), "server: route query failed",
			"op", op, "error", err, "request_id", c.GetString(ctxRequestID))
		s.fail(c, op, start, http.StatusInternalServerError, err)
		return
	}
	if c.Query("format") == formatGeoJSON {
		s.ok(c, op, start, export.Path(p))
		return
	}
	s.ok(c, op, start, toRoute(p))
}

func (s *Server) handleWithin(c *gin.Context) {
	start := time.Now()
	var vals [4]float64
	for i, key := range []string{"minx", "miny", "maxx", "maxy"} {
		v, err := strconv.ParseFloat(c.Query(key), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			s.fail(c, "within", start, http.StatusBadRequest, fmt.Errorf("%s must be a finite number", key))
			return
		}
		vals[i] = v
	}
	if vals[0] > vals[2] || vals[1] > vals[3] {
		s.fail(c, "within", start, http.StatusBadRequest, errors.New("min must not exceed max"))
		return
	}
	nodes := s.air.Within(orb.Bound{Min: orb.Point{vals[0], vals[1]}, Max: orb.Point{vals[2], vals[3]}})
	if c.Query("format") == formatGeoJSON {
		s.ok(c, "within", start, export.Nodes(nodes))
		return
	}
	s.ok(c, "within", start, gin.H{"count": len(nodes), "nodes": toNodes(nodes)})
}

func (s *Server) handleFacilities(c *gin.Context) {
	start := time.Now()
	fs := s.air.Facilities()
	out := make([]facilityResponse, len(fs))
	for i, f := range fs {
		out[i] = toFacility(f)
	}
	s.ok(c, "facilities", start, out)
}

func (s *Server) handleFacility(c *gin.Context) {
	start := time.Now()
	code := c.Param("code")
	f, ok := s.air.Facility(code)
	if !ok {
		s.fail(c, "facility", start, http.StatusNotFound, fmt.Errorf("%w: %q", core.ErrFacilityNotFound, code))
		return
	}
	s.ok(c, "facility", start, toFacility(f))
}

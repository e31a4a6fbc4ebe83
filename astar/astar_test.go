// SPDX-License-Identifier: MIT
package astar_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnav/astar"
	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
)

func TestShortestPath_Triangle(t *testing.T) {
	g := buildTriangle(t)
	p, err := astar.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, p.Names())
	assert.InDelta(t, 5.0, p.Cost(), 1e-12)
	requireSound(t, g, p)
}

func TestShortestPath_AuthoritativeCost(t *testing.T) {
	g := buildTriangle(t, core.WithCost(10))

	p, err := astar.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Names())
	assert.InDelta(t, 7.0, p.Cost(), 1e-12)

	p, err = astar.ShortestPath(g, "A", "C", astar.WithMetricCosts())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, p.Names())
	assert.InDelta(t, 5.0, p.Cost(), 1e-12)
}

func TestShortestPath_Classroom(t *testing.T) {
	g := buildClassroom(t)
	cases := []struct {
		from, to string
		want     []string
		cost     float64
	}{
		{"A", "J", []string{"A", "B", "C", "D", "I", "J"}, 42.30926950511929},
		{"J", "A", []string{"J", "I", "D", "G", "B", "A"}, 41.9738726743423},
		{"E", "C", []string{"E", "F", "L", "K", "A", "B", "C"}, 35.22400096520727},
		{"L", "H", []string{"L", "K", "A", "B", "G", "H"}, 33.722626121316935},
		{"C", "E", []string{"C", "G", "B", "A", "E"}, 38.59412063049569},
	}
	for _, tc := range cases {
		t.Run(tc.from+"→"+tc.to, func(t *testing.T) {
			p, err := astar.ShortestPath(g, tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Names())
			assert.InDelta(t, tc.cost, p.Cost(), 1e-9)
			requireSound(t, g, p)
		})
	}
}

func TestShortestPath_NoPath(t *testing.T) {
	g := buildClassroom(t)

	_, err := astar.ShortestPath(g, "H", "A")
	assert.ErrorIs(t, err, astar.ErrNoPath, "H has no outgoing links")

	_, err = astar.ShortestPath(g, "A", "nowhere")
	assert.ErrorIs(t, err, astar.ErrNoPath)
	_, err = astar.ShortestPath(g, "nowhere", "A")
	assert.ErrorIs(t, err, astar.ErrNoPath)

	require.True(t, g.AddNode(core.NewNode(99, "Z", metric.XY(50, 50))))
	_, err = astar.ShortestPath(g, "A", "Z")
	assert.ErrorIs(t, err, astar.ErrNoPath)

	_, err = astar.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, astar.ErrGraphNil)
}

func TestShortestPath_SameEndpoint(t *testing.T) {
	g := buildClassroom(t)
	p, err := astar.ShortestPath(g, "H", "H")
	require.NoError(t, err)
	assert.Equal(t, []string{"H"}, p.Names())
	assert.Zero(t, p.Cost())
}

func TestShortestPath_Options(t *testing.T) {
	g := buildTriangle(t)

	p, err := astar.ShortestPath(g, "A", "C", astar.WithImpassable(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Names())

	_, err = astar.ShortestPath(g, "A", "C", astar.WithMaxCost(4.5))
	assert.ErrorIs(t, err, astar.ErrNoPath)

	_, err = astar.ShortestPath(g, "A", "C", astar.WithMaxCost(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
	_, err = astar.ShortestPath(g, "A", "C", astar.WithImpassable(0))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	var expanded []string
	_, err = astar.ShortestPath(g, "A", "C", astar.WithOnExpand(func(n *core.Node, _ float64) {
		expanded = append(expanded, n.Name)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, expanded)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = astar.ShortestPath(g, "A", "C", astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestShortestPath_MatchesBruteForce compares against exhaustive search on
// small random planar graphs.
func TestShortestPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		g := core.NewGraph(core.WithDirected(round%2 == 1))
		n := 4 + rng.Intn(7)
		for i := 0; i < n; i++ {
			require.True(t, g.AddNode(core.NewNode(int64(i+1), fmt.Sprintf("P%d", i), metric.XY(rng.Float64()*100, rng.Float64()*100))))
		}
		for k := 0; k < n*2; k++ {
			a, b := int64(rng.Intn(n)+1), int64(rng.Intn(n)+1)
			g.ConnectByID(a, b)
		}

		nodes := g.Nodes()
		for _, from := range nodes {
			for _, to := range nodes {
				want := bruteForce(g, from, to)
				p, err := astar.ShortestPath(g, from.Name, to.Name)
				if math.IsInf(want, 1) {
					assert.ErrorIs(t, err, astar.ErrNoPath, "round %d %s→%s", round, from, to)
					continue
				}
				require.NoError(t, err, "round %d %s→%s", round, from, to)
				assert.InDelta(t, want, p.Cost(), 1e-9, "round %d %s→%s", round, from, to)
				assert.Same(t, from, p.First())
				assert.Same(t, to, p.Last())
				requireSound(t, g, p)
			}
		}
	}
}

func TestShortestPath_Geodesic(t *testing.T) {
	g := core.NewGraph(core.WithSpace(metric.Geodesic))
	require.True(t, g.AddNode(core.NewNode(1, "LEBL", metric.LatLon(41.297, 2.083))))
	require.True(t, g.AddNode(core.NewNode(2, "ZZA", metric.LatLon(41.5, -1.0))))
	require.True(t, g.AddNode(core.NewNode(3, "LEMD", metric.LatLon(40.472, -3.561))))
	require.True(t, g.AddNode(core.NewNode(4, "DETOUR", metric.LatLon(43.0, 0.0))))
	require.True(t, g.Connect("LEBL", "ZZA"))
	require.True(t, g.Connect("ZZA", "LEMD"))
	require.True(t, g.Connect("LEBL", "DETOUR"))
	require.True(t, g.Connect("DETOUR", "LEMD"))

	p, err := astar.ShortestPath(g, "LEBL", "LEMD")
	require.NoError(t, err)
	assert.Equal(t, []string{"LEBL", "ZZA", "LEMD"}, p.Names())
	assert.Greater(t, p.Cost(), 470.0)
	assert.Less(t, p.Cost(), 520.0)
}

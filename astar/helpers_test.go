// SPDX-License-Identifier: MIT
package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
	"github.com/katalvlaran/airnav/route"
)

var (
	classroomNodes = []struct {
		name string
		x, y float64
	}{
		{"A", 1, 20}, {"B", 8, 17}, {"C", 15, 20}, {"D", 18, 15},
		{"E", 2, 4}, {"F", 6, 5}, {"G", 12, 12}, {"H", 10, 3},
		{"I", 19, 1}, {"J", 13, 5}, {"K", 3, 15}, {"L", 4, 10},
	}
	classroomLinks = [][2]string{
		{"A", "B"}, {"A", "E"}, {"A", "K"}, {"B", "A"}, {"B", "C"},
		{"B", "F"}, {"B", "K"}, {"B", "G"}, {"C", "D"}, {"C", "G"},
		{"D", "G"}, {"D", "H"}, {"D", "I"}, {"E", "F"}, {"F", "L"},
		{"G", "B"}, {"G", "F"}, {"G", "H"}, {"I", "D"}, {"I", "J"},
		{"J", "I"}, {"K", "A"}, {"K", "L"}, {"L", "K"}, {"L", "F"},
	}
)

func buildClassroom(tb testing.TB) *core.Graph {
	tb.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i, n := range classroomNodes {
		require.True(tb, g.AddNode(core.NewNode(int64(i+1), n.name, metric.XY(n.x, n.y))))
	}
	for _, l := range classroomLinks {
		require.True(tb, g.Connect(l[0], l[1]))
	}

	return g
}

// buildTriangle returns A(0,0) B(3,0) C(3,4) joined A–B, B–C, A–C.
// Options are applied to the A–C link.
func buildTriangle(t *testing.T, acOpts ...core.SegmentOption) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.True(t, g.AddNode(core.NewNode(1, "A", metric.XY(0, 0))))
	require.True(t, g.AddNode(core.NewNode(2, "B", metric.XY(3, 0))))
	require.True(t, g.AddNode(core.NewNode(3, "C", metric.XY(3, 4))))
	require.True(t, g.Connect("A", "B"))
	require.True(t, g.Connect("B", "C"))
	require.True(t, g.Connect("A", "C", acOpts...))

	return g
}

// bruteForce enumerates every simple route and returns the cheapest cost,
// or +Inf when none exists.
func bruteForce(g *core.Graph, from, to *core.Node) float64 {
	best := math.Inf(1)
	onPath := map[int64]bool{from.ID: true}
	var walk func(cur *core.Node, cost float64)
	walk = func(cur *core.Node, cost float64) {
		if cur.ID == to.ID {
			best = math.Min(best, cost)
			return
		}
		for _, nbr := range g.Neighbors(cur.ID) {
			if onPath[nbr.ID] {
				continue
			}
			onPath[nbr.ID] = true
			walk(nbr, cost+g.Cost(cur.ID, nbr.ID))
			onPath[nbr.ID] = false
		}
	}
	walk(from, 0)

	return best
}

// requireSound checks that consecutive nodes are linked and that the
// recorded costs add up.
func requireSound(t *testing.T, g *core.Graph, p *route.Path) {
	t.Helper()
	nodes := p.Nodes()
	sum := 0.0
	for i := 1; i < len(nodes); i++ {
		require.True(t, g.Adjacent(nodes[i-1].ID, nodes[i].ID), "%s→%s not linked", nodes[i-1], nodes[i])
		sum += g.Cost(nodes[i-1].ID, nodes[i].ID)
	}
	require.InDelta(t, sum, p.Cost(), 1e-9)
}

// SPDX-License-Identifier: MIT
package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
)

// classroom is the twelve-node planar layout with one-way links used across
// the traversal tests.
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

func names(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.
//
// Purpose:
//   - Provide small, deterministic graphs reused across test files.
//   - Keep node names and coordinates in one place (no magic values in test bodies).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
)

// Common node names used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// classroomNodes is the twelve-node planar layout used by the route
// planner exercises; classroomLinks are its one-way connections.
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

// buildClassroom returns the classroom graph as a directed planar graph.
func buildClassroom(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i, n := range classroomNodes {
		require.True(t, g.AddNode(core.NewNode(int64(i+1), n.name, metric.XY(n.x, n.y))), "AddNode(%s)", n.name)
	}
	for _, l := range classroomLinks {
		require.True(t, g.Connect(l[0], l[1]), "Connect(%s,%s)", l[0], l[1])
	}

	return g
}

// buildTriangle returns A(0,0) B(3,0) C(3,4) joined A–B, B–C, A–C (undirected).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.True(t, g.AddNode(core.NewNode(1, NodeA, metric.XY(0, 0))))
	require.True(t, g.AddNode(core.NewNode(2, NodeB, metric.XY(3, 0))))
	require.True(t, g.AddNode(core.NewNode(3, NodeC, metric.XY(3, 4))))
	require.True(t, g.Connect(NodeA, NodeB))
	require.True(t, g.Connect(NodeB, NodeC))
	require.True(t, g.Connect(NodeA, NodeC))

	return g
}

// names maps nodes to their names for compact assertions.
func names(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}

// mustFind resolves name or fails the test.
func mustFind(t *testing.T, g *core.Graph, name string) *core.Node {
	t.Helper()
	n, ok := g.FindByName(name)
	require.True(t, ok, "FindByName(%q)", name)

	return n
}

// SPDX-License-Identifier: MIT
package spatial_test

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
	"github.com/katalvlaran/airnav/spatial"
)

func names(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}

func TestWithin(t *testing.T) {
	g := core.NewGraph()
	pts := []struct {
		name string
		x, y float64
	}{{"A", 1, 20}, {"B", 8, 17}, {"E", 2, 4}, {"F", 6, 5}, {"L", 4, 10}, {"Q", 10, 10}}
	for i, p := range pts {
		require.True(t, g.AddNode(core.NewNode(int64(i+1), p.name, metric.XY(p.x, p.y))))
	}

	ix := spatial.New(g)
	assert.Equal(t, len(pts), ix.Len())

	got := ix.Within(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}})
	assert.Equal(t, []string{"E", "F", "L", "Q"}, names(got), "edges inclusive, insertion order")

	assert.Empty(t, ix.Within(orb.Bound{Min: orb.Point{50, 50}, Max: orb.Point{60, 60}}))
	assert.Equal(t, []string{"L"}, names(ix.Within(orb.Bound{Min: orb.Point{4, 10}, Max: orb.Point{4, 10}})))
	assert.Equal(t, []string{"A", "B"}, names(ix.Around(orb.Point{5, 18}, 4)))
}

func TestWithin_Large(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 400; i++ {
		x, y := float64(i%20), float64(i/20)
		require.True(t, g.AddNode(core.NewNode(int64(i+1), fmt.Sprintf("P%d", i), metric.XY(x, y))))
	}
	ix := spatial.New(g)

	got := ix.Within(orb.Bound{Min: orb.Point{2, 3}, Max: orb.Point{4.5, 5}})
	require.Len(t, got, 9)
	assert.Equal(t, "P62", got[0].Name)
	assert.Equal(t, "P104", got[8].Name)
}

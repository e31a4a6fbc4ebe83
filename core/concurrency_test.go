// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
)

// TestConcurrentInsertAndLink runs writers and readers side by side; every
// insert and link must land exactly once.
func TestConcurrentInsertAndLink(t *testing.T) {
	g := core.NewGraph()
	require.True(t, g.AddNode(core.NewNode(0, "hub", metric.XY(0, 0))))

	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			n := core.NewNode(int64(id), fmt.Sprintf("P%d", id), metric.XY(float64(id), 0))
			if err := g.Insert(n); err != nil {
				errs <- err
				return
			}
			if _, err := g.Link(0, n.ID); err != nil {
				errs <- err
			}
		}(i)
	}

	// concurrent readers; results are not asserted, only race-freedom
	var rg sync.WaitGroup
	rg.Add(num / 4)
	for i := 0; i < num/4; i++ {
		go func() {
			defer rg.Done()
			_, _ = g.Closest(metric.XY(10, 0))
			_ = g.Neighbors(0)
			_, _ = g.FindByName("P1")
		}()
	}
	wg.Wait()
	rg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, num+1, g.NodeCount())
	require.Equal(t, num, g.SegmentCount())
	require.Len(t, g.NeighborIDs(0), num)
}

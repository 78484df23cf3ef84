// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/routeplanner/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from a hub are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("Hub", fmt.Sprintf("V%03d", id), int64(id)))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors("Hub"), num)
	require.Equal(t, num, g.EdgeCount())
	require.Equal(t, int64(42), g.Distance("V042", "Hub"))
}

// TestConcurrentReadsAndClone runs readers alongside cloning; no races or panics expected.
func TestConcurrentReadsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("C%d", i), fmt.Sprintf("C%d", i+1), 1))
	}

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			_ = g.Neighbors("C10")
			_ = g.Distance("C10", "C11")
			_ = g.Clone()
			_ = g.Edges()
		}()
	}
	wg.Wait()
}

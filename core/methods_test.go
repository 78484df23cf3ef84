// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in symmetric storage, implicit vertex creation and last-write-wins.
//   - Anchor the NoEdge sentinel for unknown cities and non-adjacent pairs.
//   - Anchor deterministic ordering of Vertices/Neighbors/Edges.

package core_test

import (
	"testing"

	"github.com/katalvlaran/routeplanner/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cityA = "A"
	cityB = "B"
	cityC = "C"
	cityZ = "Z"
)

// triangle builds A–B(5), B–C(3), A–C(10).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(cityA, cityB, 5))
	require.NoError(t, g.AddEdge(cityB, cityC, 3))
	require.NoError(t, g.AddEdge(cityA, cityC, 10))

	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(cityA))
	assert.True(t, g.HasVertex(cityA))
	assert.Empty(t, g.Neighbors(cityA))

	// Idempotent: a second add neither fails nor duplicates.
	require.NoError(t, g.AddVertex(cityA))
	assert.Equal(t, 1, g.VertexCount())
	assert.False(t, g.HasVertex(""))
}

func TestGraph_AddEdge_CreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(cityA, cityB, 7))

	assert.True(t, g.HasVertex(cityA))
	assert.True(t, g.HasVertex(cityB))
	assert.Equal(t, []string{cityA, cityB}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge("", cityB, 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge(cityA, "", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge(cityA, cityB, -1), core.ErrNegativeDistance)

	// Rejected edges leave no trace.
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	// Zero-length roads are legal.
	require.NoError(t, g.AddEdge(cityA, cityB, 0))
	assert.Equal(t, int64(0), g.Distance(cityA, cityB))
}

func TestGraph_Distance_Symmetric(t *testing.T) {
	g := triangle(t)

	for _, tc := range []struct {
		a, b string
		want int64
	}{
		{cityA, cityB, 5},
		{cityB, cityC, 3},
		{cityA, cityC, 10},
	} {
		assert.Equal(t, tc.want, g.Distance(tc.a, tc.b), "%s-%s", tc.a, tc.b)
		assert.Equal(t, tc.want, g.Distance(tc.b, tc.a), "%s-%s", tc.b, tc.a)
		assert.True(t, g.HasEdge(tc.a, tc.b))
		assert.True(t, g.HasEdge(tc.b, tc.a))
	}
}

func TestGraph_Distance_NoEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(cityA, cityB, 1))
	require.NoError(t, g.AddEdge(cityB, cityC, 1))

	// A and C are connected through B, but not directly.
	assert.Equal(t, core.NoEdge, g.Distance(cityA, cityC))
	assert.False(t, g.HasEdge(cityA, cityC))

	// Unknown endpoints.
	assert.Equal(t, core.NoEdge, g.Distance(cityZ, cityA))
	assert.Equal(t, core.NoEdge, g.Distance(cityA, cityZ))
	assert.Equal(t, core.NoEdge, g.Distance(cityZ, cityZ))
	assert.False(t, g.HasEdge(cityZ, cityA))
}

func TestGraph_AddEdge_LastWriteWins(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(cityA, cityB, 5))
	require.NoError(t, g.AddEdge(cityB, cityA, 2))

	assert.Equal(t, int64(2), g.Distance(cityA, cityB))
	assert.Equal(t, int64(2), g.Distance(cityB, cityA))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.Edge{{From: cityA, To: cityB, Distance: 2}}, g.Edges())
}

func TestGraph_Neighbors(t *testing.T) {
	g := triangle(t)

	assert.Equal(t, []string{cityB, cityC}, g.Neighbors(cityA))
	assert.Equal(t, []string{cityA, cityC}, g.Neighbors(cityB))
	assert.Equal(t, 2, g.Degree(cityC))

	nb := g.Neighbors(cityZ)
	assert.NotNil(t, nb)
	assert.Empty(t, nb)
	assert.Zero(t, g.Degree(cityZ))
}

func TestGraph_Edges_Sorted(t *testing.T) {
	g := triangle(t)

	assert.Equal(t, []core.Edge{
		{From: cityA, To: cityB, Distance: 5},
		{From: cityA, To: cityC, Distance: 10},
		{From: cityB, To: cityC, Distance: 3},
	}, g.Edges())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_Clone_Independent(t *testing.T) {
	g := triangle(t)
	c := g.Clone()

	require.NoError(t, c.AddEdge(cityC, cityZ, 4))
	require.NoError(t, g.AddEdge(cityA, cityB, 1))

	assert.False(t, g.HasVertex(cityZ))
	assert.Equal(t, int64(5), c.Distance(cityA, cityB))
	assert.Equal(t, int64(1), g.Distance(cityA, cityB))
	assert.Equal(t, 4, c.EdgeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_String(t *testing.T) {
	g := triangle(t)
	want := "Graph with 3 nodes:\n" +
		"A -> B(5) C(10)\n" +
		"B -> A(5) C(3)\n" +
		"C -> A(10) B(3)\n"
	assert.Equal(t, want, g.String())
}

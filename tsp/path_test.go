package tsp_test

import (
	"testing"

	"github.com/katalvlaran/routeplanner/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name       string
		order      []int
		n          int
		start, end int
		want       error
	}{
		{"ok", []int{0, 2, 1, 3}, 4, 0, 3, nil},
		{"round trip", []int{1, 0, 2, 1}, 3, 1, 1, nil},
		{"single point", []int{0, 0}, 1, 0, 0, nil},
		{"too short", []int{0, 3}, 4, 0, 3, tsp.ErrDimensionMismatch},
		{"wrong start", []int{1, 0, 2, 3}, 4, 0, 3, tsp.ErrInvalidPath},
		{"wrong end", []int{0, 1, 3, 2}, 4, 0, 3, tsp.ErrInvalidPath},
		{"repeat", []int{0, 1, 1, 3}, 4, 0, 3, tsp.ErrInvalidPath},
		{"out of range", []int{0, 7, 1, 3}, 4, 0, 3, tsp.ErrInvalidPath},
		{"bad endpoint", []int{0, 1}, 2, 0, 5, tsp.ErrEndpointOutOfRange},
		{"empty", nil, 0, 0, 0, tsp.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidatePath(tc.order, tc.n, tc.start, tc.end)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPathCost(t *testing.T) {
	m, err := tsp.FromRows([][]int64{
		{0, 2, 9},
		{2, 0, 4},
		{9, 4, 0},
	})
	require.NoError(t, err)

	c, err := tsp.PathCost(m, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(6), c)

	c, err = tsp.PathCost(m, []int{2})
	require.NoError(t, err)
	assert.Equal(t, int64(0), c)

	_, err = tsp.PathCost(m, []int{0, 3})
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestMatrixAccessors(t *testing.T) {
	m := tsp.NewMatrix(3)
	assert.Equal(t, 3, m.Len())
	m.Set(0, 2, 11)
	assert.Equal(t, int64(11), m.At(0, 2))
	assert.Equal(t, int64(0), m.At(2, 0))
	assert.Panics(t, func() { m.At(3, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })

	assert.Equal(t, 0, tsp.NewMatrix(-4).Len())
}

func TestDebugString(t *testing.T) {
	assert.Equal(t, "[0 -> 2 -> 1]", tsp.DebugString([]int{0, 2, 1}))
	assert.Equal(t, "[]", tsp.DebugString(nil))
}

// File: types.go
// Role: sentinel errors, the dense cost Matrix and the PathResult type.

package tsp

import "errors"

// Sentinel errors returned by the tsp package.
var (
	// ErrDimensionMismatch indicates a non-square matrix, an empty matrix,
	// or an order slice whose length does not match the matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrEndpointOutOfRange indicates a start or end index outside [0, n).
	ErrEndpointOutOfRange = errors.New("tsp: endpoint index out of range")

	// ErrNegativeWeight indicates a negative travel cost in the matrix.
	ErrNegativeWeight = errors.New("tsp: negative weight")

	// ErrNonZeroDiagonal indicates dist[i][i] != 0 for some i.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal entry")

	// ErrInvalidPath indicates an order that is not a fixed-endpoint
	// permutation of the matrix indices.
	ErrInvalidPath = errors.New("tsp: invalid path")
)

// Matrix is a dense, square, row-major matrix of int64 travel costs.
// The zero value is an empty 0×0 matrix.
type Matrix struct {
	n    int
	data []int64
}

// NewMatrix allocates an n×n matrix filled with zeros.
// Negative n is treated as zero.
func NewMatrix(n int) Matrix {
	if n < 0 {
		n = 0
	}
	return Matrix{n: n, data: make([]int64, n*n)}
}

// FromRows copies a [][]int64 into a Matrix.
// Returns ErrDimensionMismatch when rows is not square.
func FromRows(rows [][]int64) (Matrix, error) {
	n := len(rows)
	m := NewMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			return Matrix{}, ErrDimensionMismatch
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Len returns the matrix order n.
func (m Matrix) Len() int { return m.n }

// At returns dist[i][j]. It panics if i or j is out of range.
func (m Matrix) At(i, j int) int64 {
	m.check(i, j)
	return m.data[i*m.n+j]
}

// Set stores dist[i][j] = v. It panics if i or j is out of range.
func (m Matrix) Set(i, j int, v int64) {
	m.check(i, j)
	m.data[i*m.n+j] = v
}

func (m Matrix) check(i, j int) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(ErrEndpointOutOfRange.Error())
	}
}

// PathResult is the outcome of a fixed-endpoint path heuristic.
type PathResult struct {
	// Order lists matrix indices in visiting order.
	// Order[0] == start and Order[len(Order)-1] == end.
	Order []int

	// Cost is the sum of dist[Order[i]][Order[i+1]].
	Cost int64
}

// File: validate.go
// Role: matrix and endpoint validation shared by the path heuristic.

package tsp

// validateMatrix checks shape, non-negativity and the zero diagonal.
// Complexity: O(n²).
func validateMatrix(dist Matrix) error {
	if dist.n == 0 || len(dist.data) != dist.n*dist.n {
		return ErrDimensionMismatch
	}

	var (
		i, j int
		w    int64
	)
	for i = 0; i < dist.n; i++ {
		for j = 0; j < dist.n; j++ {
			w = dist.data[i*dist.n+j]
			if i == j {
				if w != 0 {
					return ErrNonZeroDiagonal
				}
				continue
			}
			if w < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}

// validateEndpoints checks that start and end index the matrix.
func validateEndpoints(n, start, end int) error {
	if start < 0 || start >= n || end < 0 || end >= n {
		return ErrEndpointOutOfRange
	}
	return nil
}

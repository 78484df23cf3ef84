// File: path.go
// Role: helpers operating on fixed-endpoint visiting orders.

package tsp

import (
	"strconv"
	"strings"
)

// ValidatePath checks that order is a walk over {0..n-1} from start to end
// visiting every index exactly once. When start == end the endpoint appears
// at both ends and every other index once in between.
//
// Complexity: O(n).
func ValidatePath(order []int, n, start, end int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if err := validateEndpoints(n, start, end); err != nil {
		return err
	}

	want := n
	if start == end {
		want = n + 1
	}
	if len(order) != want {
		return ErrDimensionMismatch
	}
	if order[0] != start || order[len(order)-1] != end {
		return ErrInvalidPath
	}

	inner := order
	if start == end {
		inner = order[:len(order)-1]
	}
	seen := make([]bool, n)
	for _, v := range inner {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidPath
		}
		seen[v] = true
	}

	return nil
}

// PathCost sums dist[order[i]][order[i+1]] over consecutive pairs.
// Returns ErrDimensionMismatch for an index outside the matrix.
func PathCost(dist Matrix, order []int) (int64, error) {
	n := dist.Len()
	var sum int64
	for i := 0; i < len(order); i++ {
		if order[i] < 0 || order[i] >= n {
			return 0, ErrDimensionMismatch
		}
		if i > 0 {
			sum += dist.At(order[i-1], order[i])
		}
	}

	return sum, nil
}

// DebugString renders an order as "[0 -> 2 -> 1]".
func DebugString(order []int) string {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " -> ") + "]"
}

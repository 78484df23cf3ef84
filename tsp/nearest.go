package tsp

import "math"

// NearestNeighborPath orders the n points of dist into a walk from start to end.
//
// Steps:
//  1. Validate dist (square, non-negative, zero diagonal) and both endpoints.
//  2. From the current point, pick the unvisited point other than end with the
//     smallest dist[cur][i]; strict "<" keeps the lowest index on ties.
//  3. Repeat until no candidate is left, then append end.
//
// When start == end every other point is visited before returning to end,
// so the order has n+1 entries; otherwise it has exactly n.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighborPath(dist Matrix, start, end int) (PathResult, error) {
	if err := validateMatrix(dist); err != nil {
		return PathResult{}, err
	}
	n := dist.Len()
	if err := validateEndpoints(n, start, end); err != nil {
		return PathResult{}, err
	}

	visited := make([]bool, n)
	visited[start] = true
	order := make([]int, 0, n+1)
	order = append(order, start)

	var (
		cur  = start
		cost int64
	)
	for {
		next := -1
		best := int64(math.MaxInt64)
		for i := 0; i < n; i++ {
			if visited[i] || i == end {
				continue
			}
			if w := dist.At(cur, i); w < best {
				next, best = i, w
			}
		}
		if next == -1 {
			break
		}
		visited[next] = true
		order = append(order, next)
		cost += best
		cur = next
	}

	order = append(order, end)
	cost += dist.At(cur, end)

	return PathResult{Order: order, Cost: cost}, nil
}

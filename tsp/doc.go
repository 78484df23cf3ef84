// Package tsp orders waypoints for the multi-stop route planner.
//
// The problem solved here is the open-path variant of the Travelling
// Salesman Problem: given a complete n×n matrix of pairwise travel costs,
// find a visiting order over all n points that begins at a fixed start index
// and finishes at a fixed end index.
//
// Algorithm:
//
//   - NearestNeighborPath is a greedy heuristic. Beginning at start, it
//     repeatedly moves to the closest point not yet visited that is not end,
//     comparing with strict "<" so the lowest index wins ties. When no such
//     point remains, end is appended regardless of its cost.
//   - The result is an approximation of the shortest Hamiltonian path with
//     fixed endpoints; it is deterministic for a fixed matrix but not optimal.
//
// Complexity: O(n²) time, O(n) extra space.
//
// Matrix:
//
//	Matrix is a dense row-major int64 matrix. Entries must be non-negative and
//	the diagonal must be zero; NearestNeighborPath validates both.
//
// Errors:
//
//   - ErrDimensionMismatch:  non-square input or an order of wrong length.
//   - ErrEndpointOutOfRange: start or end is not in [0, n).
//   - ErrNegativeWeight:     a negative off-diagonal entry.
//   - ErrNonZeroDiagonal:    dist[i][i] != 0.
//   - ErrInvalidPath:        ValidatePath found a repeated, missing or
//     misplaced index.
package tsp

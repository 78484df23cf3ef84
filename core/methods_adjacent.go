// File: methods_adjacent.go
// Role: Neighborhood queries.

package core

import "sort"

// Neighbors returns the cities directly connected to id, sorted ascending.
// An unknown city, or one without roads, yields an empty (non-nil) slice.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	inner := g.adjacency[id]
	out := make([]string, 0, len(inner))
	for to := range inner {
		out = append(out, to)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Degree returns the number of distinct neighbors of id (0 if unknown).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

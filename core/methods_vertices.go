// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.

package core

import "sort"

// AddVertex inserts a city if missing (idempotent).
//
// Inputs:
//   - id: city name; must be non-empty.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	ensureVertex(g, id)

	return nil
}

// HasVertex reports whether the city exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns every known city name, sorted ascending.
// The returned slice is a fresh copy owned by the caller.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount returns the number of cities.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// ensureVertex allocates the adjacency bucket for id. Caller holds the write lock.
func ensureVertex(g *Graph, id string) map[string]int64 {
	inner, ok := g.adjacency[id]
	if !ok {
		inner = make(map[string]int64)
		g.adjacency[id] = inner
	}

	return inner
}

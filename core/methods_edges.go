// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Distance/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each road once, sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddEdge records an undirected road between a and b.
//
// Steps:
//  1. Validate names and distance.
//  2. Ensure both endpoints exist (implicit AddVertex).
//  3. Store the distance in both directions; an existing road between the
//     same pair is overwritten (last write wins).
//
// Errors:
//   - ErrEmptyVertexID: if a or b is empty.
//   - ErrNegativeDistance: if distance < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, distance int64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if distance < 0 {
		return ErrNegativeDistance
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from := ensureVertex(g, a)
	to := ensureVertex(g, b)
	if _, exists := from[b]; !exists {
		g.edgeCount++
	}
	from[b] = distance
	to[a] = distance

	return nil
}

// Distance returns the weight of the direct road between a and b, or NoEdge
// when either city is unknown or no direct road was added between them.
// A multi-hop connection does not count.
//
// Complexity: O(1).
func (g *Graph) Distance(a, b string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	inner, ok := g.adjacency[a]
	if !ok {
		return NoEdge
	}
	d, ok := inner[b]
	if !ok {
		return NoEdge
	}

	return d
}

// HasEdge reports whether a direct road joins a and b.
// Works in both directions since roads are mirrored.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	inner, ok := g.adjacency[a]
	if !ok {
		return false
	}
	_, ok = inner[b]

	return ok
}

// EdgeCount returns the number of roads (unordered city pairs).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a snapshot of every road, each unordered pair exactly once
// with From <= To, sorted by (From, To).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, inner := range g.adjacency {
		for to, d := range inner {
			if from > to {
				continue // mirror of a pair already emitted
			}
			out = append(out, Edge{From: from, To: to, Distance: d})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

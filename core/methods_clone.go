// File: methods_clone.go
// Role: Snapshotting graph instances.
// Concurrency:
//   - Read lock on the source for the whole copy; the clone shares no maps.

package core

// Clone returns a deep copy of the Graph: every city and every road.
// Mutating either graph afterwards does not affect the other.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.adjacency)))
	for id, inner := range g.adjacency {
		cp := make(map[string]int64, len(inner))
		for to, d := range inner {
			cp[to] = d
		}
		clone.adjacency[id] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

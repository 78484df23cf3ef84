// Package core provides the in-memory road graph used by the route planner.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices are cities, identified by a non-empty name.
//   - Edges are roads; each unordered pair of cities stores at most one
//     non-negative integer distance. Adding the same pair again overwrites
//     the previous distance (last write wins).
//   - AddEdge creates missing endpoints implicitly.
//   - Distance is a direct-edge query, not a shortest-path query. It returns
//     NoEdge when either city is unknown or the two are not adjacent.
//
// Storage is a nested map adjacency[from][to] = distance, mirrored for both
// directions, so neighbour and edge lookups are O(1) expected time.
//
// Determinism:
//
//	Vertices(), Neighbors() and Edges() return sorted results, so every
//	algorithm layered on top of a Graph iterates in a reproducible order.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency. Queries take the read lock,
//	mutations take the write lock. The intended lifecycle is "build once,
//	then read from many goroutines"; Clone produces an independent snapshot
//	for callers that want to keep mutating their own copy.
//
// Core Methods:
//
//	AddVertex(id string) error                 // O(1)
//	AddEdge(a, b string, distance int64) error // O(1)
//	Distance(a, b string) int64                // O(1)
//	Neighbors(id string) []string              // O(d log d)
//	Vertices() []string                        // O(V log V)
//	HasVertex(id string) bool                  // O(1)
//	HasEdge(a, b string) bool                  // O(1)
//	Edges() []Edge                             // O(E log E)
//	Clone() *Graph                             // O(V + E)
package core

// File: types.go
// Role: Graph and Edge declarations, sentinel errors, options and constructor.
// Concurrency:
//   - mu guards adjacency and edgeCount.

package core

import (
	"errors"
	"sync"
)

// NoEdge is returned by Distance when the two cities are not directly connected
// or when either of them is unknown to the graph.
const NoEdge int64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty city name was supplied.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeDistance indicates a road with a negative length.
	// Shortest-path correctness depends on non-negative distances.
	ErrNegativeDistance = errors.New("core: negative edge distance")
)

// Edge is a read-only snapshot of one undirected road.
// From sorts lexicographically before (or equal to) To.
type Edge struct {
	From     string
	To       string
	Distance int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[string]map[string]int64, n)
		}
	}
}

// Graph is an undirected, weighted, labeled-vertex graph over city names.
//
// adjacency[a][b] == adjacency[b][a] holds for every stored road; a vertex
// without roads is present with an empty inner map.
type Graph struct {
	mu sync.RWMutex

	adjacency map[string]map[string]int64
	edgeCount int // unordered pairs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[string]map[string]int64)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

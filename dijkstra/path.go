package dijkstra

import (
	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/route"
)

// ShortestPath returns the minimum-distance walk from start to end.
//
// Contract:
//   - start and end must be cities of g; otherwise a *VertexError with Role
//     "start" or "end" is returned (start is checked first).
//   - start == end yields route.Single(start) without any traversal.
//   - A disconnected pair yields *UnreachableError.
//   - Extra options (MaxDistance, InfEdgeThreshold) narrow the search; Source,
//     Target and ReturnPath are always overridden.
//
// Complexity: O((V + E) log V) worst case; typically less thanks to the
// early exit on end.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (route.Route, error) {
	if g == nil {
		return route.Route{}, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return route.Route{}, &VertexError{ID: start, Role: "start"}
	}
	if !g.HasVertex(end) {
		return route.Route{}, &VertexError{ID: end, Role: "end"}
	}
	if start == end {
		return route.Single(start), nil
	}

	all := make([]Option, 0, len(opts)+3)
	all = append(all, opts...)
	all = append(all, Source(start), Target(end), WithReturnPath())

	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return route.Route{}, err
	}
	if prev[end] == "" {
		return route.Route{}, &UnreachableError{From: start, To: end}
	}

	return route.Route{Cities: reconstruct(prev, start, end), Distance: dist[end]}, nil
}

// reconstruct walks the predecessor chain back from end and reverses it.
func reconstruct(prev map[string]string, start, end string) []string {
	path := make([]string, 0, 8)
	for cur := end; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		if cur == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

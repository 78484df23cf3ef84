// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// undirected road graph from package core.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost walk from a source city to every
//     reachable city in O((V + E) log V), where V = |cities| and E = |roads|.
//   - A min-heap always expands the next-closest city. Improvements are
//     pushed as new heap entries ("lazy decrease-key"); an entry whose
//     distance no longer equals the best-known distance of its city is stale
//     and is discarded when popped.
//   - Road lengths are non-negative (core.Graph rejects negative distances),
//     so once the target is popped its distance is final and the search stops.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, start, end string, opts ...Option) (route.Route, error)
//
//	  - Source(string):              required for Dijkstra, the starting city.
//	  - Target(string):              stop as soon as this city is settled.
//	  - WithReturnPath():            also return the predecessor map.
//	  - WithMaxDistance(int64):      do not settle cities farther than this.
//	  - WithInfEdgeThreshold(int64): roads at least this long are impassable.
//
//	  dist[v] is math.MaxInt64 for unreachable v; prev[v] is "" for the source
//	  and for unreachable v.
//
// Error handling:
//
//   - ErrEmptySource:     Source was not supplied.
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrVertexNotFound:  a start/end/source city is unknown (ShortestPath
//     returns a *VertexError naming the city and its role).
//   - ErrUnreachable:     no walk joins start and end (*UnreachableError).
//   - ErrBadMaxDistance / ErrBadInfThreshold: invalid option values (panic
//     in the option constructor).
//
// Tie-breaking:
//
//	Entries with equal distance pop in lexicographic city order, so repeated
//	runs on the same graph return the same path, not only the same cost.
//
// Thread safety:
//
//	Each call owns its own state; concurrent calls over one graph are safe as
//	long as nobody mutates the graph meanwhile.
package dijkstra

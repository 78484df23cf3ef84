// Package bfs provides breadth-first search over the road graph from
// package core, counting roads (hops) instead of miles.
//
// What
//
//   - BFS visits cities in non-decreasing hop count from a start city and
//     returns a Result with the visit Order, the Hops of every reached city
//     and the Parent links of the BFS tree.
//   - Result.PathTo rebuilds the walk with the fewest roads to a city.
//   - Components splits a graph into its connected components.
//
// Options
//
//   - WithContext(ctx):      cancellation, checked once per visited city.
//   - WithMaxHops(n):        do not go further than n roads (n > 0).
//   - WithFilterRoad(fn):    skip roads for which fn(curr, next) is false.
//   - WithOnVisit(fn):       hook per visited city; an error aborts the search.
//
// Determinism
//
//	core.Graph.Neighbors is sorted, so the visit order and the parent of
//	every city are reproducible.
//
// Complexity (V = |cities|, E = |roads|)
//
//   - Time:   O(V + E log d) where d is the largest degree
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start city does not exist.
//   - ErrOptionViolation      for a negative MaxHops.
//   - ErrNotReached           from PathTo for a city outside the search.
//   - ctx.Err() on cancellation and wrapped OnVisit errors.
package bfs

// Package planner answers travel-planning queries over a road graph.
//
// A Planner owns an immutable snapshot of a core.Graph and an attraction
// lookup. Its main queries are:
//
//   - ShortestPath(start, end): the minimum-distance walk (Dijkstra).
//   - PlanRoute(start, end, attractions): a walk from start to end passing
//     through the city of every requested attraction. Waypoints are ordered
//     with the greedy nearest-neighbour heuristic from package tsp over a
//     matrix of pairwise shortest distances, then the per-pair shortest
//     walks are stitched together. The result approximates, but does not
//     guarantee, the shortest such walk.
//   - DistancesFrom(city): distances to every reachable city.
//   - Reachable(city, maxHops): road counts via package bfs.
//
// Regions lists the connected parts of the network; cities in different
// regions never share a route.
//
// PlanBatch runs many independent PlanRoute requests on a bounded pool of
// goroutines.
//
// Errors:
//
//	Every failure is one of three kinds, matched with errors.Is / errors.As:
//	ErrUnknownCity (*UnknownCityError), ErrUnknownAttraction
//	(*UnknownAttractionError) and ErrUnreachableDestination
//	(*UnreachableError). A failed call never returns a partial route.
//
// Concurrency:
//
//	All query methods are safe for concurrent use. Shortest-path results are
//	memoised in an LRU cache; the snapshot never changes after New.
package planner

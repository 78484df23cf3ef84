// Package routeplanner plans road trips: given a start city, an end city and
// a list of attractions to see, it returns one walk over the road network
// that visits every attraction's city and reports its total length in miles.
//
// Packages
//
//	core/      thread-safe undirected road graph (cities, roads, miles)
//	route/     the Route value: an ordered walk plus its total distance
//	dijkstra/  shortest paths between two cities
//	bfs/       fewest-roads search and connected regions
//	tsp/       greedy nearest-neighbor ordering over a distance matrix
//	planner/   attraction lookup, waypoint ordering, route stitching, caching, batches
//	catalog/   attractions and roads loaded from CSV or YAML files
//	catalog/pgstore/ the same network stored in PostgreSQL
//	config/    viper configuration and the zap logger
//	metrics/   Prometheus metrics for planning and HTTP traffic
//	server/    gin HTTP API over a Planner
//	cmd/routeplanner/ command-line entry point
//
// Quick start
//
//	g := core.NewGraph()
//	_ = g.AddEdge("New York NY", "Philadelphia PA", 95)
//	_ = g.AddEdge("Philadelphia PA", "Baltimore MD", 100)
//
//	attractions := catalog.NewAttractions()
//	_ = attractions.Add("Liberty Bell", "Philadelphia PA")
//
//	p, _ := planner.New(g, attractions)
//	r, err := p.PlanRoute("New York NY", "Baltimore MD", []string{"Liberty Bell"})
//	// r.String() == "New York NY -> Philadelphia PA -> Baltimore MD (195 miles)"
//
// Route quality
//
//	Attractions are ordered greedily (nearest first), so routes are valid
//	but not guaranteed to be the shortest possible tour.
package routeplanner

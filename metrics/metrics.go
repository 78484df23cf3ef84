package metrics

import (
	"time"
)

// Plan kinds used as the "kind" label.
const (
	KindShortestPath = "shortest_path"
	KindRoute        = "route"
	KindDistances    = "distances"
	KindReachable    = "reachable"
)

// RecordPlan records one planning call with its outcome and duration.
func (r *Registry) RecordPlan(kind string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.PlansTotal.WithLabelValues(kind, status).Inc()
	r.PlanDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordWaypoints records the size of a multi-stop waypoint set.
func (r *Registry) RecordWaypoints(n int) {
	r.PlanWaypoints.Observe(float64(n))
}

// RecordShortestPathRun counts one Dijkstra execution.
func (r *Registry) RecordShortestPathRun() {
	r.ShortestPathRuns.Inc()
}

// RecordCacheLookup records a shortest-path cache hit or miss.
func (r *Registry) RecordCacheLookup(hit bool) {
	if hit {
		r.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	r.CacheLookups.WithLabelValues("miss").Inc()
}

// SetGraphSize publishes the size of the planning graph.
func (r *Registry) SetGraphSize(cities, roads int) {
	r.GraphCities.Set(float64(cities))
	r.GraphRoads.Set(float64(roads))
}

// SetGraphRegions publishes the number of connected regions.
func (r *Registry) SetGraphRegions(n int) {
	r.GraphRegions.Set(float64(n))
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPlannerMetrics() {
	r.PlansTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routeplanner_plans_total",
			Help: "Total number of planning calls",
		},
		[]string{"kind", "status"},
	)

	r.PlanDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routeplanner_plan_duration_seconds",
			Help:    "Planning call duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"kind"},
	)

	r.PlanWaypoints = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routeplanner_plan_waypoints",
			Help:    "Number of distinct waypoint cities per multi-stop plan",
			Buckets: []float64{2, 3, 4, 6, 8, 12, 16, 32},
		},
	)

	r.ShortestPathRuns = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routeplanner_shortest_path_runs_total",
			Help: "Total number of Dijkstra executions (cache misses included)",
		},
	)

	r.CacheLookups = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routeplanner_path_cache_lookups_total",
			Help: "Shortest-path cache lookups by result",
		},
		[]string{"result"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphCities = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routeplanner_graph_cities",
			Help: "Number of cities in the planning graph",
		},
	)

	r.GraphRoads = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routeplanner_graph_roads",
			Help: "Number of roads in the planning graph",
		},
	)

	r.GraphRegions = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routeplanner_graph_regions",
			Help: "Number of connected regions in the planning graph",
		},
	)
}

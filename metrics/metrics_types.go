package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the route planner.
type Registry struct {
	// Planner Metrics
	PlansTotal       *prometheus.CounterVec
	PlanDuration     *prometheus.HistogramVec
	PlanWaypoints    prometheus.Histogram
	ShortestPathRuns prometheus.Counter
	CacheLookups     *prometheus.CounterVec

	// Graph Metrics
	GraphCities  prometheus.Gauge
	GraphRoads   prometheus.Gauge
	GraphRegions prometheus.Gauge

	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
// Every call returns an independent prometheus registry, so tests and
// multiple planners never collide on registration.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initPlannerMetrics()
	r.initGraphMetrics()
	r.initHTTPMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

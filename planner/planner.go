package planner

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/routeplanner/bfs"
	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/dijkstra"
	"github.com/katalvlaran/routeplanner/metrics"
	"github.com/katalvlaran/routeplanner/route"
	"github.com/katalvlaran/routeplanner/tsp"
	"go.uber.org/zap"
)

// AttractionLocator resolves an attraction name to the city that hosts it.
type AttractionLocator interface {
	Location(name string) (city string, ok bool)
}

// noLocator places nothing; used when New receives a nil locator.
type noLocator struct{}

func (noLocator) Location(string) (string, bool) { return "", false }

// Planner plans routes over a fixed snapshot of a road graph.
type Planner struct {
	graph   *core.Graph
	locator AttractionLocator
	cache   *pathCache
	logger  *zap.Logger
	metrics *metrics.Registry
	workers int
	regions [][]string
}

// New snapshots g (later changes to g are not seen) and returns a Planner.
// A nil loc makes every attraction unknown.
func New(g *core.Graph, loc AttractionLocator, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if loc == nil {
		loc = noLocator{}
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := newPathCache(cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("planner: path cache: %w", err)
	}

	p := &Planner{
		graph:   g.Clone(),
		locator: loc,
		cache:   cache,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		workers: cfg.workers,
	}
	if p.regions, err = bfs.Components(p.graph); err != nil {
		return nil, fmt.Errorf("planner: regions: %w", err)
	}
	if len(p.regions) > 1 {
		p.logger.Warn("Road network is not connected",
			zap.Int("regions", len(p.regions)),
			zap.Int("cities", p.graph.VertexCount()))
	}
	if p.metrics != nil {
		p.metrics.SetGraphSize(p.graph.VertexCount(), p.graph.EdgeCount())
		p.metrics.SetGraphRegions(len(p.regions))
	}

	return p, nil
}

// Cities returns every city of the snapshot, sorted.
func (p *Planner) Cities() []string { return p.graph.Vertices() }

// HasCity reports whether city is part of the snapshot.
func (p *Planner) HasCity(city string) bool { return p.graph.HasVertex(city) }

// ShortestPath returns the minimum-distance walk from start to end.
func (p *Planner) ShortestPath(start, end string) (route.Route, error) {
	began := time.Now()
	r, err := p.segment(start, end)
	p.finish(metrics.KindShortestPath, began, err,
		zap.String("start", start),
		zap.String("end", end),
		zap.Int64("distance", r.Distance))

	return r, err
}

// PlanRoute returns a walk from start to end through the city of every named
// attraction.
//
// Steps:
//  1. start and end must be known cities (checked before any attraction).
//  2. Blank names are ignored; with nothing left this is ShortestPath.
//  3. Each remaining name is trimmed and resolved; an unplaceable name fails
//     with *UnknownAttractionError, a city missing from the graph with
//     *UnknownCityError{Role: "waypoint"}.
//  4. Waypoints are start, the resolved cities in request order and end,
//     with duplicates dropped (first occurrence kept). If only start and end
//     remain this is ShortestPath.
//  5. Pairwise shortest walks fill a cost matrix; any unreachable pair fails.
//  6. tsp.NearestNeighborPath orders the waypoints; the matching walks are
//     joined with route.Join.
func (p *Planner) PlanRoute(start, end string, attractions []string) (route.Route, error) {
	began := time.Now()
	r, waypoints, err := p.planRoute(start, end, attractions)
	p.finish(metrics.KindRoute, began, err,
		zap.String("start", start),
		zap.String("end", end),
		zap.Int("attractions", len(attractions)),
		zap.Int("waypoints", waypoints),
		zap.Int64("distance", r.Distance))

	return r, err
}

// DistancesFrom returns the shortest distance from city to every reachable
// city, city itself included at 0. Unreachable cities are omitted.
func (p *Planner) DistancesFrom(city string) (map[string]int64, error) {
	began := time.Now()
	out, err := p.distancesFrom(city)
	p.finish(metrics.KindDistances, began, err,
		zap.String("city", city),
		zap.Int("reachable", len(out)))

	return out, err
}

func (p *Planner) distancesFrom(city string) (map[string]int64, error) {
	if !p.graph.HasVertex(city) {
		return nil, &UnknownCityError{City: city, Role: "start"}
	}
	if p.metrics != nil {
		p.metrics.RecordShortestPathRun()
	}
	dist, _, err := dijkstra.Dijkstra(p.graph, dijkstra.Source(city))
	if err != nil {
		return nil, translate(err)
	}

	out := make(map[string]int64, len(dist))
	for c, d := range dist {
		if d != math.MaxInt64 {
			out[c] = d
		}
	}

	return out, nil
}

func (p *Planner) planRoute(start, end string, attractions []string) (route.Route, int, error) {
	if !p.graph.HasVertex(start) {
		return route.Route{}, 0, &UnknownCityError{City: start, Role: "start"}
	}
	if !p.graph.HasVertex(end) {
		return route.Route{}, 0, &UnknownCityError{City: end, Role: "end"}
	}

	names := nonBlank(attractions)
	if len(names) == 0 {
		r, err := p.segment(start, end)
		return r, 0, err
	}

	waypoints, err := p.waypoints(start, end, names)
	if err != nil {
		return route.Route{}, 0, err
	}
	if p.metrics != nil {
		p.metrics.RecordWaypoints(len(waypoints))
	}
	if onlyEndpoints(waypoints, start, end) {
		r, err := p.segment(start, end)
		return r, len(waypoints), err
	}

	n := len(waypoints)
	endIdx := indexOf(waypoints, end)
	cost := tsp.NewMatrix(n)
	segs := make([][]route.Route, n)
	for i := 0; i < n; i++ {
		segs[i] = make([]route.Route, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			seg, err := p.segment(waypoints[i], waypoints[j])
			if err != nil {
				return route.Route{}, n, err
			}
			segs[i][j] = seg
			cost.Set(i, j, seg.Distance)
		}
	}

	order, err := tsp.NearestNeighborPath(cost, 0, endIdx)
	if err != nil {
		return route.Route{}, n, fmt.Errorf("planner: order waypoints: %w", err)
	}
	p.logger.Debug("Waypoints ordered",
		zap.Strings("waypoints", waypoints),
		zap.String("order", tsp.DebugString(order.Order)),
		zap.Int64("matrix_cost", order.Cost))

	legs := make([]route.Route, 0, len(order.Order)-1)
	for k := 1; k < len(order.Order); k++ {
		legs = append(legs, segs[order.Order[k-1]][order.Order[k]])
	}

	return route.Join(legs...), n, nil
}

// waypoints resolves names and builds the deduplicated visiting set with
// start first. end keeps the position of its first occurrence.
func (p *Planner) waypoints(start, end string, names []string) ([]string, error) {
	out := make([]string, 0, len(names)+2)
	seen := make(map[string]struct{}, len(names)+2)
	push := func(city string) {
		if _, ok := seen[city]; ok {
			return
		}
		seen[city] = struct{}{}
		out = append(out, city)
	}

	push(start)
	for _, name := range names {
		city, ok := p.locator.Location(name)
		if !ok {
			return nil, &UnknownAttractionError{Name: name}
		}
		if !p.graph.HasVertex(city) {
			return nil, &UnknownCityError{City: city, Role: "waypoint"}
		}
		push(city)
	}
	push(end)

	return out, nil
}

// segment returns the shortest walk between two cities, consulting the cache.
func (p *Planner) segment(from, to string) (route.Route, error) {
	if r, ok := p.cache.get(from, to); ok {
		p.recordCache(true)
		return r, nil
	}
	p.recordCache(false)

	if p.metrics != nil {
		p.metrics.RecordShortestPathRun()
	}
	r, err := dijkstra.ShortestPath(p.graph, from, to)
	if err != nil {
		return route.Route{}, translate(err)
	}
	p.cache.add(from, to, r)

	return r, nil
}

func (p *Planner) recordCache(hit bool) {
	if p.metrics != nil && p.cache != nil {
		p.metrics.RecordCacheLookup(hit)
	}
}

// finish logs and records the outcome of a public query.
func (p *Planner) finish(kind string, began time.Time, err error, fields ...zap.Field) {
	elapsed := time.Since(began)
	if p.metrics != nil {
		p.metrics.RecordPlan(kind, err, elapsed)
	}

	fields = append(fields, zap.String("kind", kind), zap.Duration("elapsed", elapsed))
	if err != nil {
		p.logger.Warn("Planning failed", append(fields, zap.Error(err))...)
		return
	}
	p.logger.Debug("Planning finished", fields...)
}

// translate maps dijkstra failures onto the planner error kinds.
func translate(err error) error {
	var ve *dijkstra.VertexError
	if errors.As(err, &ve) {
		return &UnknownCityError{City: ve.ID, Role: ve.Role}
	}
	var ue *dijkstra.UnreachableError
	if errors.As(err, &ue) {
		return &UnreachableError{From: ue.From, To: ue.To}
	}
	return err
}

// nonBlank trims names and drops the empty ones.
func nonBlank(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func onlyEndpoints(waypoints []string, start, end string) bool {
	for _, w := range waypoints {
		if w != start && w != end {
			return false
		}
	}
	return true
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

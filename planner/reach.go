package planner

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/routeplanner/bfs"
	"github.com/katalvlaran/routeplanner/metrics"
)

// Regions returns the connected regions of the snapshot. Cities in
// different regions can never appear on one route.
func (p *Planner) Regions() [][]string {
	out := make([][]string, len(p.regions))
	for i, r := range p.regions {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// Reachable maps every city reachable from city to the number of roads on
// the walk with the fewest roads. maxHops > 0 limits the search; 0 means no
// limit.
func (p *Planner) Reachable(city string, maxHops int) (map[string]int, error) {
	began := time.Now()
	out, err := p.reachable(city, maxHops)
	p.finish(metrics.KindReachable, began, err,
		zap.String("city", city),
		zap.Int("max_hops", maxHops),
		zap.Int("reachable", len(out)))

	return out, err
}

func (p *Planner) reachable(city string, maxHops int) (map[string]int, error) {
	if !p.graph.HasVertex(city) {
		return nil, &UnknownCityError{City: city, Role: "start"}
	}
	res, err := bfs.BFS(p.graph, city, bfs.WithMaxHops(maxHops))
	if err != nil {
		return nil, err
	}
	return res.Hops, nil
}

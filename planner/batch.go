package planner

import (
	"context"

	"github.com/katalvlaran/routeplanner/route"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Request is one PlanRoute query.
type Request struct {
	Start       string   `json:"start" validate:"required"`
	End         string   `json:"end" validate:"required"`
	Attractions []string `json:"attractions"`
}

// Result pairs a Request with its outcome. Exactly one of Route / Err is
// meaningful.
type Result struct {
	Request Request
	Route   route.Route
	Err     error
}

// PlanBatch plans every request independently on at most WithWorkers
// goroutines. Results keep the order of reqs. A failing request does not
// affect the others; requests not started before ctx is done get ctx.Err().
func (p *Planner) PlanBatch(ctx context.Context, reqs []Request) []Result {
	results := make([]Result, len(reqs))
	for i, req := range reqs {
		results[i].Request = req
	}

	var g errgroup.Group
	g.SetLimit(p.workers)

	for i := range reqs {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(reqs); j++ {
				results[j].Err = err
			}
			break
		}

		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			req := reqs[i]
			results[i].Route, results[i].Err = p.PlanRoute(req.Start, req.End, req.Attractions)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	p.logger.Debug("Batch finished",
		zap.Int("requests", len(reqs)),
		zap.Int("failed", failed),
		zap.Int("workers", p.workers))

	return results
}

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start city is absent.
	ErrStartVertexNotFound = errors.New("bfs: start city not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a city the search never reached.
	ErrNotReached = errors.New("bfs: city not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a city with its hop count from the
	// start. Returning an error aborts the search.
	OnVisit func(city string, hops int) error

	// MaxHops, if > 0, stops exploring beyond this many roads.
	MaxHops int

	// FilterRoad skips the road curr–next when it returns false.
	FilterRoad func(curr, next string) bool

	err error
}

// DefaultOptions returns Options with a background context, no hop limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		FilterRoad: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(city string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops limits the search depth.
//
//	n > 0:  visit cities at most n roads away
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithFilterRoad skips roads for which fn returns false.
func WithFilterRoad(fn func(curr, next string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterRoad = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: cities in visit sequence.
//   - Hops: city → number of roads from the start.
//   - Parent: city → its predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// PathTo reconstructs the fewest-roads walk from the start city to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Hops[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}

	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

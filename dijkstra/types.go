package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested city does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that no walk connects the requested cities.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// VertexError names the city that was not found and the role it played
// in the request ("source", "start" or "end").
type VertexError struct {
	ID   string
	Role string
}

func (e *VertexError) Error() string {
	return fmt.Sprintf("dijkstra: %s vertex %q not found in graph", e.Role, e.ID)
}

// Unwrap lets errors.Is match ErrVertexNotFound.
func (e *VertexError) Unwrap() error { return ErrVertexNotFound }

// UnreachableError reports a disconnected start/end pair.
type UnreachableError struct {
	From string
	To   string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("dijkstra: no path from %q to %q", e.From, e.To)
}

// Unwrap lets errors.Is match ErrUnreachable.
func (e *UnreachableError) Unwrap() error { return ErrUnreachable }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting city (must be non-empty and present in the graph).
// Target           – optional; the search stops once this city is settled.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – cities farther than this are not settled. Default math.MaxInt64.
// InfEdgeThreshold – roads with distance ≥ this are impassable. Default math.MaxInt64.
type Options struct {
	Source           string
	Target           string
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting city.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target makes the search terminate as soon as id is popped from the frontier.
// Distances of cities not yet settled at that moment are upper bounds only.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes roads with distance ≥ threshold non-traversable.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options initialized with defaults for source.
//
// Defaults:
//   - Target:           "" (explore everything reachable).
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64.
//   - InfEdgeThreshold: math.MaxInt64.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

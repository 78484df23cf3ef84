package planner

import (
	"errors"
	"fmt"
)

// Sentinel errors; the typed errors below unwrap to them.
var (
	// ErrUnknownCity indicates a start, end or waypoint city missing from the graph.
	ErrUnknownCity = errors.New("planner: unknown city")

	// ErrUnknownAttraction indicates an attraction with no known location.
	ErrUnknownAttraction = errors.New("planner: unknown attraction")

	// ErrUnreachableDestination indicates two required cities with no walk between them.
	ErrUnreachableDestination = errors.New("planner: unreachable destination")

	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("planner: graph is nil")
)

// UnknownCityError names the missing city and the role it played:
// "start", "end" or "waypoint".
type UnknownCityError struct {
	City string
	Role string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("planner: %s city %q is not in the map", e.Role, e.City)
}

func (e *UnknownCityError) Unwrap() error { return ErrUnknownCity }

// UnknownAttractionError names an attraction the lookup could not place.
type UnknownAttractionError struct {
	Name string
}

func (e *UnknownAttractionError) Error() string {
	return fmt.Sprintf("planner: location of attraction %q can't be found", e.Name)
}

func (e *UnknownAttractionError) Unwrap() error { return ErrUnknownAttraction }

// UnreachableError names both endpoints of a disconnected pair.
type UnreachableError struct {
	From string
	To   string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("planner: there is no path from %q to %q", e.From, e.To)
}

func (e *UnreachableError) Unwrap() error { return ErrUnreachableDestination }

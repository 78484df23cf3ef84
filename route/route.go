// Package route defines Route, the value produced by every planning call:
// an ordered sequence of cities plus the accumulated travel distance.
//
// A Route is plain data. It is created fresh per planning call, never
// mutated after being handed to a caller, and safe to copy by value (use
// New or Join to obtain an independent city slice).
//
// Invariant (not enforced on construction):
//
//	For a Route with k ≥ 1 cities that forms a valid walk, Distance equals
//	the sum of the direct edge weights between consecutive cities.
//	Validate checks this against any Weigher (core.Graph satisfies it).
package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by Validate.
var (
	// ErrEmptyRoute indicates a route with no cities.
	ErrEmptyRoute = errors.New("route: no cities")

	// ErrBrokenWalk indicates two consecutive cities without a direct road.
	ErrBrokenWalk = errors.New("route: consecutive cities are not adjacent")

	// ErrDistanceMismatch indicates Distance differs from the sum of its legs.
	ErrDistanceMismatch = errors.New("route: distance does not match legs")
)

// Weigher reports the direct edge weight between two cities, or a negative
// value when no direct edge exists.
type Weigher interface {
	Distance(a, b string) int64
}

// Route is an ordered city sequence (travel order) with its total distance.
type Route struct {
	Cities   []string `json:"cities" yaml:"cities"`
	Distance int64    `json:"distance" yaml:"distance"`
}

// New returns a Route holding a private copy of cities.
func New(cities []string, distance int64) Route {
	cp := make([]string, len(cities))
	copy(cp, cities)

	return Route{Cities: cp, Distance: distance}
}

// Single returns the zero-distance route that stays in city.
func Single(city string) Route {
	return Route{Cities: []string{city}, Distance: 0}
}

// Len returns the number of cities on the route.
func (r Route) Len() int { return len(r.Cities) }

// First returns the first city or "" for an empty route.
func (r Route) First() string {
	if len(r.Cities) == 0 {
		return ""
	}
	return r.Cities[0]
}

// Last returns the final city or "" for an empty route.
func (r Route) Last() string {
	if len(r.Cities) == 0 {
		return ""
	}
	return r.Cities[len(r.Cities)-1]
}

// Contains reports whether city appears anywhere on the route.
func (r Route) Contains(city string) bool {
	for _, c := range r.Cities {
		if c == city {
			return true
		}
	}
	return false
}

// Equal reports whether both routes visit the same cities in the same order
// with the same distance.
func (r Route) Equal(o Route) bool {
	if r.Distance != o.Distance || len(r.Cities) != len(o.Cities) {
		return false
	}
	for i := range r.Cities {
		if r.Cities[i] != o.Cities[i] {
			return false
		}
	}
	return true
}

// Join stitches consecutive segments into a single route.
//
// The first segment contributes every city; each following segment
// contributes all cities except its first, which duplicates the previous
// segment's last city. The distance is the sum of segment distances.
// Segments are assumed to chain (seg[i].Last() == seg[i+1].First()).
//
// Complexity: O(total cities).
func Join(segments ...Route) Route {
	total := 0
	for _, s := range segments {
		total += len(s.Cities)
	}
	out := Route{Cities: make([]string, 0, total)}

	for i, s := range segments {
		if i == 0 {
			out.Cities = append(out.Cities, s.Cities...)
		} else if len(s.Cities) > 1 {
			out.Cities = append(out.Cities, s.Cities[1:]...)
		}
		out.Distance += s.Distance
	}

	return out
}

// Validate checks that r is a walk in w and that Distance equals the sum of
// its legs. A single-city route must have zero distance.
func (r Route) Validate(w Weigher) error {
	if len(r.Cities) == 0 {
		return ErrEmptyRoute
	}

	var sum int64
	for i := 1; i < len(r.Cities); i++ {
		a, b := r.Cities[i-1], r.Cities[i]
		d := w.Distance(a, b)
		if d < 0 {
			return fmt.Errorf("%w: %s -> %s", ErrBrokenWalk, a, b)
		}
		sum += d
	}
	if sum != r.Distance {
		return fmt.Errorf("%w: legs sum to %d, route says %d", ErrDistanceMismatch, sum, r.Distance)
	}

	return nil
}

// String renders the route as "A -> B -> C (8 miles)".
func (r Route) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(r.Cities, " -> "))
	sb.WriteString(" (")
	sb.WriteString(strconv.FormatInt(r.Distance, 10))
	if r.Distance == 1 {
		sb.WriteString(" mile)")
	} else {
		sb.WriteString(" miles)")
	}

	return sb.String()
}

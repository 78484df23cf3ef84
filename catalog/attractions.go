package catalog

import (
	"sort"
	"sync"
)

// Attraction is one attraction record.
type Attraction struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	City string `json:"city" yaml:"city" validate:"required"`
}

// Attractions maps attraction names to their owning city and keeps the
// reverse city → attractions index. Safe for concurrent use.
type Attractions struct {
	mu     sync.RWMutex
	byName map[string]string
	byCity map[string]map[string]struct{}
}

// NewAttractions returns an empty lookup.
func NewAttractions() *Attractions {
	return &Attractions{
		byName: make(map[string]string),
		byCity: make(map[string]map[string]struct{}),
	}
}

// Add binds name to city. A later Add for the same name moves it to the new
// city.
func (a *Attractions) Add(name, city string) error {
	if err := validateRecord(Attraction{Name: name, City: city}); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if old, ok := a.byName[name]; ok && old != city {
		delete(a.byCity[old], name)
		if len(a.byCity[old]) == 0 {
			delete(a.byCity, old)
		}
	}
	a.byName[name] = city
	set, ok := a.byCity[city]
	if !ok {
		set = make(map[string]struct{})
		a.byCity[city] = set
	}
	set[name] = struct{}{}

	return nil
}

// Location returns the city hosting name (exact match).
func (a *Attractions) Location(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	city, ok := a.byName[name]

	return city, ok
}

// AttractionsIn lists the attractions of city, sorted. Never nil.
func (a *Attractions) AttractionsIn(city string) []string {
	a.mu.RLock()
	out := make([]string, 0, len(a.byCity[city]))
	for name := range a.byCity[city] {
		out = append(out, name)
	}
	a.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Names lists every attraction, sorted.
func (a *Attractions) Names() []string {
	a.mu.RLock()
	out := make([]string, 0, len(a.byName))
	for name := range a.byName {
		out = append(out, name)
	}
	a.mu.RUnlock()
	sort.Strings(out)

	return out
}

// All returns every record sorted by name.
func (a *Attractions) All() []Attraction {
	names := a.Names()
	out := make([]Attraction, 0, len(names))
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, n := range names {
		if city, ok := a.byName[n]; ok {
			out = append(out, Attraction{Name: n, City: city})
		}
	}

	return out
}

// Len returns the number of attractions.
func (a *Attractions) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.byName)
}

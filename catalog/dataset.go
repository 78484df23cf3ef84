package catalog

import (
	"fmt"

	"github.com/katalvlaran/routeplanner/core"
)

// Dataset is everything needed to build a planner: the attraction lookup,
// the road list and the cities mentioned by either, in first-seen order.
type Dataset struct {
	Attractions *Attractions
	Roads       []Road

	cities []string
	seen   map[string]struct{}
}

// NewDataset returns an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{
		Attractions: NewAttractions(),
		seen:        make(map[string]struct{}),
	}
}

// AddCity registers a city that may have neither roads nor attractions.
func (d *Dataset) AddCity(name string) error {
	if name == "" {
		return fmt.Errorf("%w: city name is required", ErrInvalidRecord)
	}
	d.addCity(name)

	return nil
}

// AddAttraction records an attraction and registers its city.
func (d *Dataset) AddAttraction(a Attraction) error {
	if err := d.Attractions.Add(a.Name, a.City); err != nil {
		return err
	}
	d.addCity(a.City)

	return nil
}

// AddRoad records a road and registers both of its cities.
func (d *Dataset) AddRoad(r Road) error {
	if err := r.Validate(); err != nil {
		return err
	}
	d.Roads = append(d.Roads, r)
	d.addCity(r.CityA)
	d.addCity(r.CityB)

	return nil
}

// Cities returns every known city in first-seen order.
func (d *Dataset) Cities() []string {
	out := make([]string, len(d.cities))
	copy(out, d.cities)

	return out
}

func (d *Dataset) addCity(c string) {
	if _, ok := d.seen[c]; ok {
		return
	}
	d.seen[c] = struct{}{}
	d.cities = append(d.cities, c)
}

// BuildGraph adds every city as a vertex, then every road as an edge.
// Cities that host attractions but have no roads stay isolated vertices.
func (d *Dataset) BuildGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(d.cities)))
	for _, c := range d.cities {
		if err := g.AddVertex(c); err != nil {
			return nil, fmt.Errorf("catalog: city %q: %w", c, err)
		}
	}
	for _, r := range d.Roads {
		if err := g.AddEdge(r.CityA, r.CityB, r.Distance); err != nil {
			return nil, fmt.Errorf("catalog: road %s - %s: %w", r.CityA, r.CityB, err)
		}
	}

	return g, nil
}

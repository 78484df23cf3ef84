// Package catalog holds the data the planner is built from: attraction
// records (attraction name → owning city) and road records (two cities and
// a distance), plus loaders that read them from CSV or YAML files.
//
// A Dataset collects both record kinds, remembers every city in first-seen
// order and turns itself into a core.Graph with BuildGraph. *Attractions
// satisfies planner.AttractionLocator.
//
// CSV format (one file per record kind, first row is a header):
//
//	Name,Location               Distance file:  CityA,CityB,Distance
//	Statue of Liberty,New York NY                 New York NY,Boston MA,215
//
// Fields are trimmed; rows with the wrong number of fields are skipped; a
// distance that is not an integer, a negative distance or an empty field is
// an error naming the line.
//
// YAML format (a single file):
//
//	attractions:
//	  - {name: Statue of Liberty, city: New York NY}
//	roads:
//	  - {from: New York NY, to: Boston MA, distance: 215}
package catalog

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads an attractions file and a roads file into a new Dataset.
// Attractions are loaded first, so their cities lead the city order.
func LoadCSV(attractionsPath, roadsPath string) (*Dataset, error) {
	attractions, err := readFile(attractionsPath, ReadAttractionsCSV)
	if err != nil {
		return nil, err
	}
	roads, err := readFile(roadsPath, ReadRoadsCSV)
	if err != nil {
		return nil, err
	}

	d := NewDataset()
	for _, a := range attractions {
		if err := d.AddAttraction(a); err != nil {
			return nil, err
		}
	}
	for _, r := range roads {
		if err := d.AddRoad(r); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}

// ReadAttractionsCSV parses "name,city" rows after a header row.
func ReadAttractionsCSV(r io.Reader) ([]Attraction, error) {
	var out []Attraction
	err := eachRow(r, 2, func(line int, fields []string) error {
		a := Attraction{Name: fields[0], City: fields[1]}
		if err := validateRecord(a); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, a)
		return nil
	})

	return out, err
}

// ReadRoadsCSV parses "cityA,cityB,distance" rows after a header row.
func ReadRoadsCSV(r io.Reader) ([]Road, error) {
	var out []Road
	err := eachRow(r, 3, func(line int, fields []string) error {
		d, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w: distance %q is not an integer", line, ErrInvalidRecord, fields[2])
		}
		road := Road{CityA: fields[0], CityB: fields[1], Distance: d}
		if err := road.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, road)
		return nil
	})

	return out, err
}

// eachRow calls fn with the trimmed fields of every data row that has
// exactly want fields. The first record is the header and is skipped.
func eachRow(r io.Reader, want int, fn func(line int, fields []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(rec) != want {
			continue
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		line, _ := cr.FieldPos(0)
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

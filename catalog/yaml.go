package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// networkFile is the on-disk YAML layout.
type networkFile struct {
	Attractions []Attraction `yaml:"attractions"`
	Roads       []Road       `yaml:"roads"`
}

// LoadYAML reads a single YAML network file into a new Dataset.
func LoadYAML(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// ReadYAML decodes a network document. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*Dataset, error) {
	var doc networkFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}

	d := NewDataset()
	for i, a := range doc.Attractions {
		if err := d.AddAttraction(a); err != nil {
			return nil, fmt.Errorf("attractions[%d]: %w", i, err)
		}
	}
	for i, r := range doc.Roads {
		if err := d.AddRoad(r); err != nil {
			return nil, fmt.Errorf("roads[%d]: %w", i, err)
		}
	}

	return d, nil
}

// WriteYAML encodes d in the format ReadYAML accepts.
func WriteYAML(w io.Writer, d *Dataset) error {
	doc := networkFile{
		Attractions: d.Attractions.All(),
		Roads:       d.Roads,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("catalog: encode yaml: %w", err)
	}

	return enc.Close()
}

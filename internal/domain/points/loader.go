package points

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type fileDocument struct {
	ExtendsDefault bool           `yaml:"extends_default"`
	Points         map[string]int `yaml:"points"`
}

// LoadYAML reads an alternate table. With extends_default the document
// overrides the canonical values; otherwise it replaces them entirely.
//
//	extends_default: true
//	points:
//	  "La Liga Title": 2
func LoadYAML(r io.Reader) (Table, error) {
	var doc fileDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return Table{}, fmt.Errorf("points document is empty")
		}
		return Table{}, fmt.Errorf("decode points document: %w", err)
	}

	custom, err := New(doc.Points)
	if err != nil {
		return Table{}, err
	}
	if !doc.ExtendsDefault {
		return custom, nil
	}

	out := Default()
	for label, value := range custom.values {
		out.values[label] = value
	}
	return out, nil
}

// LoadFile reads a table from path. An empty path yields the default table.
func LoadFile(path string) (Table, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open points file: %w", err)
	}
	defer f.Close()

	table, err := LoadYAML(f)
	if err != nil {
		return Table{}, fmt.Errorf("load points file %s: %w", path, err)
	}
	return table, nil
}

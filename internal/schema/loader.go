package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values and derives variant kinds.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Enums {
		e := &f.Enums[i]

		for j := range e.Generics {
			if e.Generics[j].Constraint == "" {
				e.Generics[j].Constraint = "any"
			}
		}

		for j := range e.Variants {
			v := &e.Variants[j]
			v.Kind = deriveKind(v.Fields)
		}
	}
}

// deriveKind classifies a variant by its field list. Mixed named/unnamed
// field lists are caught by Validate; here the first field decides.
func deriveKind(fields []Field) Kind {
	if len(fields) == 0 {
		return KindUnit
	}

	if fields[0].Name == "" {
		return KindTuple
	}

	return KindNamed
}

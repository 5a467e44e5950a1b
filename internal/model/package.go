package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// descriptorSep separates the fields of a compact package descriptor,
// e.g. "nuget;newtonsoft.json;12.0.3".
const descriptorSep = ";"

// PackageSpec references one package dependency of a buildable.
// The zero value is valid as a decode target; fields are then populated by name.
type PackageSpec struct {
	Repository string
	Name       string
	Version    string
}

// ParsePackageSpec splits a "repository;name;version" descriptor.
// Segments are kept verbatim: no trimming and no case folding.
func ParsePackageSpec(desc string) (PackageSpec, error) {
	parts := strings.Split(desc, descriptorSep)
	if len(parts) != 3 {
		return PackageSpec{}, fmt.Errorf("%w: %q has %d fields, want 3", ErrMalformedSpec, desc, len(parts))
	}
	for i, p := range parts {
		if p == "" {
			return PackageSpec{}, fmt.Errorf("%w: %q has an empty field at position %d", ErrMalformedSpec, desc, i+1)
		}
	}
	return PackageSpec{Repository: parts[0], Name: parts[1], Version: parts[2]}, nil
}

// String returns the compact descriptor form.
func (p PackageSpec) String() string {
	return p.Repository + descriptorSep + p.Name + descriptorSep + p.Version
}

// packageFields is the by-name form of a PackageSpec inside a catalog.
type packageFields struct {
	Repository string `yaml:"repository"`
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
}

// UnmarshalYAML accepts either the descriptor string or a mapping with
// repository, name and version keys.
func (p *PackageSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		spec, err := ParsePackageSpec(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*p = spec
		return nil
	case yaml.MappingNode:
		FoldKeys(value, packageKeys)
		var f packageFields
		if err := value.Decode(&f); err != nil {
			return err
		}
		if f.Repository == "" || f.Name == "" || f.Version == "" {
			return fmt.Errorf("line %d: %w: repository, name and version are all required", value.Line, ErrMalformedSpec)
		}
		*p = PackageSpec{Repository: f.Repository, Name: f.Name, Version: f.Version}
		return nil
	default:
		return fmt.Errorf("line %d: %w: expected a descriptor string or a mapping", value.Line, ErrMalformedSpec)
	}
}

// MarshalYAML encodes the spec as its descriptor string.
func (p PackageSpec) MarshalYAML() (any, error) {
	return p.String(), nil
}

// MarshalJSON encodes the spec as its descriptor string.
func (p PackageSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

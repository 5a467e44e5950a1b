package model

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TargetType is the kind of artifact a buildable produces.
type TargetType string

// TargetConsole is a console (command line) executable.
const TargetConsole TargetType = "console"

// ParseTargetType maps a type name onto a TargetType. Matching is
// case-insensitive and the empty string means console.
func ParseTargetType(s string) (TargetType, error) {
	switch strings.ToLower(s) {
	case "", string(TargetConsole):
		return TargetConsole, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTarget, s)
	}
}

// UnmarshalYAML decodes and checks a target type name.
func (t *TargetType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tt, err := ParseTargetType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = tt
	return nil
}

// Buildable is one named unit of sources and settings producing one artifact.
type Buildable struct {
	Type      TargetType    `yaml:"type" json:"type"`
	Framework string        `yaml:"framework" json:"framework"`
	Sources   []string      `yaml:"sources" json:"sources"`
	Packages  []PackageSpec `yaml:"packages" json:"packages"`
	OutputDir string        `yaml:"outputDir,omitempty" json:"outputDir,omitempty"`
}

// SourceExpression joins the source patterns in order without a separator.
// Multiple patterns therefore run together ("*.cs*.fs"); MSBuild would
// expect them separated by ';'.
func (b *Buildable) SourceExpression() string {
	return strings.Join(b.Sources, "")
}

// Normalize replaces absent optional fields with their empty values so
// consumers never see nil slices or an unset type.
func (b *Buildable) Normalize() {
	if b.Type == "" {
		b.Type = TargetConsole
	}
	if b.Sources == nil {
		b.Sources = []string{}
	}
	if b.Packages == nil {
		b.Packages = []PackageSpec{}
	}
}

// Validate reports every problem that prevents the buildable from being emitted.
func (b *Buildable) Validate() error {
	var errs []error
	if _, err := ParseTargetType(string(b.Type)); err != nil {
		errs = append(errs, err)
	}
	if b.Framework == "" {
		errs = append(errs, ErrMissingFramework)
	}
	if len(b.Sources) == 0 {
		errs = append(errs, ErrMissingSources)
	}
	return errors.Join(errs...)
}

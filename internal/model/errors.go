// Package model holds the in-memory description of a buildable unit and the
// package references it depends on. Values are produced by the catalog
// loader and consumed by the emitters.
package model

import "errors"

// Sentinel errors for the model package.
var (
	// ErrMalformedSpec indicates a package descriptor that does not split
	// into exactly three non-empty fields.
	ErrMalformedSpec = errors.New("model: malformed package descriptor")

	// ErrMissingSources indicates a buildable without any source pattern.
	ErrMissingSources = errors.New("model: buildable has no sources")

	// ErrMissingFramework indicates a buildable without a target framework.
	ErrMissingFramework = errors.New("model: buildable has no framework")

	// ErrUnsupportedTarget indicates an unknown target type.
	ErrUnsupportedTarget = errors.New("model: unsupported target type")

	// ErrInvalidName indicates a buildable name that cannot be used as a
	// file name stem.
	ErrInvalidName = errors.New("model: invalid buildable name")
)

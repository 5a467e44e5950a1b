// Package project implements "csmake init": it turns the resolved
// configuration into a starter catalog holding a single buildable.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the catalog file already exists and Force was not set.
	ErrProjectExists = errors.New("project: catalog already exists")

	// ErrInitFailed indicates a scaffolding step failed.
	ErrInitFailed = errors.New("project: initialization failed")
)

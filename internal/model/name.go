package model

import (
	"fmt"
	"strings"
)

// ValidateName checks that name can be used as the stem of a generated file
// in a single directory.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q must not contain a path separator", ErrInvalidName, name)
	}
	return nil
}

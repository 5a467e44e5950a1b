// Package emit renders buildables into project descriptors for a
// downstream build toolchain. Each target framework is served by a
// Strategy registered in a Registry.
package emit

import "errors"

// Sentinel errors for the emit package.
var (
	// ErrUnsupportedFramework indicates that no strategy is registered for
	// the buildable's framework. Nothing is rendered or written.
	ErrUnsupportedFramework = errors.New("emit: unsupported framework")

	// ErrDuplicateFramework indicates two strategies for the same framework.
	ErrDuplicateFramework = errors.New("emit: duplicate framework strategy")

	// ErrIncompleteRegistry indicates a known framework without a strategy.
	ErrIncompleteRegistry = errors.New("emit: framework registry is incomplete")

	// ErrTemplateNotFound indicates a missing embedded template.
	ErrTemplateNotFound = errors.New("emit: template not found")

	// ErrRenderFailed indicates a template execution failure, usually a
	// missing key in the template data.
	ErrRenderFailed = errors.New("emit: template execution failed")
)

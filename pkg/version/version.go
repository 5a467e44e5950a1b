// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

// Build-time variables injected via -ldflags, for example:
//
//	go build -ldflags "-X github.com/smashedpumpkin/csmake/pkg/version.Version=v0.2.0"
var (
	Version = "v0.1.0"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with its commit and build date, as
// printed by --version.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}

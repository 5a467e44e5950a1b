package defs

// Common file names used across the project.
const (
	// ConfigFileName is the cascading configuration file looked up in the
	// working directory and every parent directory.
	ConfigFileName = ".csmake"

	// CatalogExt is the extension of catalog files written by init.
	CatalogExt = ".json"

	// CSProjExt is the extension of generated MSBuild project files.
	CSProjExt = ".csproj"
)

// Environment variables that override values resolved from config files.
const (
	EnvType      = "CSMAKE_TYPE"
	EnvFramework = "CSMAKE_FRAMEWORK"
	EnvSources   = "CSMAKE_SOURCES"
	EnvLogLevel  = "CSMAKE_LOG_LEVEL"
)

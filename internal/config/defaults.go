package config

// Default value constants.
const (
	DefaultType      = "console"
	DefaultFramework = "netcoreapp3.1"
	DefaultSource    = "*.cs"
)

// NewDefaultConfig returns the compiled defaults. Every call returns an
// independent value.
func NewDefaultConfig() Config {
	return Config{
		Type:      DefaultType,
		Framework: DefaultFramework,
		Sources:   []string{DefaultSource},
	}
}

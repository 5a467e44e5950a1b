package config

import "slices"

// Config holds every value a .csmake file may set. Files can set any
// subset of the fields; the rest are inherited from other layers.
type Config struct {
	Type      string   `yaml:"type" json:"type"`
	Framework string   `yaml:"framework" json:"framework"`
	Sources   []string `yaml:"sources" json:"sources"`
}

// Clone returns a deep copy that shares no memory with c.
func (c Config) Clone() Config {
	c.Sources = slices.Clone(c.Sources)
	return c
}

// Equal reports whether two configs hold the same values.
func (c Config) Equal(o Config) bool {
	return c.Type == o.Type && c.Framework == o.Framework && slices.Equal(c.Sources, o.Sources)
}

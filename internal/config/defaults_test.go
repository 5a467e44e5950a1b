package config

import (
	"slices"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	if cfg.Type != "console" {
		t.Errorf("Type: got %q, want %q", cfg.Type, "console")
	}
	if cfg.Framework != "netcoreapp3.1" {
		t.Errorf("Framework: got %q, want %q", cfg.Framework, "netcoreapp3.1")
	}
	if !slices.Equal(cfg.Sources, []string{"*.cs"}) {
		t.Errorf("Sources: got %v, want %v", cfg.Sources, []string{"*.cs"})
	}
}

func TestNewDefaultConfigIndependent(t *testing.T) {
	t.Parallel()

	a := NewDefaultConfig()
	a.Sources[0] = "mutated"

	b := NewDefaultConfig()
	if b.Sources[0] != DefaultSource {
		t.Errorf("defaults share state: got %q, want %q", b.Sources[0], DefaultSource)
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	orig := Config{Type: "console", Framework: "f", Sources: []string{"a", "b"}}
	c := orig.Clone()
	c.Sources[0] = "z"

	if orig.Sources[0] != "a" {
		t.Errorf("Clone aliased Sources: original now %v", orig.Sources)
	}
	if !orig.Equal(Config{Type: "console", Framework: "f", Sources: []string{"a", "b"}}) {
		t.Errorf("original modified: %+v", orig)
	}
}

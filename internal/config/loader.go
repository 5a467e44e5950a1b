package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smashedpumpkin/csmake/internal/model"
)

// configKeys are the keys a .csmake file may set.
var configKeys = []string{"type", "framework", "sources"}

// Merge decodes data (YAML, which includes JSON) on top of a copy of c and
// returns the copy. Keys present in data replace the current value, a
// present sources array included; absent keys keep it. c itself is never
// modified. Empty data and an empty object are identity merges.
//
// Keys match case-insensitively; unknown keys are logged and ignored.
func (c Config) Merge(data []byte) (Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return c, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if len(doc.Content) == 0 {
		return c.Clone(), nil
	}

	for _, k := range model.FoldKeys(doc.Content[0], configKeys) {
		slog.Warn("ignoring unknown config key", "key", k)
	}

	next := c.Clone()
	if err := doc.Decode(&next); err != nil {
		return c, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return next, nil
}

// MergeFrom reads the file at path and merges it onto c.
func (c Config) MergeFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read %s: %w", path, err)
	}
	next, err := c.Merge(data)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return next, nil
}

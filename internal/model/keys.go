package model

import (
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field names of a Buildable, as written in catalogs.
var BuildableKeys = []string{"type", "framework", "sources", "packages", "outputDir"}

var packageKeys = []string{"repository", "name", "version"}

// FoldKeys rewrites the keys of the mapping node n that match one of known
// case-insensitively to their canonical spelling, so "Framework" decodes as
// "framework". It returns the keys that match none of known, in document
// order. Nodes other than mappings are left alone.
func FoldKeys(n *yaml.Node, known []string) []string {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	var unknown []string
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Kind != yaml.ScalarNode {
			continue
		}
		idx := slices.IndexFunc(known, func(k string) bool { return strings.EqualFold(k, key.Value) })
		if idx < 0 {
			unknown = append(unknown, key.Value)
			continue
		}
		key.Value = known[idx]
	}
	return unknown
}

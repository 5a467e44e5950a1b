// Package catalog loads and saves the named set of buildables that drives
// generation. Entry order is kept from the source file so a catalog can be
// written back without reshuffling it.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smashedpumpkin/csmake/internal/fsutil"
	"github.com/smashedpumpkin/csmake/internal/model"
)

// ErrCatalogParse indicates a catalog file that is missing, unreadable or
// not shaped as a name to buildable mapping.
var ErrCatalogParse = errors.New("catalog: invalid catalog")

// Entry is one named buildable.
type Entry struct {
	Name      string
	Buildable *model.Buildable
}

// Catalog maps unique buildable names to buildables, in insertion order.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogParse, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document. JSON is the usual encoding; any YAML
// mapping is accepted as well. Absent optional fields are normalized to
// empty values.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrCatalogParse)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must map buildable names to buildables", ErrCatalogParse, root.Line)
	}

	c := New()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("%w: line %d: buildable name must be a non-empty string", ErrCatalogParse, key.Line)
		}
		if _, dup := c.index[key.Value]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate buildable %q", ErrCatalogParse, key.Line, key.Value)
		}

		for _, k := range model.FoldKeys(val, model.BuildableKeys) {
			slog.Warn("ignoring unknown buildable field", "buildable", key.Value, "field", k)
		}
		b := &model.Buildable{}
		if err := val.Decode(b); err != nil {
			return nil, fmt.Errorf("%w: buildable %q: %w", ErrCatalogParse, key.Value, err)
		}
		c.Set(key.Value, b)
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Names returns the buildable names in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the buildable stored under name.
func (c *Catalog) Get(name string) (*model.Buildable, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.entries[i].Buildable, true
}

// Set stores b under name. An existing entry keeps its position.
func (c *Catalog) Set(name string, b *model.Buildable) {
	b.Normalize()
	if i, ok := c.index[name]; ok {
		c.entries[i].Buildable = b
		return
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, Entry{Name: name, Buildable: b})
}

// Entries returns a copy of the entry list in order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Encode renders the catalog as indented JSON in entry order. Packages are
// written in their descriptor form.
func (c *Catalog) Encode() ([]byte, error) {
	var raw bytes.Buffer
	raw.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			raw.WriteByte(',')
		}
		key, err := marshalJSON(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := marshalJSON(e.Buildable)
		if err != nil {
			return nil, fmt.Errorf("encode buildable %q: %w", e.Name, err)
		}
		raw.Write(key)
		raw.WriteByte(':')
		raw.Write(val)
	}
	raw.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, raw.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indent catalog: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Save writes the encoded catalog to path atomically.
func (c *Catalog) Save(path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, data)
}

// marshalJSON is json.Marshal without HTML escaping, so patterns holding
// <, > or & stay readable in the written file.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

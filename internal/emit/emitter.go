package emit

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/smashedpumpkin/csmake/internal/catalog"
	"github.com/smashedpumpkin/csmake/internal/fsutil"
	"github.com/smashedpumpkin/csmake/internal/model"
)

// Emitter renders buildables with the strategy matching their framework and
// writes the results below Dir.
type Emitter struct {
	Registry *Registry
	Dir      string
	Logger   *slog.Logger
}

// NewEmitter creates an Emitter writing into dir.
func NewEmitter(reg *Registry, dir string, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{Registry: reg, Dir: dir, Logger: logger}
}

// Emit renders the named buildable and returns the descriptor text and the
// path it belongs at. Nothing is written. The path is keyed by name, so
// every buildable of a catalog gets its own file.
func (e *Emitter) Emit(name string, b *model.Buildable) (string, string, error) {
	if err := model.ValidateName(name); err != nil {
		return "", "", err
	}
	// An unknown framework is reported ahead of any other problem, so such
	// entries are always skipped rather than failed.
	strategy, lookupErr := e.Registry.Lookup(b.Framework)
	if lookupErr != nil && b.Framework != "" {
		return "", "", fmt.Errorf("buildable %q: %w", name, lookupErr)
	}
	if err := b.Validate(); err != nil {
		return "", "", fmt.Errorf("buildable %q: %w", name, err)
	}

	text, err := strategy.Render(name, b)
	if err != nil {
		return "", "", fmt.Errorf("render %q: %w", name, err)
	}
	return string(text), filepath.Join(e.Dir, name+strategy.Extension()), nil
}

// Write emits the named buildable and writes it to its path.
func (e *Emitter) Write(name string, b *model.Buildable) (string, error) {
	text, path, err := e.Emit(name, b)
	if err != nil {
		return "", err
	}
	if err := fsutil.WriteFileAtomic(path, []byte(text)); err != nil {
		return "", fmt.Errorf("write %q: %w", name, err)
	}
	return path, nil
}

// Result is the outcome of generating one catalog entry.
type Result struct {
	Name string
	Path string
	Err  error
}

// Skipped reports whether the entry was passed over because its framework
// has no strategy.
func (r Result) Skipped() bool {
	return errors.Is(r.Err, ErrUnsupportedFramework)
}

// Generate writes every catalog entry in order. Entries are independent: a
// failure is recorded in its Result and does not stop or undo the others.
func (e *Emitter) Generate(cat *catalog.Catalog) []Result {
	results := make([]Result, 0, cat.Len())
	for _, entry := range cat.Entries() {
		path, err := e.Write(entry.Name, entry.Buildable)
		res := Result{Name: entry.Name, Path: path, Err: err}
		switch {
		case res.Skipped():
			e.Logger.Warn("skipping buildable with unsupported framework",
				"name", entry.Name, "framework", entry.Buildable.Framework)
		case err != nil:
			e.Logger.Error("failed to generate buildable", "name", entry.Name, "error", err)
		default:
			e.Logger.Debug("generated buildable", "name", entry.Name, "path", path)
		}
		results = append(results, res)
	}
	return results
}

// Errors joins the failures among results, ignoring skipped entries.
func Errors(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil && !r.Skipped() {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

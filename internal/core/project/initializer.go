package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/smashedpumpkin/csmake/internal/catalog"
	"github.com/smashedpumpkin/csmake/internal/config"
	"github.com/smashedpumpkin/csmake/internal/defs"
	"github.com/smashedpumpkin/csmake/internal/fsutil"
	"github.com/smashedpumpkin/csmake/internal/model"
)

// InitOptions configures the scaffold.
type InitOptions struct {
	Dir   string // Directory receiving <Name>.json. Defaults to ".".
	Name  string // Buildable name, also the catalog file stem.
	Force bool   // Overwrite an existing catalog file.
}

// InitResult summarizes the outcome of init.
type InitResult struct {
	Path      string           // Catalog file that was written.
	Buildable *model.Buildable // The scaffolded buildable.
	Replaced  bool             // True if an existing file was overwritten.
}

// Initializer writes starter catalogs.
type Initializer interface {
	// Init writes a catalog holding one buildable seeded from cfg.
	Init(ctx context.Context, cfg config.Config, opts InitOptions) (*InitResult, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	logger *slog.Logger
}

// NewInitializer creates an Initializer.
func NewInitializer(logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{logger: logger}
}

// NewBuildable seeds a buildable from the resolved configuration. The
// package list starts empty.
func NewBuildable(cfg config.Config) (*model.Buildable, error) {
	tt, err := model.ParseTargetType(cfg.Type)
	if err != nil {
		return nil, err
	}
	return &model.Buildable{
		Type:      tt,
		Framework: cfg.Framework,
		Sources:   slices.Clone(cfg.Sources),
		Packages:  []model.PackageSpec{},
	}, nil
}

// Init writes <Name>.json into opts.Dir.
func (i *projectInitializer) Init(ctx context.Context, cfg config.Config, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := model.ValidateName(opts.Name); err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(filepath.Clean(dir), opts.Name+defs.CatalogExt)

	exists, err := fsutil.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: check %s: %w", ErrInitFailed, path, err)
	}
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrProjectExists, path)
	}

	b, err := NewBuildable(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	cat := catalog.New()
	cat.Set(opts.Name, b)
	if err := cat.Save(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	i.logger.Info("wrote starter catalog", "path", path, "name", opts.Name, "framework", b.Framework)
	return &InitResult{Path: path, Buildable: b, Replaced: exists}, nil
}

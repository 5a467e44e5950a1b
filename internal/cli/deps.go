// Package cli provides the Cobra command tree and dependency wiring for the
// csmake CLI. This file defines the Dependencies struct (composition root)
// that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/smashedpumpkin/csmake/internal/config"
	"github.com/smashedpumpkin/csmake/internal/core/project"
	"github.com/smashedpumpkin/csmake/internal/defs"
	"github.com/smashedpumpkin/csmake/internal/emit"
	"github.com/smashedpumpkin/csmake/internal/ui"
)

// Dependencies holds the services used by CLI commands. It is the only
// place where concrete types are instantiated.
type Dependencies struct {
	Logger      *slog.Logger
	Resolver    *config.Resolver
	Registry    *emit.Registry
	Initializer project.Initializer
	Headless    *ui.HeadlessManager
}

// Options configures InitDependencies from global flags.
type Options struct {
	Precedence config.Precedence
	Verbose    bool
	LogOutput  io.Writer // Defaults to os.Stderr.
}

// deps is the global dependencies instance, set by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. It fails when a
// known framework has no emitter registered.
func InitDependencies(opts Options) (*Dependencies, error) {
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: logLevel(opts.Verbose, os.Getenv(defs.EnvLogLevel)),
	}))

	registry := emit.DefaultRegistry()
	if err := registry.CheckComplete(emit.KnownFrameworks...); err != nil {
		return nil, fmt.Errorf("emitter registry: %w", err)
	}

	resolver := config.NewResolver(logger)
	resolver.Precedence = opts.Precedence

	d := &Dependencies{
		Logger:      logger,
		Resolver:    resolver,
		Registry:    registry,
		Initializer: project.NewInitializer(logger),
		Headless:    ui.NewHeadlessManager(),
	}
	deps = d
	return d, nil
}

// logLevel picks Debug for --verbose, then CSMAKE_LOG_LEVEL, then Warn.
func logLevel(verbose bool, env string) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	level := slog.LevelWarn
	if env != "" {
		if err := level.UnmarshalText([]byte(env)); err != nil {
			return slog.LevelWarn
		}
	}
	return level
}

// GetDeps returns the current dependencies.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies. Used by tests.
func SetDeps(d *Dependencies) {
	deps = d
}

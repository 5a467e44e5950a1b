package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/smashedpumpkin/csmake/internal/defs"
)

// Precedence selects which config layer wins when several set the same field.
type Precedence int

const (
	// PrecedenceRootWins merges the nearest file first, so files closer to
	// the filesystem root override more local ones. This is the historical
	// csmake order.
	PrecedenceRootWins Precedence = iota

	// PrecedenceNearestWins merges from the root down, so the file closest
	// to the start directory wins.
	PrecedenceNearestWins
)

// ParsePrecedence maps "root" or "nearest" onto a Precedence.
func ParsePrecedence(s string) (Precedence, error) {
	switch s {
	case "root":
		return PrecedenceRootWins, nil
	case "nearest":
		return PrecedenceNearestWins, nil
	default:
		return 0, fmt.Errorf("%w (got: %q)", ErrInvalidPrecedence, s)
	}
}

// String returns the flag spelling of p.
func (p Precedence) String() string {
	if p == PrecedenceNearestWins {
		return "nearest"
	}
	return "root"
}

// Resolved is the outcome of a resolve. It is not modified after Resolve
// returns and is passed explicitly to every consumer.
type Resolved struct {
	Config Config
	// Layers lists the config files that were merged, nearest first.
	Layers []string
}

// Resolver discovers config files from a start directory up to the
// filesystem root and merges them onto the defaults.
type Resolver struct {
	FileName   string
	Precedence Precedence
	Logger     *slog.Logger
	// Getenv looks up environment overrides. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewResolver creates a Resolver for .csmake files with root-wins precedence.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		FileName:   defs.ConfigFileName,
		Precedence: PrecedenceRootWins,
		Logger:     logger,
		Getenv:     os.Getenv,
	}
}

// Discover walks from startDir to the filesystem root and returns the
// config files found, nearest first. Directories without a config file
// are skipped.
func (r *Resolver) Discover(startDir string) ([]string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path: %w", err)
	}

	var found []string
	for {
		candidate := filepath.Join(dir, r.fileName())
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.Mode().IsRegular():
			found = append(found, candidate)
		case err != nil && !os.IsNotExist(err):
			return nil, fmt.Errorf("stat %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return found, nil
		}
		dir = parent
	}
}

// Resolve discovers and merges every config layer above startDir, applies
// environment overrides and validates the result. Without any config file
// the result holds the defaults.
func (r *Resolver) Resolve(startDir string) (*Resolved, error) {
	layers, err := r.Discover(startDir)
	if err != nil {
		return nil, err
	}

	order := layers
	if r.Precedence == PrecedenceNearestWins {
		order = make([]string, len(layers))
		for i, l := range layers {
			order[len(layers)-1-i] = l
		}
	}

	cfg := NewDefaultConfig()
	for _, path := range order {
		r.logger().Debug("merging config layer", "path", path, "precedence", r.Precedence.String())
		cfg, err = cfg.MergeFrom(path)
		if err != nil {
			return nil, err
		}
	}

	cfg = applyEnvOverrides(cfg, r.getenv())

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &Resolved{Config: cfg, Layers: layers}, nil
}

func (r *Resolver) fileName() string {
	if r.FileName == "" {
		return defs.ConfigFileName
	}
	return r.FileName
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func (r *Resolver) getenv() func(string) string {
	if r.Getenv == nil {
		return os.Getenv
	}
	return r.Getenv
}

// applyEnvOverrides applies environment variable overrides on top of the
// file layers. CSMAKE_SOURCES is a comma separated list.
func applyEnvOverrides(cfg Config, getenv func(string) string) Config {
	if v := getenv(defs.EnvType); v != "" {
		cfg.Type = v
	}
	if v := getenv(defs.EnvFramework); v != "" {
		cfg.Framework = v
	}
	if v := getenv(defs.EnvSources); v != "" {
		var sources []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				sources = append(sources, s)
			}
		}
		cfg.Sources = sources
	}
	return cfg
}

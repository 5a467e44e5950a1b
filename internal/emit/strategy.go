package emit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/smashedpumpkin/csmake/internal/model"
)

// Strategy renders buildables for one target framework.
type Strategy interface {
	// Framework returns the framework identifier this strategy serves,
	// matched exactly against Buildable.Framework.
	Framework() string
	// Extension returns the file extension of rendered descriptors.
	Extension() string
	// Render produces the descriptor for the named buildable.
	Render(name string, b *model.Buildable) ([]byte, error)
}

// KnownFrameworks lists the frameworks csmake promises to support. The CLI
// checks the registry against it at startup.
var KnownFrameworks = []string{FrameworkNetCoreApp31}

// Registry maps framework identifiers to strategies.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates a registry from the given strategies.
func NewRegistry(strategies ...Strategy) (*Registry, error) {
	r := &Registry{strategies: make(map[string]Strategy, len(strategies))}
	for _, s := range strategies {
		fw := s.Framework()
		if _, dup := r.strategies[fw]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFramework, fw)
		}
		r.strategies[fw] = s
	}
	return r, nil
}

// DefaultRegistry returns a registry holding every built-in strategy.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(NewNetCoreStrategy(EmbeddedRenderer()))
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the strategy for framework, or ErrUnsupportedFramework.
func (r *Registry) Lookup(framework string) (Strategy, error) {
	s, ok := r.strategies[framework]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFramework, framework, strings.Join(r.Frameworks(), ", "))
	}
	return s, nil
}

// Frameworks returns the registered framework identifiers, sorted.
func (r *Registry) Frameworks() []string {
	out := make([]string, 0, len(r.strategies))
	for fw := range r.strategies {
		out = append(out, fw)
	}
	slices.Sort(out)
	return out
}

// CheckComplete reports every framework in known that has no strategy.
func (r *Registry) CheckComplete(known ...string) error {
	var missing []string
	for _, fw := range known {
		if _, ok := r.strategies[fw]; !ok {
			missing = append(missing, fw)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteRegistry, strings.Join(missing, ", "))
	}
	return nil
}

// Package wizard asks for the values "csmake init" needs when they were
// not given on the command line.
package wizard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/smashedpumpkin/csmake/internal/model"
)

// ErrCancelled is returned when the user aborts the prompt.
var ErrCancelled = errors.New("wizard cancelled by user")

// Options seeds the prompt.
type Options struct {
	DefaultName      string
	DefaultFramework string
	Frameworks       []string // Frameworks with an emitter.
}

// Result holds the answers.
type Result struct {
	Name      string
	Framework string
}

// Run shows the init prompt and returns the answers.
func Run(opts Options) (*Result, error) {
	result := &Result{Name: opts.DefaultName, Framework: opts.DefaultFramework}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Buildable name").
				Description("Names the buildable and its <name>.json catalog").
				Value(&result.Name).
				Validate(model.ValidateName),
			huh.NewSelect[string]().
				Title("Target framework").
				Options(huh.NewOptions(frameworkOptions(opts)...)...).
				Value(&result.Framework),
		),
	).WithTheme(newTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	return result, nil
}

// frameworkOptions lists the configured framework first, followed by every
// framework that has an emitter.
func frameworkOptions(opts Options) []string {
	out := make([]string, 0, len(opts.Frameworks)+1)
	if opts.DefaultFramework != "" {
		out = append(out, opts.DefaultFramework)
	}
	for _, fw := range opts.Frameworks {
		if !slices.Contains(out, fw) {
			out = append(out, fw)
		}
	}
	return out
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Blurred.Title = t.Blurred.Title.Foreground(muted)
	return t
}

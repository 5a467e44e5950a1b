package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smashedpumpkin/csmake/internal/catalog"
	"github.com/smashedpumpkin/csmake/internal/emit"
)

var generateCmd = &cobra.Command{
	Use:     "generate <catalog>",
	Aliases: []string{"gen"},
	Short:   "Write a project file for every buildable in a catalog",
	Long: `Load a catalog and write one project file per buildable, named after the
buildable. Buildables whose framework has no emitter are skipped with a
warning; other failures are reported after every buildable has been tried.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("out-dir", "", "Directory receiving project files (default: current directory)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	resolved, err := deps.Resolver.Resolve(cwd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}
	deps.Logger.Debug("resolved config",
		"type", resolved.Config.Type,
		"framework", resolved.Config.Framework,
		"sources", resolved.Config.Sources,
		"layers", len(resolved.Layers),
	)

	cat, err := catalog.Load(args[0])
	if err != nil {
		return err
	}

	outDir := getStringFlag(cmd, "out-dir")
	if outDir == "" {
		outDir = cwd
	}

	emitter := emit.NewEmitter(deps.Registry, outDir, deps.Logger)
	results := emitter.Generate(cat)

	out := cmd.OutOrStdout()
	for _, r := range results {
		switch {
		case r.Skipped():
			_, _ = fmt.Fprintln(out, statusLine(cliWarn, symWarn, fmt.Sprintf("%s: skipped (%v)", r.Name, r.Err)))
		case r.Err != nil:
			_, _ = fmt.Fprintln(out, statusLine(cliError, symError, fmt.Sprintf("%s: %v", r.Name, r.Err)))
		default:
			_, _ = fmt.Fprintln(out, statusLine(cliSuccess, symSuccess, fmt.Sprintf("%s -> %s", r.Name, relPath(cwd, r.Path))))
		}
	}

	if err := emit.Errors(results); err != nil {
		return fmt.Errorf("generate %s: %w", args[0], err)
	}
	return nil
}

// relPath shortens path relative to base when it lies below it.
func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

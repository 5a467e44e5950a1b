package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smashedpumpkin/csmake/internal/cli/wizard"
	"github.com/smashedpumpkin/csmake/internal/core/project"
)

// ErrNameRequired is returned when init has no name and cannot prompt.
var ErrNameRequired = errors.New("buildable name required in non-interactive mode")

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Write a starter catalog for a new buildable",
	Long: `Write <name>.json holding one buildable seeded from the resolved
configuration (type, framework and sources, with no packages).

When no name is given and a terminal is attached, a prompt asks for the name
and the target framework.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("dir", "", "Directory receiving the catalog (default: current directory)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing catalog")
	initCmd.Flags().Bool("non-interactive", false, "Never prompt; a name argument is then required")
}

func runInit(cmd *cobra.Command, args []string) error {
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
	cfg := resolved.Config.Clone()

	dir := getStringFlag(cmd, "dir")
	if dir == "" {
		dir = cwd
	}

	if getBoolFlag(cmd, "non-interactive") {
		deps.Headless.ForceHeadless(true)
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		if deps.Headless.IsHeadless() {
			return ErrNameRequired
		}
		answers, err := wizard.Run(wizard.Options{
			DefaultFramework: cfg.Framework,
			Frameworks:       deps.Registry.Frameworks(),
		})
		if err != nil {
			return err
		}
		name = answers.Name
		cfg.Framework = answers.Framework
	}

	result, err := deps.Initializer.Init(cmd.Context(), cfg, project.InitOptions{
		Dir:   dir,
		Name:  name,
		Force: getBoolFlag(cmd, "force"),
	})
	if err != nil {
		return err
	}

	title := "Catalog created"
	if result.Replaced {
		title = "Catalog replaced"
	}
	const w = 10
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard(title,
		kv("File", result.Path, w),
		kv("Name", name, w),
		kv("Type", string(result.Buildable.Type), w),
		kv("Framework", result.Buildable.Framework, w),
		kv("Sources", strings.Join(result.Buildable.Sources, ", "), w),
	))
	return nil
}

// getStringFlag reads a string flag, returning "" when it is not defined.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// getBoolFlag reads a bool flag, returning false when it is not defined.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return v
}

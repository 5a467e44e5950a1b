package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smashedpumpkin/csmake/internal/config"
	"github.com/smashedpumpkin/csmake/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "csmake",
	Short: "Generate C# project files from buildable catalogs",
	Long: `csmake reads a catalog of named buildables and writes one MSBuild
project file per buildable.

Defaults for new buildables come from .csmake files found in the current
directory and its ancestors, overridable with CSMAKE_* environment variables.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		precedence, err := cmd.Flags().GetString("precedence")
		if err != nil {
			return err
		}
		p, err := config.ParsePrecedence(precedence)
		if err != nil {
			return err
		}
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		_, err = InitDependencies(Options{
			Precedence: p,
			Verbose:    verbose,
			LogOutput:  cmd.ErrOrStderr(),
		})
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("csmake %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().String("precedence", config.PrecedenceRootWins.String(),
		"Config layer precedence: root (outermost .csmake wins) or nearest")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

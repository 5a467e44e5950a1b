package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build generated projects (not implemented)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), statusLine(cliWarn, symWarn,
			"build is not implemented yet; run dotnet build on the generated project files"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

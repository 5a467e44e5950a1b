package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smashedpumpkin/csmake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration and the files it came from",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().Bool("json", false, "Print the resolved configuration as JSON")
}

// configView is the JSON shape of "csmake config --json".
type configView struct {
	Precedence string   `json:"precedence"`
	Layers     []string `json:"layers"`
	config.Config
}

func runConfig(cmd *cobra.Command, _ []string) error {
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

	layers := resolved.Layers
	if layers == nil {
		layers = []string{}
	}
	out := cmd.OutOrStdout()

	if getBoolFlag(cmd, "json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(configView{
			Precedence: deps.Resolver.Precedence.String(),
			Layers:     layers,
			Config:     resolved.Config,
		})
	}

	const w = 10
	lines := []string{
		kv("Type", resolved.Config.Type, w),
		kv("Framework", resolved.Config.Framework, w),
		kv("Sources", strings.Join(resolved.Config.Sources, ", "), w),
		"",
		kv("Precedence", deps.Resolver.Precedence.String(), w),
	}
	if len(layers) == 0 {
		lines = append(lines, kv("Layers", cliMuted.Render("none (defaults only)"), w))
	}
	for i, layer := range layers {
		key := ""
		if i == 0 {
			key = "Layers"
		}
		lines = append(lines, kv(key, layer, w))
	}
	_, _ = fmt.Fprintln(out, renderCard("Resolved configuration", strings.Join(lines, "\n")))
	return nil
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/moore-mealy/internal/config"
	"github.com/oshokin/moore-mealy/internal/service/common"
	"github.com/oshokin/moore-mealy/internal/version"
)

var (
	// configPath to the configuration YAML file, empty for built-in defaults.
	configPath string
	// output holds presentation overrides shared by every subcommand.
	output common.OutputOptions

	// rootCmd represents the base command; without a subcommand it runs convert.
	rootCmd = &cobra.Command{
		Use:   "moore2mealy",
		Short: "Convert Moore machines into equivalent Mealy machines.",
		Long: `Converts deterministic Moore finite-state machines into equivalent Mealy machines.

For every state s and input i the Mealy machine keeps the transition δ(s, i)
and emits λ(s, i), the output of the state the Moore machine enters.

Without a subcommand all built-in fixtures are converted and printed.
Settings can be loaded from a YAML file (` + config.DefaultConfigFilename + ` by convention).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runConvert,
	}
)

// Execute runs the moore2mealy CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup persistent flags with consistent naming and descriptions.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to configuration file")
	flags.StringVarP(&output.Format, "format", "f", "", "output format: text, json, yaml or mermaid")
	flags.BoolVar(&output.Color, "color", false, "color section headings")

	rootCmd.AddCommand(convertCmd, listCmd, exportCmd, serveCmd, remoteCmd)
}

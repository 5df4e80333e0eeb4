package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/moore-mealy/internal/service/convert"
)

var (
	// convertCmd converts built-in fixtures locally.
	convertCmd = &cobra.Command{
		Use:   "convert [fixture...]",
		Short: "Convert built-in Moore fixtures and print both machines.",
		Long: `Prints each selected Moore fixture, converts it and prints the equivalent Mealy machine.

Fixtures default to the configured list, or every fixture in the catalog when none is configured.
Use the list subcommand to see the available names.`,
		RunE: runConvert,
	}

	// listCmd prints the available fixtures.
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List available Moore fixtures.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := &convert.Options{
				ConfigPath: configPath,
				Writer:     cmd.OutOrStdout(),
			}

			return convert.List(cmd.Context(), options)
		},
	}

	// exportCmd writes the built-in fixtures to an editable catalog file.
	exportCmd = &cobra.Command{
		Use:   "export <catalog-path>",
		Short: "Write the built-in fixtures to a YAML catalog.",
		Long: `Writes the built-in fixtures to a YAML catalog file.

Edit the file to add your own Moore machines and point catalog_path at it
to convert or serve them instead of the built-in fixtures.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert.Export(cmd.Context(), args[0])
		},
	}
)

func runConvert(cmd *cobra.Command, args []string) error {
	options := &convert.Options{
		ConfigPath: configPath,
		Fixtures:   args,
		Output:     output,
		Writer:     cmd.OutOrStdout(),
	}

	return convert.Run(cmd.Context(), options)
}

package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/moore-mealy/internal/service/remote"
)

var (
	// serverAddress overrides server_addr from config.
	serverAddress string
	// listOnly prints the server's fixtures instead of converting.
	listOnly bool

	// remoteCmd asks a conversion server for Mealy machines.
	remoteCmd = &cobra.Command{
		Use:   "remote [fixture...]",
		Short: "Convert fixtures on a remote conversion server.",
		Long: `Connects to a conversion server, asks it to convert the named fixtures and prints the results.

Without fixture names the configured list is used, or every fixture the server offers.
Each request waits up to the configured timeout for the server to come up,
and is retried a few times if the connection drops mid-call.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &remote.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				Fixtures:      args,
				List:          listOnly,
				Output:        output,
				Writer:        cmd.OutOrStdout(),
			}

			return remote.Run(ctx, options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	remoteCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "conversion server address")
	remoteCmd.Flags().BoolVar(&listOnly, "list", false, "list the server's fixtures instead of converting")
}

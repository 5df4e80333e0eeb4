package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/moore-mealy/internal/service/server"
)

var (
	// metricsAddress overrides the Prometheus listen address from config.
	metricsAddress string

	// serveCmd runs the gRPC conversion server.
	serveCmd = &cobra.Command{
		Use:   "serve [listen-address]",
		Short: "Run the gRPC conversion server.",
		Long: `Starts the gRPC server that lists built-in fixtures and converts them on request.

The server listens on the specified address or uses listen_addr from the configuration file.
Prometheus metrics are served on --metrics-addr (or metrics_addr) when set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:     configPath,
				ListenAddress:  listenAddress,
				MetricsAddress: metricsAddress,
			}

			return server.Run(ctx, options)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	serveCmd.Flags().StringVar(&metricsAddress, "metrics-addr", "", "address for the Prometheus /metrics endpoint")
}

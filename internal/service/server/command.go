package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"

	api "github.com/oshokin/moore-mealy/internal/api/grpc/converter"
	"github.com/oshokin/moore-mealy/internal/config"
	"github.com/oshokin/moore-mealy/internal/logger"
	"github.com/oshokin/moore-mealy/internal/metrics"
	"github.com/oshokin/moore-mealy/internal/repository/catalog"
	"github.com/oshokin/moore-mealy/internal/service/common"
)

// Options controls the serve process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file, empty for defaults.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// MetricsAddress provides an optional listen address override for the metrics endpoint.
	MetricsAddress string
	// Ready, when set, receives the bound gRPC address once the server is listening.
	Ready func(address string)
}

// metricsReadHeaderTimeout bounds slow metrics clients.
const metricsReadHeaderTimeout = 5 * time.Second

// Run starts the gRPC server and blocks until context is canceled or server stops.
// Loads configuration first, then applies overrides from options.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "serve")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	common.ApplyLogLevel(ctx, settings)

	listenAddress := settings.ListenAddress
	if opts.ListenAddress != "" {
		listenAddress = opts.ListenAddress
	}

	metricsAddress := settings.MetricsAddress
	if opts.MetricsAddress != "" {
		metricsAddress = opts.MetricsAddress
	}

	fixtureCatalog, err := catalog.Open(ctx, settings.CatalogPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}

	collectors := metrics.New()
	svc := newService(fixtureCatalog, collectors)

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	api.RegisterConverterServiceServer(grpcServer, api.NewServer(svc))

	var metricsServer *http.Server
	if metricsAddress != "" {
		metricsServer, err = startHTTP(ctx, metricsAddress, newHTTPHandler(svc, collectors))
		if err != nil {
			_ = lis.Close()

			return err
		}
	}

	logger.InfoKV(ctx, "Conversion server listening", "listen_address", lis.Addr().String(),
		"metrics_address", metricsAddress)

	if opts.Ready != nil {
		opts.Ready(lis.Addr().String())
	}

	return serve(ctx, lis, grpcServer, metricsServer)
}

// serve runs grpcServer on lis until ctx is canceled or Serve fails.
// Both servers are stopped before it returns, whichever happens first.
func serve(ctx context.Context, lis net.Listener, grpcServer *grpc.Server, httpServer *http.Server) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()

		if httpServer != nil {
			//nolint:contextcheck // The parent context is already canceled here.
			shutdownCtx, stop := context.WithTimeout(context.Background(), config.DefaultTimeout)
			defer stop()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Errorf(ctx, "Failed to stop metrics server: %v", err)
			}
		}

		close(done)
	}()

	serveErr := grpcServer.Serve(lis)

	cancel()
	<-done

	if serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", serveErr)
	}

	logger.Infof(ctx, "gRPC server on %s stopped", lis.Addr())

	return nil
}

// startHTTP serves the metrics and rendering endpoints in the background.
func startHTTP(ctx context.Context, address string, handler http.Handler) (*http.Server, error) {
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen metrics on %s: %w", address, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "HTTP server failed: %v", err)
		}
	}()

	return srv, nil
}

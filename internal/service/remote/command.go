package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/moore-mealy/internal/config"
	"github.com/oshokin/moore-mealy/internal/domain/machine"
	"github.com/oshokin/moore-mealy/internal/fixtures"
	"github.com/oshokin/moore-mealy/internal/logger"
	"github.com/oshokin/moore-mealy/internal/service/common"
)

// Options configures remote conversion requests.
type Options struct {
	// ConfigPath to YAML settings file, empty for defaults.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// Fixtures to convert remotely. Empty means the configured list, or every
	// fixture the server offers.
	Fixtures []string

	// List prints the server's fixtures instead of converting.
	List bool

	// Output carries presentation overrides.
	Output common.OutputOptions

	// Writer receives the rendered machines, os.Stdout when nil.
	Writer io.Writer
}

const (
	// defaultRetryInterval defines the delay between attempts while the server is unavailable.
	defaultRetryInterval = 1 * time.Second
	// defaultMaxAttempts bounds attempts per fixture.
	defaultMaxAttempts = 3
)

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run asks the server to convert fixtures and renders the returned Mealy machines.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "remote")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	common.ApplyLogLevel(ctx, cfg)

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	if serverAddress == "" {
		return ErrNoServerAddress
	}

	renderer, err := common.NewRenderer(cfg, opts.Output)
	if err != nil {
		return err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	names := opts.Fixtures
	if len(names) == 0 {
		names = cfg.Fixtures
	}

	if opts.List || len(names) == 0 {
		available, err := client.ListFixtures(ctx)
		if err != nil {
			return err
		}

		if opts.List {
			return common.WriteFixtureList(w, toFixtures(available))
		}

		for _, f := range available {
			names = append(names, f.Name)
		}
	}

	logger.InfoKV(ctx, "Requesting remote conversions", "server_address", serverAddress, "fixtures", names)

	for i, name := range names {
		mealy, err := convertWithRetry(ctx, client, name)
		if err != nil {
			return err
		}

		if err := renderer.Heading(w, fmt.Sprintf("Remote Case %d: %s", i+1, name)); err != nil {
			return fmt.Errorf("write heading: %w", err)
		}

		if err := renderer.Mealy(w, mealy); err != nil {
			return fmt.Errorf("render mealy machine %s: %w", name, err)
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("write separator: %w", err)
		}
	}

	return nil
}

// convertWithRetry retries calls that lost their connection, up to defaultMaxAttempts.
// Calls already wait for a server that is not up yet.
func convertWithRetry(ctx context.Context, client *common.Client, name string) (*machine.MealyMachine, error) {
	ticker := time.NewTicker(defaultRetryInterval)
	defer ticker.Stop()

	var lastErr error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		mealy, err := client.ConvertFixture(ctx, name)
		if err == nil {
			return mealy, nil
		}

		// Only a missing server is worth waiting for.
		if status.Code(err) != codes.Unavailable {
			return nil, err
		}

		lastErr = err
		logger.WarnKV(ctx, "Server unavailable, retrying", "fixture", name, "attempt", attempt)

		if attempt == defaultMaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return nil, lastErr
}

// toFixtures adapts remote fixture descriptions for WriteFixtureList.
func toFixtures(items []common.FixtureInfo) []fixtures.Fixture {
	result := make([]fixtures.Fixture, 0, len(items))

	for _, item := range items {
		result = append(result, fixtures.Fixture{
			Name:        item.Name,
			Description: item.Description,
		})
	}

	return result
}

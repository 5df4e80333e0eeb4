//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/oshokin/moore-mealy/internal/api/grpc/converter"
	"github.com/oshokin/moore-mealy/internal/codec"
	"github.com/oshokin/moore-mealy/internal/config"
	"github.com/oshokin/moore-mealy/internal/domain/machine"
	"github.com/oshokin/moore-mealy/internal/version"
)

// FixtureInfo describes a fixture offered by a remote server.
type FixtureInfo struct {
	// Name is the fixture identifier.
	Name string
	// Description is the human-readable summary.
	Description string
}

// Client wraps the gRPC ConverterService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the conversion server.
	conn *grpc.ClientConn
	// api is the ConverterService client stub.
	api *api.ConverterServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errFixtureRequired is returned when no fixture name is given.
	errFixtureRequired = errors.New("fixture name must be provided")
)

// reconnectBackoff retries refused connections well within one call timeout,
// so a server started shortly after the client is still reached.
//
//nolint:gochecknoglobals // Immutable dial configuration.
var reconnectBackoff = backoff.Config{
	BaseDelay:  100 * time.Millisecond,
	Multiplier: 1.6,
	Jitter:     0.2,
	MaxDelay:   time.Second,
}

// Dial creates a gRPC client for the conversion server.
// Note: this uses insecure transport credentials.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff:           reconnectBackoff,
			MinConnectTimeout: config.DefaultTimeout,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("dial conversion server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         api.NewConverterServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ListFixtures retrieves the fixtures the server can convert.
func (c *Client) ListFixtures(ctx context.Context) ([]FixtureInfo, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListFixtures(callCtx, new(emptypb.Empty), grpc.WaitForReady(true))
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	result := make([]FixtureInfo, 0, len(resp.GetValues()))

	for _, item := range resp.GetValues() {
		fields := item.GetStructValue().GetFields()

		result = append(result, FixtureInfo{
			Name:        fields["name"].GetStringValue(),
			Description: fields["description"].GetStringValue(),
		})
	}

	return result, nil
}

// ConvertFixture asks the server to convert the named fixture.
func (c *Client) ConvertFixture(ctx context.Context, name string) (*machine.MealyMachine, error) {
	if name == "" {
		return nil, errFixtureRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ConvertFixture(callCtx, wrapperspb.String(name), grpc.WaitForReady(true))
	if err != nil {
		return nil, fmt.Errorf("convert fixture %q: %w", name, err)
	}

	mealy, err := codec.MealyFromStruct(resp)
	if err != nil {
		return nil, fmt.Errorf("decode fixture %q: %w", name, err)
	}

	return mealy, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

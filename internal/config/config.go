package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/moore-mealy/internal/fixtures"
	"github.com/oshokin/moore-mealy/internal/logger"
	"github.com/oshokin/moore-mealy/internal/render"
)

// Config holds the settings shared by the moore2mealy subcommands.
type Config struct {
	// Format is the output format: text, json, yaml or mermaid.
	Format string `yaml:"format"`
	// LogLevel is the minimum zap level written to stderr.
	LogLevel string `yaml:"log_level"`
	// Color enables colored headings in text output.
	Color bool `yaml:"color"`
	// Fixtures lists the example machines to convert. Empty means all of them.
	Fixtures []string `yaml:"fixtures,omitempty"`
	// CatalogPath points at a YAML fixture catalog that replaces the built-in fixtures.
	CatalogPath string `yaml:"catalog_path,omitempty"`
	// ListenAddress is the gRPC listen address used by serve.
	ListenAddress string `yaml:"listen_addr,omitempty"`
	// MetricsAddress is the optional Prometheus HTTP listen address used by serve.
	MetricsAddress string `yaml:"metrics_addr,omitempty"`
	// ServerAddress is the gRPC server address used by remote.
	ServerAddress string `yaml:"server_addr,omitempty"`
	// Timeout bounds each remote call.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "moore2mealy.yaml"

	// DefaultListenAddress is the gRPC listen address used when none is configured.
	DefaultListenAddress = ":50051"

	// DefaultTimeout is the default duration for remote calls.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for log levels zap does not know.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Default returns the settings used when no configuration file is given.
func Default() *Config {
	return &Config{
		Format:        string(render.FormatText),
		LogLevel:      DefaultLogLevel,
		ListenAddress: DefaultListenAddress,
		Timeout:       DefaultTimeout,
	}
}

// Load reads configuration from the provided path and validates it.
// An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for unset fields.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	format, err := render.ParseFormat(settings.Format)
	if err != nil {
		return err
	}

	settings.Format = string(format)

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, settings.LogLevel)
	}

	// Names from a custom catalog are checked when the catalog is opened.
	if settings.CatalogPath == "" {
		if _, err := fixtures.Select(settings.Fixtures); err != nil {
			return fmt.Errorf("invalid fixtures: %w", err)
		}
	}

	// Set default timeout if not specified
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.ListenAddress == "" {
		settings.ListenAddress = DefaultListenAddress
	}

	for _, address := range []string{settings.ListenAddress, settings.MetricsAddress, settings.ServerAddress} {
		if address == "" {
			continue
		}

		if _, _, err := net.SplitHostPort(address); err != nil {
			return fmt.Errorf("invalid address %q: %w", address, err)
		}
	}

	return nil
}

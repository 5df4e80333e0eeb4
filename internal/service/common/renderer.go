//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/moore-mealy/internal/config"
	"github.com/oshokin/moore-mealy/internal/fixtures"
	"github.com/oshokin/moore-mealy/internal/logger"
	"github.com/oshokin/moore-mealy/internal/render"
)

// OutputOptions holds the presentation overrides shared by commands.
type OutputOptions struct {
	// Format overrides the configured output format when not empty.
	Format string
	// Color forces colored headings on, regardless of the configuration.
	Color bool
}

// NewRenderer builds a renderer from the configuration and the overrides.
func NewRenderer(cfg *config.Config, opts OutputOptions) (*render.Renderer, error) {
	name := cfg.Format
	if opts.Format != "" {
		name = opts.Format
	}

	format, err := render.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return render.New(format, render.WithColor(cfg.Color || opts.Color)), nil
}

// ApplyLogLevel switches the global logger to the configured level.
func ApplyLogLevel(ctx context.Context, cfg *config.Config) {
	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	logger.Debugf(ctx, "Log level set to %s", logger.Level())
}

// WriteFixtureList prints one "name  description" line per fixture.
func WriteFixtureList(w io.Writer, items []fixtures.Fixture) error {
	width := 0
	for _, f := range items {
		width = max(width, len(f.Name))
	}

	for _, f := range items {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, f.Name, f.Description); err != nil {
			return fmt.Errorf("write fixture list: %w", err)
		}
	}

	return nil
}

package convert

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/moore-mealy/internal/config"
	"github.com/oshokin/moore-mealy/internal/converter"
	"github.com/oshokin/moore-mealy/internal/fixtures"
	"github.com/oshokin/moore-mealy/internal/logger"
	"github.com/oshokin/moore-mealy/internal/repository/catalog"
	"github.com/oshokin/moore-mealy/internal/service/common"
)

// Options controls which fixtures are converted and how they are printed.
type Options struct {
	// ConfigPath to YAML settings file, empty for defaults.
	ConfigPath string
	// Fixtures overrides the configured fixture list when not empty.
	Fixtures []string
	// Output carries presentation overrides.
	Output common.OutputOptions
	// Writer receives the rendered machines, os.Stdout when nil.
	Writer io.Writer
}

// Run prints every selected Moore fixture followed by its Mealy equivalent.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "convert")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	common.ApplyLogLevel(ctx, cfg)

	renderer, err := common.NewRenderer(cfg, opts.Output)
	if err != nil {
		return err
	}

	names := cfg.Fixtures
	if len(opts.Fixtures) > 0 {
		names = opts.Fixtures
	}

	fixtureCatalog, err := catalog.Open(ctx, cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}

	selected, err := catalog.Select(fixtureCatalog, names)
	if err != nil {
		return err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	for i, fixture := range selected {
		fixtureCtx := logger.WithKV(ctx, "fixture", fixture.Name)

		if err := renderer.Heading(w, fmt.Sprintf("Test Case %d", i+1)); err != nil {
			return fmt.Errorf("write heading: %w", err)
		}

		if err := renderer.Moore(w, fixture.Machine); err != nil {
			return fmt.Errorf("render moore machine %s: %w", fixture.Name, err)
		}

		mealy, err := converter.Convert(fixture.Machine)
		if err != nil {
			logger.ErrorKV(fixtureCtx, "Conversion failed", "error", err)

			return fmt.Errorf("convert %s: %w", fixture.Name, err)
		}

		if err := renderer.Mealy(w, mealy); err != nil {
			return fmt.Errorf("render mealy machine %s: %w", fixture.Name, err)
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("write separator: %w", err)
		}

		logger.DebugKV(fixtureCtx, "Fixture converted", "transitions", len(mealy.Transitions()))
	}

	return nil
}

// List prints the fixtures of the configured catalog.
func List(ctx context.Context, opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	fixtureCatalog, err := catalog.Open(ctx, cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}

	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	return common.WriteFixtureList(w, fixtureCatalog.All())
}

// Export writes the built-in fixtures to a catalog file that can be edited
// and passed back through catalog_path.
func Export(ctx context.Context, path string) error {
	ctx = logger.WithName(ctx, "export")

	if err := catalog.NewFileRepository(path).Save(ctx, fixtures.All()); err != nil {
		return err
	}

	logger.Infof(ctx, "Exported %d fixtures to %s", len(fixtures.Names()), path)

	return nil
}

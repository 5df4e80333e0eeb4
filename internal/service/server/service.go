package server

import (
	"context"
	"fmt"

	"github.com/oshokin/moore-mealy/internal/converter"
	"github.com/oshokin/moore-mealy/internal/domain/machine"
	"github.com/oshokin/moore-mealy/internal/fixtures"
	"github.com/oshokin/moore-mealy/internal/logger"
	"github.com/oshokin/moore-mealy/internal/metrics"
	"github.com/oshokin/moore-mealy/internal/repository/catalog"
)

// unknownFixtureLabel replaces names that are not in the catalog in metrics.
const unknownFixtureLabel = "unknown"

// service encapsulates the conversion logic behind the transport.
// It is unexported to keep the transport decoupled from the implementation.
// It holds no mutable state, so it is safe for concurrent use.
type service struct {
	// catalog provides the machines that can be converted.
	catalog catalog.Catalog
	// metrics records conversion outcomes, may be nil.
	metrics *metrics.Metrics
}

// newService creates a service backed by the provided catalog.
func newService(c catalog.Catalog, m *metrics.Metrics) *service {
	if c == nil {
		c = catalog.Builtin()
	}

	return &service{
		catalog: c,
		metrics: m,
	}
}

// ListFixtures returns the catalog.
func (s *service) ListFixtures(ctx context.Context) []fixtures.Fixture {
	all := s.catalog.All()

	logger.DebugKV(ctx, "Fixtures requested", "count", len(all))

	return all
}

// ConvertFixture converts the named fixture.
func (s *service) ConvertFixture(ctx context.Context, name string) (*machine.MealyMachine, error) {
	fixture, err := s.catalog.Get(name)
	if err != nil {
		// Arbitrary client input must not become a label value.
		s.metrics.ObserveConversion(unknownFixtureLabel, 0, err)
		logger.WarnKV(ctx, "Unknown fixture requested", "fixture", name)

		return nil, err
	}

	mealy, err := converter.Convert(fixture.Machine)
	if err != nil {
		s.metrics.ObserveConversion(name, 0, err)
		logger.ErrorKV(ctx, "Conversion failed", "fixture", name, "error", err)

		return nil, fmt.Errorf("convert %s: %w", name, err)
	}

	transitions := len(mealy.Transitions())
	s.metrics.ObserveConversion(name, transitions, nil)
	logger.InfoKV(ctx, "Fixture converted", "fixture", name, "transitions", transitions)

	return mealy, nil
}

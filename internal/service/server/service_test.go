package server

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
	"github.com/oshokin/moore-mealy/internal/fixtures"
	"github.com/oshokin/moore-mealy/internal/metrics"
	"github.com/oshokin/moore-mealy/internal/repository/catalog"
)

// TestService_ConvertFixture converts built-in fixtures and records metrics.
func TestService_ConvertFixture(t *testing.T) {
	t.Parallel()

	collectors := metrics.New()
	s := newService(nil, collectors)

	require.Len(t, s.ListFixtures(context.Background()), len(fixtures.Names()))

	mealy, err := s.ConvertFixture(context.Background(), "two-state")
	require.NoError(t, err)

	out, ok := mealy.Output("A", "1")
	require.True(t, ok)
	require.Equal(t, machine.Output("Y"), out)

	_, err = s.ConvertFixture(context.Background(), "nope")
	require.ErrorIs(t, err, fixtures.ErrUnknownFixture)

	// One ok series for two-state, one error series for the unknown name.
	count, err := testutil.GatherAndCount(collectors.Gatherer(), "moore2mealy_conversions_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

// TestService_ConvertFixture_Broken surfaces lookup errors from the converter.
func TestService_ConvertFixture_Broken(t *testing.T) {
	t.Parallel()

	c, err := catalog.NewMemory([]fixtures.Fixture{
		{
			Name: "broken",
			Machine: machine.NewMoore(
				[]machine.State{"A"},
				[]machine.Symbol{"0"},
				nil,
				map[machine.State]machine.Output{"A": "X"},
			),
		},
	})
	require.NoError(t, err)

	s := newService(c, nil)

	mealy, err := s.ConvertFixture(context.Background(), "broken")
	require.Nil(t, mealy)
	require.ErrorIs(t, err, machine.ErrIncompleteTransition)
}

package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAll_Valid ensures every built-in machine is complete and closed.
func TestAll_Valid(t *testing.T) {
	t.Parallel()

	for _, f := range All() {
		require.NotEmpty(t, f.Description, f.Name)
		require.NoError(t, f.Machine.Validate(), f.Name)
	}
}

// TestNames keeps the catalog order stable.
func TestNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"two-state", "three-state", "four-state", "single-state"}, Names())
}

// TestGet checks lookups and the unknown-name error.
func TestGet(t *testing.T) {
	t.Parallel()

	f, err := Get("four-state")
	require.NoError(t, err)
	require.Len(t, f.Machine.States(), 4)

	_, err = Get("five-state")
	require.ErrorIs(t, err, ErrUnknownFixture)
}

// TestSelect resolves explicit names in order and defaults to the whole catalog.
func TestSelect(t *testing.T) {
	t.Parallel()

	all, err := Select(nil)
	require.NoError(t, err)
	require.Len(t, all, len(Names()))

	picked, err := Select([]string{"single-state", "two-state"})
	require.NoError(t, err)
	require.Equal(t, "single-state", picked[0].Name)
	require.Equal(t, "two-state", picked[1].Name)

	_, err = Select([]string{"two-state", "nope"})
	require.ErrorIs(t, err, ErrUnknownFixture)
}

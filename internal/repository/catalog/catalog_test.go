package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
	"github.com/oshokin/moore-mealy/internal/fixtures"
)

// loop builds a single-state Moore machine.
func loop(output machine.Output) *machine.MooreMachine {
	return machine.NewMoore(
		[]machine.State{"S"},
		[]machine.Symbol{"a"},
		map[machine.State]map[machine.Symbol]machine.State{"S": {"a": "S"}},
		map[machine.State]machine.Output{"S": output},
	)
}

// TestBuiltin mirrors the fixtures package.
func TestBuiltin(t *testing.T) {
	t.Parallel()

	c := Builtin()
	require.Len(t, c.All(), len(fixtures.Names()))

	f, err := c.Get("two-state")
	require.NoError(t, err)
	require.Equal(t, "two-state", f.Name)

	_, err = c.Get("nope")
	require.ErrorIs(t, err, fixtures.ErrUnknownFixture)
}

// TestNewMemory_Rejects covers unnamed, empty and duplicate fixtures.
func TestNewMemory_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []fixtures.Fixture
		want  error
	}{
		{
			name:  "unnamed",
			items: []fixtures.Fixture{{Machine: loop("X")}},
			want:  ErrUnnamedFixture,
		},
		{
			name:  "no machine",
			items: []fixtures.Fixture{{Name: "a"}},
			want:  ErrMissingMachine,
		},
		{
			name:  "duplicate",
			items: []fixtures.Fixture{{Name: "a", Machine: loop("X")}, {Name: "a", Machine: loop("Y")}},
			want:  ErrDuplicateFixture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewMemory(tt.items)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

// TestMemory_GetAndSelect keeps order and reports unknown names.
func TestMemory_GetAndSelect(t *testing.T) {
	t.Parallel()

	m, err := NewMemory([]fixtures.Fixture{
		{Name: "b", Machine: loop("Y")},
		{Name: "a", Machine: loop("X")},
	})
	require.NoError(t, err)

	all := m.All()
	require.Equal(t, "b", all[0].Name)
	require.Equal(t, "a", all[1].Name)

	f, err := m.Get("a")
	require.NoError(t, err)

	out, ok := f.Machine.Output("S")
	require.True(t, ok)
	require.Equal(t, machine.Output("X"), out)

	selected, err := Select(m, []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, "a", selected[0].Name)

	selected, err = Select(m, nil)
	require.NoError(t, err)
	require.Len(t, selected, 2)

	_, err = Select(m, []string{"a", "c"})
	require.ErrorIs(t, err, fixtures.ErrUnknownFixture)
}

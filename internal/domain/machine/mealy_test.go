package machine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMealyMachine_Transitions lists edges in state, then input order.
func TestMealyMachine_Transitions(t *testing.T) {
	t.Parallel()

	m := NewMealy(
		[]State{"B", "A"},
		[]Symbol{"1", "0"},
		map[State]map[Symbol]State{
			"A": {"0": "A", "1": "B"},
			"B": {"0": "A", "1": "B"},
		},
		map[State]map[Symbol]Output{
			"A": {"0": "X", "1": "Y"},
			"B": {"0": "X", "1": "Y"},
		},
	)

	require.Equal(t, []Transition{
		{From: "A", Input: "0", To: "A", Output: "X"},
		{From: "A", Input: "1", To: "B", Output: "Y"},
		{From: "B", Input: "0", To: "A", Output: "X"},
		{From: "B", Input: "1", To: "B", Output: "Y"},
	}, m.Transitions())

	out, ok := m.Output("B", "1")
	require.True(t, ok)
	require.Equal(t, Output("Y"), out)

	_, ok = m.Output("B", "2")
	require.False(t, ok)
}

// TestMealyMachine_EmptyAlphabet keeps states but has no edges.
func TestMealyMachine_EmptyAlphabet(t *testing.T) {
	t.Parallel()

	m := NewMealy([]State{"A"}, nil, nil, nil)

	require.Equal(t, []State{"A"}, m.States())
	require.Empty(t, m.Alphabet())
	require.Empty(t, m.Transitions())
}

// TestMealyMachine_Run verifies traces and failure modes.
func TestMealyMachine_Run(t *testing.T) {
	t.Parallel()

	m := NewMealy(
		[]State{"A", "B"},
		[]Symbol{"0", "1"},
		map[State]map[Symbol]State{
			"A": {"0": "A", "1": "B"},
			"B": {"0": "A"},
		},
		map[State]map[Symbol]Output{
			"A": {"0": "X", "1": "Y"},
			"B": {"0": "X"},
		},
	)

	got, err := m.Run("A", []Symbol{"1", "0", "0"})
	require.NoError(t, err)
	require.Equal(t, []Output{"Y", "X", "X"}, got)

	_, err = m.Run("Q", nil)
	require.ErrorIs(t, err, ErrUnknownState)

	_, err = m.Run("A", []Symbol{"1", "1"})
	require.ErrorIs(t, err, ErrIncompleteTransition)
	require.ErrorIs(t, err, ErrNotFound)
}

package machine

import (
	"maps"
	"slices"
)

// State names a machine state. Identifiers are unique within one machine.
type State string

// Symbol names one member of the input alphabet.
type Symbol string

// Output is an output label emitted by a state (Moore) or a transition (Mealy).
type Output string

// Transition is one edge of a Mealy machine together with its output.
type Transition struct {
	// From is the source state.
	From State
	// Input is the consumed symbol.
	Input Symbol
	// To is the destination state.
	To State
	// Output is the label emitted while taking the edge.
	Output Output
}

// uniqueSorted returns the distinct values of items in ascending order.
func uniqueSorted[T ~string](items []T) []T {
	result := slices.Clone(items)
	slices.Sort(result)

	return slices.Compact(result)
}

// cloneTable deep-copies a two-level table.
func cloneTable[V any](table map[State]map[Symbol]V) map[State]map[Symbol]V {
	result := make(map[State]map[Symbol]V, len(table))
	for state, row := range table {
		result[state] = maps.Clone(row)
	}

	return result
}

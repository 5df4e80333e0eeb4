package machine

import (
	"errors"
	"maps"
	"slices"
)

// MooreMachine is a finite-state machine whose outputs belong to states.
type MooreMachine struct {
	// states is the sorted, duplicate-free state set.
	states []State
	// alphabet is the sorted, duplicate-free input alphabet.
	alphabet []Symbol
	// transitions maps state -> input -> next state.
	transitions map[State]map[Symbol]State
	// outputs maps state -> output label.
	outputs map[State]Output
}

// NewMoore builds a Moore machine from all four of its components at once.
// Every argument is copied, so later changes by the caller are not observed.
func NewMoore(
	states []State,
	alphabet []Symbol,
	transitions map[State]map[Symbol]State,
	outputs map[State]Output,
) *MooreMachine {
	return &MooreMachine{
		states:      uniqueSorted(states),
		alphabet:    uniqueSorted(alphabet),
		transitions: cloneTable(transitions),
		outputs:     maps.Clone(outputs),
	}
}

// States returns the state set in ascending order.
func (m *MooreMachine) States() []State {
	return slices.Clone(m.states)
}

// Alphabet returns the input alphabet in ascending order.
func (m *MooreMachine) Alphabet() []Symbol {
	return slices.Clone(m.alphabet)
}

// HasState reports whether state belongs to the machine.
func (m *MooreMachine) HasState(state State) bool {
	_, found := slices.BinarySearch(m.states, state)

	return found
}

// Next returns δ(state, input).
func (m *MooreMachine) Next(state State, input Symbol) (State, bool) {
	next, ok := m.transitions[state][input]

	return next, ok
}

// Output returns λ(state).
func (m *MooreMachine) Output(state State) (Output, bool) {
	output, ok := m.outputs[state]

	return output, ok
}

// Validate reports every completeness and closure violation of the machine.
// The returned error joins one *LookupError per violation, or is nil.
func (m *MooreMachine) Validate() error {
	var errs []error

	for _, state := range m.states {
		if _, ok := m.outputs[state]; !ok {
			errs = append(errs, MissingOutput(state))
		}

		for _, input := range m.alphabet {
			next, ok := m.Next(state, input)
			if !ok {
				errs = append(errs, IncompleteTransition(state, input))

				continue
			}

			if !m.HasState(next) {
				errs = append(errs, UnknownDestination(state, input, next))
			}
		}
	}

	return errors.Join(errs...)
}

// Run feeds inputs to the machine starting at start and returns the output
// of every state entered along the way. The output of start itself is not
// included, which keeps the result aligned with Mealy traces.
func (m *MooreMachine) Run(start State, inputs []Symbol) ([]Output, error) {
	if !m.HasState(start) {
		return nil, UnknownState(start)
	}

	var (
		current = start
		result  = make([]Output, 0, len(inputs))
	)

	for _, input := range inputs {
		next, ok := m.Next(current, input)
		if !ok {
			return nil, IncompleteTransition(current, input)
		}

		output, ok := m.Output(next)
		if !ok || !m.HasState(next) {
			return nil, UnknownDestination(current, input, next)
		}

		result = append(result, output)
		current = next
	}

	return result, nil
}

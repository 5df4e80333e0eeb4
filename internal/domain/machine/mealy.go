package machine

import "slices"

// MealyMachine is a finite-state machine whose outputs belong to transitions.
type MealyMachine struct {
	// states is the sorted, duplicate-free state set.
	states []State
	// alphabet is the sorted, duplicate-free input alphabet.
	alphabet []Symbol
	// transitions maps state -> input -> next state.
	transitions map[State]map[Symbol]State
	// outputs maps state -> input -> output label of the transition.
	outputs map[State]map[Symbol]Output
}

// NewMealy builds a Mealy machine from all four of its components at once.
// Every argument is copied, so later changes by the caller are not observed.
func NewMealy(
	states []State,
	alphabet []Symbol,
	transitions map[State]map[Symbol]State,
	outputs map[State]map[Symbol]Output,
) *MealyMachine {
	return &MealyMachine{
		states:      uniqueSorted(states),
		alphabet:    uniqueSorted(alphabet),
		transitions: cloneTable(transitions),
		outputs:     cloneTable(outputs),
	}
}

// States returns the state set in ascending order.
func (m *MealyMachine) States() []State {
	return slices.Clone(m.states)
}

// Alphabet returns the input alphabet in ascending order.
func (m *MealyMachine) Alphabet() []Symbol {
	return slices.Clone(m.alphabet)
}

// HasState reports whether state belongs to the machine.
func (m *MealyMachine) HasState(state State) bool {
	_, found := slices.BinarySearch(m.states, state)

	return found
}

// Next returns δ(state, input).
func (m *MealyMachine) Next(state State, input Symbol) (State, bool) {
	next, ok := m.transitions[state][input]

	return next, ok
}

// Output returns λ(state, input).
func (m *MealyMachine) Output(state State, input Symbol) (Output, bool) {
	output, ok := m.outputs[state][input]

	return output, ok
}

// Transitions lists every defined edge ordered by source state, then input.
func (m *MealyMachine) Transitions() []Transition {
	result := make([]Transition, 0, len(m.states)*len(m.alphabet))

	for _, state := range m.states {
		for _, input := range m.alphabet {
			next, ok := m.Next(state, input)
			if !ok {
				continue
			}

			output, _ := m.Output(state, input)

			result = append(result, Transition{
				From:   state,
				Input:  input,
				To:     next,
				Output: output,
			})
		}
	}

	return result
}

// Run feeds inputs to the machine starting at start and returns the output
// of every transition taken.
func (m *MealyMachine) Run(start State, inputs []Symbol) ([]Output, error) {
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

		output, ok := m.Output(current, input)
		if !ok {
			return nil, UnknownDestination(current, input, next)
		}

		result = append(result, output)
		current = next
	}

	return result, nil
}

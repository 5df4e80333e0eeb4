// Package converter turns Moore machines into equivalent Mealy machines.
//
// Every transition of the result carries the output of its destination state
// in the source machine. States, alphabet and transition structure are kept.
package converter

import (
	"errors"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
)

// ErrNilMachine is returned when Convert receives no machine.
var ErrNilMachine = errors.New("moore machine is not set")

// Convert builds the Mealy machine equivalent to moore.
//
// States and inputs are visited in ascending order, so the first missing
// transition or output is reported deterministically. On error no machine
// is returned.
func Convert(moore *machine.MooreMachine) (*machine.MealyMachine, error) {
	if moore == nil {
		return nil, ErrNilMachine
	}

	var (
		states      = moore.States()
		alphabet    = moore.Alphabet()
		transitions = make(map[machine.State]map[machine.Symbol]machine.State, len(states))
		outputs     = make(map[machine.State]map[machine.Symbol]machine.Output, len(states))
	)

	for _, state := range states {
		transitions[state] = make(map[machine.Symbol]machine.State, len(alphabet))
		outputs[state] = make(map[machine.Symbol]machine.Output, len(alphabet))

		for _, input := range alphabet {
			next, ok := moore.Next(state, input)
			if !ok {
				return nil, machine.IncompleteTransition(state, input)
			}

			// The transition emits what the destination state used to emit.
			output, ok := moore.Output(next)
			if !ok || !moore.HasState(next) {
				return nil, machine.UnknownDestination(state, input, next)
			}

			transitions[state][input] = next
			outputs[state][input] = output
		}
	}

	return machine.NewMealy(states, alphabet, transitions, outputs), nil
}

// Package codec maps machines to a plain document shape and to protobuf
// well-known types.
//
// The same shape backs the YAML and JSON renderings and the gRPC payloads:
//
//	kind: mealy
//	states: [A, B]
//	input_alphabet: ["0", "1"]
//	transitions: {A: {"0": A, "1": B}, ...}
//	outputs: {A: {"0": X, "1": Y}, ...}
//
// For Moore machines outputs is a flat state -> output map.
package codec

import (
	"github.com/oshokin/moore-mealy/internal/domain/machine"
)

const (
	// KindMoore tags documents describing Moore machines.
	KindMoore = "moore"
	// KindMealy tags documents describing Mealy machines.
	KindMealy = "mealy"
)

// MooreDocument is the serializable form of a Moore machine.
type MooreDocument struct {
	Kind          string                       `yaml:"kind"`
	States        []string                     `yaml:"states"`
	InputAlphabet []string                     `yaml:"input_alphabet"`
	Transitions   map[string]map[string]string `yaml:"transitions"`
	Outputs       map[string]string            `yaml:"outputs"`
}

// MealyDocument is the serializable form of a Mealy machine.
type MealyDocument struct {
	Kind          string                       `yaml:"kind"`
	States        []string                     `yaml:"states"`
	InputAlphabet []string                     `yaml:"input_alphabet"`
	Transitions   map[string]map[string]string `yaml:"transitions"`
	Outputs       map[string]map[string]string `yaml:"outputs"`
}

// FromMoore builds the document for m.
func FromMoore(m *machine.MooreMachine) *MooreDocument {
	var (
		states   = m.States()
		alphabet = m.Alphabet()
		doc      = &MooreDocument{
			Kind:          KindMoore,
			States:        toStrings(states),
			InputAlphabet: toStrings(alphabet),
			Transitions:   make(map[string]map[string]string, len(states)),
			Outputs:       make(map[string]string, len(states)),
		}
	)

	for _, state := range states {
		row := make(map[string]string, len(alphabet))

		for _, input := range alphabet {
			if next, ok := m.Next(state, input); ok {
				row[string(input)] = string(next)
			}
		}

		doc.Transitions[string(state)] = row

		if output, ok := m.Output(state); ok {
			doc.Outputs[string(state)] = string(output)
		}
	}

	return doc
}

// FromMealy builds the document for m.
func FromMealy(m *machine.MealyMachine) *MealyDocument {
	var (
		states = m.States()
		doc    = &MealyDocument{
			Kind:          KindMealy,
			States:        toStrings(states),
			InputAlphabet: toStrings(m.Alphabet()),
			Transitions:   make(map[string]map[string]string, len(states)),
			Outputs:       make(map[string]map[string]string, len(states)),
		}
	)

	for _, state := range states {
		doc.Transitions[string(state)] = make(map[string]string)
		doc.Outputs[string(state)] = make(map[string]string)
	}

	for _, tr := range m.Transitions() {
		doc.Transitions[string(tr.From)][string(tr.Input)] = string(tr.To)
		doc.Outputs[string(tr.From)][string(tr.Input)] = string(tr.Output)
	}

	return doc
}

// Machine rebuilds the Moore machine described by the document.
// Consistency is left to MooreMachine.Validate and the converter.
func (d *MooreDocument) Machine() *machine.MooreMachine {
	var (
		transitions = make(map[machine.State]map[machine.Symbol]machine.State, len(d.Transitions))
		outputs     = make(map[machine.State]machine.Output, len(d.Outputs))
	)

	for state, row := range d.Transitions {
		converted := make(map[machine.Symbol]machine.State, len(row))
		for input, next := range row {
			converted[machine.Symbol(input)] = machine.State(next)
		}

		transitions[machine.State(state)] = converted
	}

	for state, output := range d.Outputs {
		outputs[machine.State(state)] = machine.Output(output)
	}

	return machine.NewMoore(
		fromStrings[machine.State](d.States),
		fromStrings[machine.Symbol](d.InputAlphabet),
		transitions,
		outputs,
	)
}

// Machine rebuilds the Mealy machine described by the document.
func (d *MealyDocument) Machine() *machine.MealyMachine {
	var (
		transitions = make(map[machine.State]map[machine.Symbol]machine.State, len(d.Transitions))
		outputs     = make(map[machine.State]map[machine.Symbol]machine.Output, len(d.Outputs))
	)

	for state, row := range d.Transitions {
		converted := make(map[machine.Symbol]machine.State, len(row))
		for input, next := range row {
			converted[machine.Symbol(input)] = machine.State(next)
		}

		transitions[machine.State(state)] = converted
	}

	for state, row := range d.Outputs {
		converted := make(map[machine.Symbol]machine.Output, len(row))
		for input, output := range row {
			converted[machine.Symbol(input)] = machine.Output(output)
		}

		outputs[machine.State(state)] = converted
	}

	return machine.NewMealy(
		fromStrings[machine.State](d.States),
		fromStrings[machine.Symbol](d.InputAlphabet),
		transitions,
		outputs,
	)
}

func toStrings[T ~string](items []T) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = string(item)
	}

	return result
}

func fromStrings[T ~string](items []string) []T {
	result := make([]T, len(items))
	for i, item := range items {
		result[i] = T(item)
	}

	return result
}

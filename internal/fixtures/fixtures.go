// Package fixtures provides the built-in example Moore machines.
package fixtures

import (
	"errors"
	"fmt"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
)

// Fixture is a named example machine.
type Fixture struct {
	// Name is the stable identifier used on the command line and over gRPC.
	Name string
	// Description is a short human-readable summary.
	Description string
	// Machine is the Moore machine itself.
	Machine *machine.MooreMachine
}

// ErrUnknownFixture is returned by Get for names that are not in the catalog.
var ErrUnknownFixture = errors.New("unknown fixture")

type (
	row   = map[machine.Symbol]machine.State
	table = map[machine.State]row
)

// All returns every fixture in catalog order.
func All() []Fixture {
	return []Fixture{
		{
			Name:        "two-state",
			Description: "Simple 2-state Moore machine over {0, 1}",
			Machine: machine.NewMoore(
				[]machine.State{"A", "B"},
				[]machine.Symbol{"0", "1"},
				table{
					"A": {"0": "A", "1": "B"},
					"B": {"0": "A", "1": "B"},
				},
				map[machine.State]machine.Output{"A": "X", "B": "Y"},
			),
		},
		{
			Name:        "three-state",
			Description: "3-state Moore machine over {a, b}",
			Machine: machine.NewMoore(
				[]machine.State{"S0", "S1", "S2"},
				[]machine.Symbol{"a", "b"},
				table{
					"S0": {"a": "S1", "b": "S2"},
					"S1": {"a": "S0", "b": "S2"},
					"S2": {"a": "S2", "b": "S1"},
				},
				map[machine.State]machine.Output{"S0": "0", "S1": "1", "S2": "2"},
			),
		},
		{
			Name:        "four-state",
			Description: "4-state Moore machine over {x, y}",
			Machine: machine.NewMoore(
				[]machine.State{"Q0", "Q1", "Q2", "Q3"},
				[]machine.Symbol{"x", "y"},
				table{
					"Q0": {"x": "Q1", "y": "Q2"},
					"Q1": {"x": "Q3", "y": "Q0"},
					"Q2": {"x": "Q2", "y": "Q3"},
					"Q3": {"x": "Q1", "y": "Q2"},
				},
				map[machine.State]machine.Output{"Q0": "A", "Q1": "B", "Q2": "C", "Q3": "D"},
			),
		},
		{
			Name:        "single-state",
			Description: "Single state looping on every input",
			Machine: machine.NewMoore(
				[]machine.State{"A"},
				[]machine.Symbol{"0", "1"},
				table{
					"A": {"0": "A", "1": "A"},
				},
				map[machine.State]machine.Output{"A": "X"},
			),
		},
	}
}

// Names returns fixture names in catalog order.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))

	for _, f := range all {
		names = append(names, f.Name)
	}

	return names
}

// Get looks a fixture up by name.
func Get(name string) (Fixture, error) {
	for _, f := range All() {
		if f.Name == name {
			return f, nil
		}
	}

	return Fixture{}, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
}

// Select resolves names in order, returning the whole catalog when names is empty.
func Select(names []string) ([]Fixture, error) {
	if len(names) == 0 {
		return All(), nil
	}

	result := make([]Fixture, 0, len(names))

	for _, name := range names {
		f, err := Get(name)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}

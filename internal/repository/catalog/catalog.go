package catalog

import (
	"errors"
	"fmt"

	"github.com/oshokin/moore-mealy/internal/fixtures"
)

// Catalog resolves fixtures by name.
type Catalog interface {
	All() []fixtures.Fixture
	Get(name string) (fixtures.Fixture, error)
}

var (
	// ErrDuplicateFixture is returned when two fixtures share a name.
	ErrDuplicateFixture = errors.New("duplicate fixture")
	// ErrUnnamedFixture is returned for fixtures without a name.
	ErrUnnamedFixture = errors.New("fixture name must be provided")
	// ErrMissingMachine is returned for fixtures without a machine.
	ErrMissingMachine = errors.New("fixture has no machine")
)

// builtin serves the fixtures compiled into the binary.
type builtin struct{}

// Builtin returns the catalog of built-in fixtures.
func Builtin() Catalog {
	return builtin{}
}

func (builtin) All() []fixtures.Fixture {
	return fixtures.All()
}

func (builtin) Get(name string) (fixtures.Fixture, error) {
	return fixtures.Get(name)
}

// Memory is an immutable catalog over a fixed list of fixtures.
type Memory struct {
	// items keeps the insertion order.
	items []fixtures.Fixture
	// byName indexes items.
	byName map[string]int
}

// NewMemory indexes items, rejecting unnamed, duplicate or empty fixtures.
func NewMemory(items []fixtures.Fixture) (*Memory, error) {
	m := &Memory{
		items:  make([]fixtures.Fixture, 0, len(items)),
		byName: make(map[string]int, len(items)),
	}

	for _, item := range items {
		switch {
		case item.Name == "":
			return nil, ErrUnnamedFixture
		case item.Machine == nil:
			return nil, fmt.Errorf("%w: %q", ErrMissingMachine, item.Name)
		}

		if _, ok := m.byName[item.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFixture, item.Name)
		}

		m.byName[item.Name] = len(m.items)
		m.items = append(m.items, item)
	}

	return m, nil
}

// All returns the fixtures in insertion order.
func (m *Memory) All() []fixtures.Fixture {
	result := make([]fixtures.Fixture, len(m.items))
	copy(result, m.items)

	return result
}

// Get looks a fixture up by name.
func (m *Memory) Get(name string) (fixtures.Fixture, error) {
	i, ok := m.byName[name]
	if !ok {
		return fixtures.Fixture{}, fmt.Errorf("%w: %q", fixtures.ErrUnknownFixture, name)
	}

	return m.items[i], nil
}

// Select resolves names in order, returning the whole catalog when names is empty.
func Select(c Catalog, names []string) ([]fixtures.Fixture, error) {
	if len(names) == 0 {
		return c.All(), nil
	}

	result := make([]fixtures.Fixture, 0, len(names))

	for _, name := range names {
		f, err := c.Get(name)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
)

// undefined marks a missing table entry in text dumps.
const undefined = "-"

func (r *Renderer) mooreText(w io.Writer, m *machine.MooreMachine) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, r.style(w, "Moore Machine:", "#818cf8"))
	fmt.Fprintf(bw, "States: %s\n", joinSet(m.States()))
	fmt.Fprintf(bw, "Input Alphabet: %s\n", joinSet(m.Alphabet()))
	fmt.Fprintln(bw, "Transition Table:")

	for _, state := range m.States() {
		for _, input := range m.Alphabet() {
			next := undefined
			if n, ok := m.Next(state, input); ok {
				next = string(n)
			}

			fmt.Fprintf(bw, "  δ(%s, %s) = %s\n", state, input, next)
		}
	}

	fmt.Fprintln(bw, "Output per State:")

	for _, state := range m.States() {
		output := undefined
		if o, ok := m.Output(state); ok {
			output = string(o)
		}

		fmt.Fprintf(bw, "  λ(%s) = %s\n", state, output)
	}

	return bw.Flush()
}

func (r *Renderer) mealyText(w io.Writer, m *machine.MealyMachine) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, r.style(w, "Equivalent Mealy Machine:", "#c084fc"))
	fmt.Fprintf(bw, "States: %s\n", joinSet(m.States()))
	fmt.Fprintf(bw, "Input Alphabet: %s\n", joinSet(m.Alphabet()))
	fmt.Fprintln(bw, "Transition Table and Output per Transition:")

	for _, state := range m.States() {
		for _, input := range m.Alphabet() {
			next, output := undefined, undefined
			if n, ok := m.Next(state, input); ok {
				next = string(n)
			}

			if o, ok := m.Output(state, input); ok {
				output = string(o)
			}

			fmt.Fprintf(bw, "  δ(%s, %s) = %s, λ(%s, %s) = %s\n", state, input, next, state, input, output)
		}
	}

	return bw.Flush()
}

// joinSet formats items as "[a, b, c]".
func joinSet[T ~string](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = string(item)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

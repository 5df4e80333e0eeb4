package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
)

// mooreMermaid labels each state with its output and each edge with its input.
func mooreMermaid(w io.Writer, m *machine.MooreMachine) error {
	var sb strings.Builder

	sb.WriteString("stateDiagram-v2\n")

	for _, state := range m.States() {
		label := string(state)
		if output, ok := m.Output(state); ok {
			label = fmt.Sprintf("%s / %s", state, output)
		}

		fmt.Fprintf(&sb, "    state \"%s\" as %s\n", escapeLabel(label), sanitizeMermaidID(string(state)))
	}

	for _, state := range m.States() {
		for _, input := range m.Alphabet() {
			next, ok := m.Next(state, input)
			if !ok {
				continue
			}

			fmt.Fprintf(&sb, "    %s --> %s: %s\n",
				sanitizeMermaidID(string(state)), sanitizeMermaidID(string(next)), escapeLabel(string(input)))
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// mealyMermaid labels each edge with "input / output".
func mealyMermaid(w io.Writer, m *machine.MealyMachine) error {
	var sb strings.Builder

	sb.WriteString("stateDiagram-v2\n")

	for _, state := range m.States() {
		fmt.Fprintf(&sb, "    state \"%s\" as %s\n", escapeLabel(string(state)), sanitizeMermaidID(string(state)))
	}

	for _, tr := range m.Transitions() {
		fmt.Fprintf(&sb, "    %s --> %s: %s / %s\n",
			sanitizeMermaidID(string(tr.From)), sanitizeMermaidID(string(tr.To)),
			escapeLabel(string(tr.Input)), escapeLabel(string(tr.Output)))
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// sanitizeMermaidID makes an identifier safe for Mermaid. Digits are allowed
// but an id may not start with one.
func sanitizeMermaidID(id string) string {
	var sb strings.Builder

	sb.WriteString("s_")

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			fmt.Fprintf(&sb, "_%x_", r)
		}
	}

	return sb.String()
}

// escapeLabel replaces characters that break Mermaid labels.
func escapeLabel(s string) string {
	return strings.NewReplacer(`"`, "'", ":", "#58;", "\n", " ").Replace(s)
}

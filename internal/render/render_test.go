package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/moore-mealy/internal/codec"
	"github.com/oshokin/moore-mealy/internal/converter"
	"github.com/oshokin/moore-mealy/internal/domain/machine"
	"github.com/oshokin/moore-mealy/internal/fixtures"
)

// twoState returns the two-state fixture and its conversion.
func twoState(t *testing.T) (*machine.MooreMachine, *machine.MealyMachine) {
	t.Helper()

	f, err := fixtures.Get("two-state")
	require.NoError(t, err)

	mealy, err := converter.Convert(f.Machine)
	require.NoError(t, err)

	return f.Machine, mealy
}

// TestParseFormat accepts known names case-insensitively and defaults to text.
func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	got, err := ParseFormat("  ")
	require.NoError(t, err)
	require.Equal(t, FormatText, got)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

// TestText_Moore reproduces the classic table dump.
func TestText_Moore(t *testing.T) {
	t.Parallel()

	moore, _ := twoState(t)

	var buf bytes.Buffer
	require.NoError(t, New(FormatText).Moore(&buf, moore))

	want := `Moore Machine:
States: [A, B]
Input Alphabet: [0, 1]
Transition Table:
  δ(A, 0) = A
  δ(A, 1) = B
  δ(B, 0) = A
  δ(B, 1) = B
Output per State:
  λ(A) = X
  λ(B) = Y
`
	require.Equal(t, want, buf.String())
}

// TestText_Mealy prints destination and output on one line per transition.
func TestText_Mealy(t *testing.T) {
	t.Parallel()

	_, mealy := twoState(t)

	var buf bytes.Buffer
	require.NoError(t, New(FormatText).Mealy(&buf, mealy))

	want := `Equivalent Mealy Machine:
States: [A, B]
Input Alphabet: [0, 1]
Transition Table and Output per Transition:
  δ(A, 0) = A, λ(A, 0) = X
  δ(A, 1) = B, λ(A, 1) = Y
  δ(B, 0) = A, λ(B, 0) = X
  δ(B, 1) = B, λ(B, 1) = Y
`
	require.Equal(t, want, buf.String())
}

// TestText_UndefinedEntries marks missing lookups instead of failing.
func TestText_UndefinedEntries(t *testing.T) {
	t.Parallel()

	moore := machine.NewMoore([]machine.State{"A"}, []machine.Symbol{"0"}, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, New(FormatText).Moore(&buf, moore))
	require.Contains(t, buf.String(), "  δ(A, 0) = -\n")
	require.Contains(t, buf.String(), "  λ(A) = -\n")
}

// TestHeading only decorates the text format.
func TestHeading(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, New(FormatText).Heading(&buf, "Test Case 1"))
	require.Equal(t, "=== Test Case 1 ===\n", buf.String())

	buf.Reset()
	require.NoError(t, New(FormatJSON).Heading(&buf, "Test Case 1"))
	require.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, New(FormatText, WithColor(true)).Heading(&buf, "Test Case 2"))
	require.Contains(t, buf.String(), "Test Case 2")
}

// TestJSON_Mealy emits a document that decodes back into the same machine.
func TestJSON_Mealy(t *testing.T) {
	t.Parallel()

	_, mealy := twoState(t)

	var buf bytes.Buffer
	require.NoError(t, New(FormatJSON).Mealy(&buf, mealy))

	var s structpb.Struct
	require.NoError(t, protojson.Unmarshal(buf.Bytes(), &s))

	decoded, err := codec.MealyFromStruct(&s)
	require.NoError(t, err)
	require.Equal(t, mealy.Transitions(), decoded.Transitions())
}

// TestYAML_Moore emits the document shape with snake_case keys.
func TestYAML_Moore(t *testing.T) {
	t.Parallel()

	moore, _ := twoState(t)

	var buf bytes.Buffer
	require.NoError(t, New(FormatYAML).Moore(&buf, moore))
	require.True(t, strings.HasPrefix(buf.String(), "---\n"))

	var doc codec.MooreDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, codec.FromMoore(moore), &doc)
}

// TestYAML_Mealy decodes back to the Mealy document.
func TestYAML_Mealy(t *testing.T) {
	t.Parallel()

	_, mealy := twoState(t)

	var buf bytes.Buffer
	require.NoError(t, New(FormatYAML).Mealy(&buf, mealy))

	var doc codec.MealyDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "Y", doc.Outputs["A"]["1"])
	require.Equal(t, mealy.Transitions(), doc.Machine().Transitions())
}

// TestMermaid draws outputs on states for Moore and on edges for Mealy.
func TestMermaid(t *testing.T) {
	t.Parallel()

	moore, mealy := twoState(t)

	var buf bytes.Buffer
	require.NoError(t, New(FormatMermaid).Moore(&buf, moore))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "stateDiagram-v2\n"))
	require.Contains(t, out, `state "A / X" as s_A`)
	require.Contains(t, out, "s_A --> s_B: 1\n")

	buf.Reset()
	require.NoError(t, New(FormatMermaid).Mealy(&buf, mealy))
	require.Contains(t, buf.String(), "s_B --> s_A: 0 / X\n")
}

// TestSanitizeMermaidID escapes characters outside [A-Za-z0-9].
func TestSanitizeMermaidID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "s_Q0", sanitizeMermaidID("Q0"))
	require.Equal(t, "s_a_2d_b", sanitizeMermaidID("a-b"))
}

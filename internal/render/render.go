// Package render prints machines for humans and tools.
//
// The text format reproduces the classic δ/λ table dump. The json and yaml
// formats emit the codec document shape, and mermaid emits a stateDiagram-v2.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
)

// Format selects how machines are written.
type Format string

const (
	// FormatText is the δ/λ table dump.
	FormatText Format = "text"
	// FormatJSON is protobuf JSON of the machine document.
	FormatJSON Format = "json"
	// FormatYAML is YAML of the machine document.
	FormatYAML Format = "yaml"
	// FormatMermaid is a Mermaid state diagram.
	FormatMermaid Format = "mermaid"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatMermaid}
}

// ParseFormat converts user input to a Format.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatText, nil
	}

	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Renderer writes machines in one format.
type Renderer struct {
	// format is the output format.
	format Format
	// color enables ANSI styling of headings in text output.
	color bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor toggles colored headings. Styling still degrades to plain text
// when the destination is not a terminal.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// New creates a renderer for the given format.
func New(format Format, opts ...Option) *Renderer {
	r := &Renderer{
		format: format,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Heading writes a section title. Only the text format prints headings,
// the structured formats must stay parseable.
func (r *Renderer) Heading(w io.Writer, title string) error {
	if r.format != FormatText {
		return nil
	}

	_, err := fmt.Fprintln(w, r.style(w, "=== "+title+" ===", "#a78bfa"))

	return err
}

// Moore writes a Moore machine.
func (r *Renderer) Moore(w io.Writer, m *machine.MooreMachine) error {
	switch r.format {
	case FormatText:
		return r.mooreText(w, m)
	case FormatJSON:
		return mooreJSON(w, m)
	case FormatYAML:
		return mooreYAML(w, m)
	case FormatMermaid:
		return mooreMermaid(w, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

// Mealy writes a Mealy machine.
func (r *Renderer) Mealy(w io.Writer, m *machine.MealyMachine) error {
	switch r.format {
	case FormatText:
		return r.mealyText(w, m)
	case FormatJSON:
		return mealyJSON(w, m)
	case FormatYAML:
		return mealyYAML(w, m)
	case FormatMermaid:
		return mealyMermaid(w, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

// style colors s for terminals when color output is enabled.
func (r *Renderer) style(w io.Writer, s, hex string) string {
	if !r.color {
		return s
	}

	out := termenv.NewOutput(w)

	return out.String(s).Foreground(out.Color(hex)).Bold().String()
}

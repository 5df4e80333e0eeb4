package render

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/moore-mealy/internal/codec"
	"github.com/oshokin/moore-mealy/internal/domain/machine"
)

// jsonOptions keeps JSON output readable.
//
//nolint:gochecknoglobals // Immutable marshal options.
var jsonOptions = protojson.MarshalOptions{
	Multiline:       true,
	Indent:          "  ",
	EmitUnpopulated: true,
}

func mooreJSON(w io.Writer, m *machine.MooreMachine) error {
	s, err := codec.MooreToStruct(m)
	if err != nil {
		return err
	}

	return writeJSON(w, s)
}

func mealyJSON(w io.Writer, m *machine.MealyMachine) error {
	s, err := codec.MealyToStruct(m)
	if err != nil {
		return err
	}

	return writeJSON(w, s)
}

func writeJSON(w io.Writer, msg proto.Message) error {
	data, err := jsonOptions.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	data = append(data, '\n')

	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}

func mooreYAML(w io.Writer, m *machine.MooreMachine) error {
	return writeYAML(w, codec.FromMoore(m))
}

func mealyYAML(w io.Writer, m *machine.MealyMachine) error {
	return writeYAML(w, codec.FromMealy(m))
}

// writeYAML emits doc as one document of a YAML stream.
func writeYAML(w io.Writer, doc any) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}

	return nil
}

package codec

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
)

// ErrMalformedDocument is returned when a struct does not follow the document shape.
var ErrMalformedDocument = errors.New("malformed machine document")

// MooreToStruct encodes m as a protobuf Struct.
func MooreToStruct(m *machine.MooreMachine) (*structpb.Struct, error) {
	doc := FromMoore(m)

	outputs := make(map[string]any, len(doc.Outputs))
	for state, output := range doc.Outputs {
		outputs[state] = output
	}

	s, err := structpb.NewStruct(map[string]any{
		"kind":           doc.Kind,
		"states":         stringList(doc.States),
		"input_alphabet": stringList(doc.InputAlphabet),
		"transitions":    nestedMap(doc.Transitions),
		"outputs":        outputs,
	})
	if err != nil {
		return nil, fmt.Errorf("encode moore machine: %w", err)
	}

	return s, nil
}

// MealyToStruct encodes m as a protobuf Struct.
func MealyToStruct(m *machine.MealyMachine) (*structpb.Struct, error) {
	doc := FromMealy(m)

	s, err := structpb.NewStruct(map[string]any{
		"kind":           doc.Kind,
		"states":         stringList(doc.States),
		"input_alphabet": stringList(doc.InputAlphabet),
		"transitions":    nestedMap(doc.Transitions),
		"outputs":        nestedMap(doc.Outputs),
	})
	if err != nil {
		return nil, fmt.Errorf("encode mealy machine: %w", err)
	}

	return s, nil
}

// MealyFromStruct decodes a Struct produced by MealyToStruct.
func MealyFromStruct(s *structpb.Struct) (*machine.MealyMachine, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedDocument)
	}

	fields := s.GetFields()

	if kind := fields["kind"].GetStringValue(); kind != KindMealy {
		return nil, fmt.Errorf("%w: kind %q, want %q", ErrMalformedDocument, kind, KindMealy)
	}

	states, err := decodeList(fields["states"])
	if err != nil {
		return nil, fmt.Errorf("states: %w", err)
	}

	alphabet, err := decodeList(fields["input_alphabet"])
	if err != nil {
		return nil, fmt.Errorf("input_alphabet: %w", err)
	}

	transitions, err := decodeNested(fields["transitions"])
	if err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}

	outputs, err := decodeNested(fields["outputs"])
	if err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}

	doc := &MealyDocument{
		Kind:          KindMealy,
		States:        states,
		InputAlphabet: alphabet,
		Transitions:   transitions,
		Outputs:       outputs,
	}

	return doc.Machine(), nil
}

func stringList(items []string) []any {
	result := make([]any, len(items))
	for i, item := range items {
		result[i] = item
	}

	return result
}

func nestedMap(table map[string]map[string]string) map[string]any {
	result := make(map[string]any, len(table))

	for key, row := range table {
		inner := make(map[string]any, len(row))
		for k, v := range row {
			inner[k] = v
		}

		result[key] = inner
	}

	return result
}

func decodeList(v *structpb.Value) ([]string, error) {
	list := v.GetListValue()
	if list == nil {
		return nil, fmt.Errorf("%w: expected a list", ErrMalformedDocument)
	}

	result := make([]string, 0, len(list.GetValues()))

	for _, item := range list.GetValues() {
		str, ok := item.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%w: expected a string item", ErrMalformedDocument)
		}

		result = append(result, str.StringValue)
	}

	return result, nil
}

func decodeNested(v *structpb.Value) (map[string]map[string]string, error) {
	outer := v.GetStructValue()
	if outer == nil {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedDocument)
	}

	result := make(map[string]map[string]string, len(outer.GetFields()))

	for key, rowValue := range outer.GetFields() {
		row := rowValue.GetStructValue()
		if row == nil {
			return nil, fmt.Errorf("%w: row %q is not an object", ErrMalformedDocument, key)
		}

		inner := make(map[string]string, len(row.GetFields()))

		for k, cell := range row.GetFields() {
			str, ok := cell.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return nil, fmt.Errorf("%w: cell %q/%q is not a string", ErrMalformedDocument, key, k)
			}

			inner[k] = str.StringValue
		}

		result[key] = inner
	}

	return result, nil
}

package fhirpath_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/testdata/assert"
	"github.com/google/go-cmp/cmp"
)

func TestNewCollection(t *testing.T) {
	one, two := fhirpath.NewInteger(1), fhirpath.NewInteger(2)

	tests := []struct {
		name  string
		items []fhirpath.Value
		want  fhirpath.Value
	}{
		{name: "no items", want: fhirpath.Empty{}},
		{name: "only empties", items: []fhirpath.Value{fhirpath.Empty{}, nil}, want: fhirpath.Empty{}},
		{name: "single item is bare", items: []fhirpath.Value{one}, want: one},
		{name: "nested collections flatten", items: []fhirpath.Value{fhirpath.Collection{Items: []fhirpath.Value{one, two}}, fhirpath.Empty{}, one},
			want: fhirpath.Collection{Items: []fhirpath.Value{one, two, one}}},
		{name: "unordered propagates", items: []fhirpath.Value{fhirpath.Collection{Items: []fhirpath.Value{one, two}, Unordered: true}, one},
			want: fhirpath.Collection{Items: []fhirpath.Value{one, two, one}, Unordered: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, fhirpath.NewCollection(tt.items...)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value fhirpath.Value
		want  string
	}{
		{name: "empty", value: fhirpath.Empty{}, want: "{}"},
		{name: "decimal keeps scale", value: fhirpath.MustDecimal("1.50"), want: "1.50"},
		{name: "ucum quantity", value: quantity(t, "5", "mg"), want: "5 'mg'"},
		{name: "calendar quantity", value: quantity(t, "3", "days"), want: "3 days"},
		{name: "collection quotes strings", value: fhirpath.NewCollection(fhirpath.NewString("a"), fhirpath.NewInteger(1)), want: `["a", 1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.value.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueMarshalJSON(t *testing.T) {
	date, err := fhirpath.ParseDate("2024-03")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value fhirpath.Value
		want  string
	}{
		{name: "empty", value: fhirpath.Empty{}, want: `[]`},
		{name: "long as string", value: fhirpath.Integer64{Value: 9007199254740993}, want: `"9007199254740993"`},
		{name: "decimal", value: fhirpath.MustDecimal("0.10"), want: `0.10`},
		{name: "date", value: date, want: `"2024-03"`},
		{name: "quantity", value: quantity(t, "1.5", "mg"), want: `{"value": 1.5, "unit": "mg"}`},
		{name: "object keeps order", value: fhirpath.Object{Fields: []fhirpath.Field{
			{Name: "b", Value: fhirpath.NewBoolean(true)},
			{Name: "a", Value: fhirpath.NewCollection(fhirpath.NewInteger(1), fhirpath.NewInteger(2))},
		}}, want: `{"b": true, "a": [1, 2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assert.JSONEqual(t, tt.want, string(got))
		})
	}
}

func TestParseTypeSpecifier(t *testing.T) {
	tests := []struct {
		input string
		want  fhirpath.TypeSpecifier
	}{
		{input: "FHIR.Patient", want: fhirpath.TypeSpecifier{Namespace: "FHIR", Name: "Patient"}},
		{input: "Integer", want: fhirpath.TypeSpecifier{Name: "Integer"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := fhirpath.ParseTypeSpecifier(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestEvalError(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := error(&fhirpath.EvalError{Kind: fhirpath.InvalidRegex, Msg: "matches() failed", Err: cause})

	if diff := cmp.Diff("InvalidRegex: matches() failed: boom", err.Error()); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(err, fhirpath.ErrInvalidRegex) {
		t.Error("expected errors.Is to match the kind sentinel")
	}
	if errors.Is(err, fhirpath.ErrTypeError) {
		t.Error("matched a sentinel of another kind")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to be unwrapped")
	}
	if got := fhirpath.ErrorKind(200).String(); got != "ErrorKind(200)" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

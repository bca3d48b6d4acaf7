package fhirpath_test

import (
	"context"
	"errors"
	"testing"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/testdata/assert"
	"github.com/google/go-cmp/cmp"
)

func TestBooleanLogic(t *testing.T) {
	operands := []struct {
		text string
		want string
	}{
		{text: "true", want: "T"},
		{text: "false", want: "F"},
		{text: "{}", want: "E"},
	}
	tests := []struct {
		op    string
		table [3][3]string
	}{
		{op: "and", table: [3][3]string{
			{"T", "F", "E"},
			{"F", "F", "F"},
			{"E", "F", "E"},
		}},
		{op: "or", table: [3][3]string{
			{"T", "T", "T"},
			{"T", "F", "E"},
			{"T", "E", "E"},
		}},
		{op: "xor", table: [3][3]string{
			{"F", "T", "E"},
			{"T", "F", "E"},
			{"E", "E", "E"},
		}},
		{op: "implies", table: [3][3]string{
			{"T", "F", "E"},
			{"T", "T", "T"},
			{"T", "E", "E"},
		}},
	}

	for _, tt := range tests {
		for i, l := range operands {
			for j, r := range operands {
				expr := l.text + " " + tt.op + " " + r.text
				t.Run(expr, func(t *testing.T) {
					got, err := fhirpath.EvaluateString(context.Background(), expr, nil)
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					if diff := cmp.Diff(tt.table[i][j], logicSymbol(got)); diff != "" {
						t.Errorf("mismatch (-want +got):\n%s", diff)
					}
				})
			}
		}
	}
}

func logicSymbol(v fhirpath.Value) string {
	switch b := v.(type) {
	case fhirpath.Boolean:
		if b.Value {
			return "T"
		}
		return "F"
	case fhirpath.Empty:
		return "E"
	}
	return v.String()
}

func TestShortCircuit(t *testing.T) {
	tests := []string{
		"false and %undefined",
		"true or %undefined",
		"false implies %undefined",
		"true or {}",
		"false and {}",
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			if _, err := fhirpath.EvaluateString(context.Background(), expr, nil); err != nil {
				t.Errorf("right operand should not be evaluated: %v", err)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		opts []fhirpath.Option
		want error
	}{
		{name: "non boolean operand", expr: "1 and true", want: fhirpath.ErrTypeError},
		{name: "non boolean literal after deciding or", expr: "true or 1", want: fhirpath.ErrTypeError},
		{name: "non boolean literal after deciding and", expr: "false and 'x'", want: fhirpath.ErrTypeError},
		{name: "non boolean literal after deciding implies", expr: "false implies 2", want: fhirpath.ErrTypeError},
		{name: "calendar against ucum duration", expr: "1 year < 1 'a'", want: fhirpath.ErrTypeError},
		{name: "ucum against calendar duration", expr: "1 'a' >= 1 year", want: fhirpath.ErrTypeError},
		{name: "collection operand", expr: "(true | false) and true", want: fhirpath.ErrSingletonEvaluationError},
		{name: "undefined variable", expr: "%nope", want: fhirpath.ErrUndefinedVariable},
		{name: "redefined variable", expr: "defineVariable('ucum', 1)", want: fhirpath.ErrSemanticError},
		{name: "nesting depth", expr: "((((1))))", opts: []fhirpath.Option{fhirpath.WithMaxDepth(3)}, want: fhirpath.ErrInvalidOperation},
		{name: "repeat iterations", expr: "1.repeat($this + 1)", opts: []fhirpath.Option{fhirpath.WithMaxRepeatIterations(5)}, want: fhirpath.ErrInvalidOperation},
		{name: "integer overflow", expr: "9223372036854775807 + 1", want: fhirpath.ErrArithmeticOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ec := fhirpath.NewEvaluationContext(tt.opts...)
			got, err := fhirpath.EvaluateString(context.Background(), tt.expr, ec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got result %v and error %v", tt.want, got, err)
			}
			var evalErr *fhirpath.EvalError
			if !errors.As(err, &evalErr) {
				t.Fatalf("expected *EvalError, got %T", err)
			}
		})
	}
}

func TestEvaluateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fhirpath.EvaluateString(ctx, "(1 | 2).count()", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !errors.Is(err, fhirpath.ErrInvalidOperation) {
		t.Errorf("expected InvalidOperation, got %v", err)
	}
}

func TestEvaluateEmptyExpression(t *testing.T) {
	if _, err := fhirpath.Evaluate(context.Background(), nil, fhirpath.Expression{}); err == nil {
		t.Fatal("expected error for zero Expression")
	}
}

func TestEvaluationContext(t *testing.T) {
	ctx := context.Background()

	t.Run("variables", func(t *testing.T) {
		ec := fhirpath.NewEvaluationContext()
		ec.SetVariable("limit", fhirpath.NewInteger(3))

		got, err := fhirpath.EvaluateString(ctx, "%limit * 2", ec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.FHIRPathEqual(t, fhirpath.NewInteger(6), got)
	})

	t.Run("system variables", func(t *testing.T) {
		got, err := fhirpath.EvaluateString(ctx, "%ucum", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.FHIRPathEqual(t, fhirpath.NewString("http://unitsofmeasure.org"), got)
	})

	t.Run("clone is independent", func(t *testing.T) {
		ec := fhirpath.NewEvaluationContext()
		clone := ec.Clone()
		clone.SetVariable("x", fhirpath.NewBoolean(true))

		if _, err := fhirpath.EvaluateString(ctx, "%x", ec); !errors.Is(err, fhirpath.ErrUndefinedVariable) {
			t.Errorf("variable leaked into original context: %v", err)
		}
		if _, err := fhirpath.EvaluateString(ctx, "%x", clone); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("this", func(t *testing.T) {
		ec := fhirpath.NewEvaluationContext()
		ec.SetThis(fhirpath.NewString("abc"))

		got, err := fhirpath.EvaluateString(ctx, "length() = %context.length()", ec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.FHIRPathEqual(t, fhirpath.NewBoolean(true), got)
	})

	t.Run("custom function", func(t *testing.T) {
		double := func(ctx context.Context, c *fhirpath.Call) (fhirpath.Value, error) {
			var out []fhirpath.Value
			for _, item := range fhirpath.Items(c.Input) {
				i, ok := item.(fhirpath.Integer)
				if !ok {
					return nil, &fhirpath.EvalError{Kind: fhirpath.TypeError, Msg: "double() expects integers"}
				}
				out = append(out, fhirpath.NewInteger(i.Value*2))
			}
			return fhirpath.NewCollection(out...), nil
		}
		ec := fhirpath.NewEvaluationContext(fhirpath.WithFunctions(fhirpath.Functions{"double": double}))

		got, err := fhirpath.EvaluateString(ctx, "(1 | 2).double()", ec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.FHIRPathEqual(t, fhirpath.NewCollection(fhirpath.NewInteger(2), fhirpath.NewInteger(4)), got)

		if _, err := fhirpath.EvaluateString(ctx, "'a'.double()", ec); !errors.Is(err, fhirpath.ErrTypeError) {
			t.Errorf("expected TypeError, got %v", err)
		}
	})

	t.Run("unknown function", func(t *testing.T) {
		got, err := fhirpath.EvaluateString(ctx, "1.unknownFunction()", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fhirpath.IsEmpty(got) {
			t.Errorf("expected empty, got %v", got)
		}
	})

	t.Run("trace", func(t *testing.T) {
		ec := fhirpath.NewEvaluationContext()
		got, err := fhirpath.EvaluateString(ctx, "(1 | 2).trace('all').trace('tens', $this * 10)", ec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.FHIRPathEqual(t, fhirpath.NewCollection(fhirpath.NewInteger(1), fhirpath.NewInteger(2)), got)

		traces := ec.TraceOutputs()
		if len(traces) != 2 {
			t.Fatalf("expected 2 traces, got %d", len(traces))
		}
		if diff := cmp.Diff([]string{"all", "tens"}, []string{traces[0].Name, traces[1].Name}); diff != "" {
			t.Errorf("trace names mismatch (-want +got):\n%s", diff)
		}
		assert.FHIRPathEqual(t, fhirpath.NewCollection(fhirpath.NewInteger(10), fhirpath.NewInteger(20)), traces[1].Value)

		ec.ClearTraces()
		if len(ec.TraceOutputs()) != 0 {
			t.Errorf("traces not cleared")
		}
	})
}

func TestExpressionString(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: "Patient.name.where(use='official')", want: "Patient.name.where(use = 'official')"},
		{source: "1+2*3", want: "1 + 2 * 3"},
		{source: "substring(1,2)", want: "substring(1, 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			expr := fhirpath.MustParse(tt.source)
			if diff := cmp.Diff(tt.want, expr.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if expr.Source() != tt.source {
				t.Errorf("Source() = %q, want %q", expr.Source(), tt.source)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fhirpath.MustParse("1 +")
}

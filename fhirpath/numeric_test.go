package fhirpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntegerOverflow(t *testing.T) {
	tests := []struct {
		name   string
		op     func(a, b int64) (int64, bool)
		a, b   int64
		want   int64
		wantOk bool
	}{
		{name: "add", op: addInt64, a: 1, b: 2, want: 3, wantOk: true},
		{name: "add overflow", op: addInt64, a: math.MaxInt64, b: 1},
		{name: "add negative overflow", op: addInt64, a: math.MinInt64, b: -1},
		{name: "sub", op: subInt64, a: 1, b: 2, want: -1, wantOk: true},
		{name: "sub overflow", op: subInt64, a: math.MinInt64, b: 1},
		{name: "mul", op: mulInt64, a: -3, b: 4, want: -12, wantOk: true},
		{name: "mul zero", op: mulInt64, a: math.MaxInt64, b: 0, want: 0, wantOk: true},
		{name: "mul overflow", op: mulInt64, a: math.MaxInt64, b: 2},
		{name: "mul min", op: mulInt64, a: math.MinInt64 / 2, b: 2, want: math.MinInt64, wantOk: true},
		{name: "mul min by minus one", op: mulInt64, a: math.MinInt64, b: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.op(tt.a, tt.b)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReduceDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{input: "4.000", want: NewInteger(4)},
		{input: "-12", want: NewInteger(-12)},
		{input: "4.5", want: MustDecimal("4.5")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := reduceDecimal(MustDecimal(tt.input).Value)
			if diff := cmp.Diff(tt.want.String(), got.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if _, isInt := tt.want.(Integer); isInt {
				if _, ok := got.(Integer); !ok {
					t.Errorf("expected Integer, got %T", got)
				}
			}
		})
	}
}

func TestDecimalBoundary(t *testing.T) {
	tests := []struct {
		input  string
		digits int
		upper  bool
		want   string
	}{
		{input: "1.587", digits: 8, want: "1.58650000"},
		{input: "1.587", digits: 8, upper: true, want: "1.58750000"},
		{input: "-1.587", digits: 4, want: "-1.5875"},
		{input: "-1.587", digits: 4, upper: true, want: "-1.5865"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := decimalBoundary(defaultAPDContext, MustDecimal(tt.input).Value, tt.digits, tt.upper)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Text('f')); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecimalsEquivalent(t *testing.T) {
	if !decimalsEquivalent(defaultAPDContext, MustDecimal("0.333").Value, MustDecimal("0.33").Value) {
		t.Error("0.333 ~ 0.33 should hold")
	}
	if decimalsEquivalent(defaultAPDContext, MustDecimal("0.35").Value, MustDecimal("0.33").Value) {
		t.Error("0.35 ~ 0.33 should not hold")
	}
}

package fhirpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustQuantity(t *testing.T, value, unit string) Quantity {
	t.Helper()
	q, err := NewQuantity(value, unit)
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input     string
		wantValue string
		wantUnit  string
		wantOk    bool
	}{
		{input: "5.5 'mg'", wantValue: "5.5", wantUnit: "mg", wantOk: true},
		{input: "3 days", wantValue: "3", wantUnit: "days", wantOk: true},
		{input: "-2", wantValue: "-2", wantUnit: "1", wantOk: true},
		{input: " 4'cm' ", wantValue: "4", wantUnit: "cm", wantOk: true},
		{input: "3 lightyears"},
		{input: "abc"},
		{input: "1.5.2 'mg'"},
		{input: "5 'not a unit'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseQuantity(tt.input)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff([]string{tt.wantValue, tt.wantUnit}, []string{got.Value.String(), got.Unit}); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuantitiesEqual(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Quantity
		wantEq bool
		wantOk bool
	}{
		{name: "same unit", a: mustQuantity(t, "1", "mg"), b: mustQuantity(t, "1.0", "mg"), wantEq: true, wantOk: true},
		{name: "different value", a: mustQuantity(t, "1", "mg"), b: mustQuantity(t, "2", "mg"), wantEq: false, wantOk: true},
		{name: "annotation braces", a: mustQuantity(t, "3", "{reading}"), b: mustQuantity(t, "3", "reading"), wantEq: true, wantOk: true},
		{name: "hour and minutes", a: mustQuantity(t, "1", "hour"), b: mustQuantity(t, "60", "min"), wantEq: true, wantOk: true},
		{name: "week and days", a: mustQuantity(t, "1", "week"), b: mustQuantity(t, "7", "days"), wantEq: true, wantOk: true},
		{name: "calendar year against ucum year", a: mustQuantity(t, "1", "year"), b: mustQuantity(t, "1", "a"), wantOk: false},
		{name: "incompatible units", a: mustQuantity(t, "1", "mg"), b: mustQuantity(t, "1", "cm"), wantOk: false},
		{name: "grams and milligrams", a: mustQuantity(t, "1", "g"), b: mustQuantity(t, "1000", "mg"), wantEq: true, wantOk: true},
		{name: "kilograms and grams", a: mustQuantity(t, "1", "kg"), b: mustQuantity(t, "999", "g"), wantEq: false, wantOk: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, ok := quantitiesEqual(tt.a, tt.b)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && eq != tt.wantEq {
				t.Errorf("eq = %v, want %v", eq, tt.wantEq)
			}
		})
	}
}

func TestQuantitiesEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b Quantity
		want bool
	}{
		{name: "within tolerance", a: mustQuantity(t, "1.001", "mg"), b: mustQuantity(t, "1", "mg"), want: true},
		{name: "outside tolerance", a: mustQuantity(t, "1.1", "mg"), b: mustQuantity(t, "1", "mg"), want: false},
		{name: "calendar year against ucum year", a: mustQuantity(t, "1", "year"), b: mustQuantity(t, "1", "a"), want: true},
		{name: "incompatible units", a: mustQuantity(t, "1", "mg"), b: mustQuantity(t, "1", "cm"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantitiesEquivalent(defaultAPDContext, tt.a, tt.b); got != tt.want {
				t.Errorf("quantitiesEquivalent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareQuantities(t *testing.T) {
	got, err := compareQuantities(mustQuantity(t, "90", "min"), mustQuantity(t, "1", "h"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("compareQuantities() = %d, want 1", got)
	}

	got, err = compareQuantities(mustQuantity(t, "999", "mg"), mustQuantity(t, "1", "g"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Errorf("compareQuantities() = %d, want -1", got)
	}

	for _, units := range [][2]string{{"mg", "cm"}, {"year", "a"}, {"a", "year"}, {"month", "mo"}} {
		_, err := compareQuantities(mustQuantity(t, "1", units[0]), mustQuantity(t, "1", units[1]))
		if !errors.Is(err, ErrTypeError) {
			t.Errorf("compareQuantities(%s, %s) error = %v, want a type error", units[0], units[1], err)
		}
	}
}

func TestConvertQuantity(t *testing.T) {
	tests := []struct {
		name   string
		q      Quantity
		unit   string
		want   string
		wantOk bool
	}{
		{name: "same unit", q: mustQuantity(t, "2.5", "mg"), unit: "mg", want: "2.5", wantOk: true},
		{name: "plural keyword", q: mustQuantity(t, "2", "days"), unit: "d", want: "2", wantOk: true},
		{name: "hours to minutes", q: mustQuantity(t, "2", "h"), unit: "min", want: "120", wantOk: true},
		{name: "milligrams to grams", q: mustQuantity(t, "1000", "mg"), unit: "g", want: "1", wantOk: true},
		{name: "kilograms to grams", q: mustQuantity(t, "1", "kg"), unit: "g", want: "1000", wantOk: true},
		{name: "minutes to hours", q: mustQuantity(t, "30", "minutes"), unit: "h", want: "0.5", wantOk: true},
		{name: "mass to length", q: mustQuantity(t, "2", "mg"), unit: "cm"},
		{name: "calendar year to months", q: mustQuantity(t, "1", "year"), unit: "months"},
		{name: "unknown unit", q: mustQuantity(t, "1", "mg"), unit: "lightyears"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertQuantity(defaultAPDContext, tt.q, tt.unit)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if got.String() != tt.want {
				t.Errorf("convertQuantity() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestQuantityFromObject(t *testing.T) {
	tests := []struct {
		name     string
		object   Object
		wantUnit string
		wantOk   bool
	}{
		{
			name: "code preferred",
			object: Object{Type: fhirType("Quantity"), Fields: []Field{
				{Name: "value", Value: MustDecimal("185")},
				{Name: "unit", Value: NewString("lbs")},
				{Name: "code", Value: NewString("[lb_av]")},
			}},
			wantUnit: "[lb_av]",
			wantOk:   true,
		},
		{
			name: "unit fallback",
			object: Object{Type: fhirType("Age"), Fields: []Field{
				{Name: "value", Value: NewInteger(3)},
				{Name: "unit", Value: NewString("a")},
			}},
			wantUnit: "a",
			wantOk:   true,
		},
		{
			name:     "default unit",
			object:   Object{Type: fhirType("Count"), Fields: []Field{{Name: "value", Value: NewInteger(3)}}},
			wantUnit: "1",
			wantOk:   true,
		},
		{name: "no value", object: Object{Type: fhirType("Quantity")}},
		{name: "not a quantity", object: Object{Type: fhirType("Period"), Fields: []Field{{Name: "value", Value: NewInteger(3)}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := quantityFromObject(tt.object)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got.Unit != tt.wantUnit {
				t.Errorf("unit = %q, want %q", got.Unit, tt.wantUnit)
			}
		})
	}
}

package assert

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/damedic/fhirpath-go/fhirpath"
)

// FHIRPathEqual compares two results item by item. Type tags are ignored,
// decimals compare by value and dates by their literal form. Unordered
// results are compared as multisets.
func FHIRPathEqual(t *testing.T, expected, actual fhirpath.Value) {
	t.Helper()
	opts := cmp.Options{cmp.Comparer(itemEqual)}
	if isUnordered(expected) || isUnordered(actual) {
		opts = append(opts, cmpopts.SortSlices(func(a, b fhirpath.Value) bool {
			return a.String() < b.String()
		}))
	}
	if diff := cmp.Diff(fhirpath.Items(expected), fhirpath.Items(actual), opts, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("result mismatch (-expected +actual):\n%s", diff)
	}
}

func isUnordered(v fhirpath.Value) bool {
	c, ok := v.(fhirpath.Collection)
	return ok && c.Unordered
}

func itemEqual(a, b fhirpath.Value) bool {
	switch a := a.(type) {
	case fhirpath.Boolean:
		b, ok := b.(fhirpath.Boolean)
		return ok && a.Value == b.Value
	case fhirpath.Integer:
		b, ok := b.(fhirpath.Integer)
		return ok && a.Value == b.Value
	case fhirpath.Integer64:
		b, ok := b.(fhirpath.Integer64)
		return ok && a.Value == b.Value
	case fhirpath.String:
		b, ok := b.(fhirpath.String)
		return ok && a.Value == b.Value
	case fhirpath.Decimal:
		b, ok := b.(fhirpath.Decimal)
		return ok && a.Value.Cmp(b.Value) == 0
	case fhirpath.Quantity:
		b, ok := b.(fhirpath.Quantity)
		return ok && a.Unit == b.Unit && a.Value.Cmp(b.Value) == 0
	case fhirpath.Date:
		b, ok := b.(fhirpath.Date)
		return ok && a.String() == b.String()
	case fhirpath.DateTime:
		b, ok := b.(fhirpath.DateTime)
		return ok && a.String() == b.String()
	case fhirpath.Time:
		b, ok := b.(fhirpath.Time)
		return ok && a.String() == b.String()
	case fhirpath.Object:
		b, ok := b.(fhirpath.Object)
		if !ok {
			return false
		}
		aj, errA := json.Marshal(a)
		bj, errB := json.Marshal(b)
		return errA == nil && errB == nil && string(aj) == string(bj)
	}
	return false
}

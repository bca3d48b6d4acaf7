package fhirpath

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/iimos/ucum"
	"github.com/iimos/ucum/ucumapd"

	"github.com/damedic/fhirpath-go/fhirpath/internal/parser"
)

// unitConverter caches parsed UCUM units across evaluations.
var unitConverter = ucumapd.NewConverter(ucum.DefaultConverter)

func isCalendarUnit(unit string) bool {
	return parser.IsCalendarUnit(unit)
}

// unitKey strips UCUM annotation braces so `{reading}` and `reading`
// compare equal.
func unitKey(unit string) string {
	unit = strings.TrimSpace(unit)
	if len(unit) >= 2 && unit[0] == '{' && unit[len(unit)-1] == '}' {
		return unit[1 : len(unit)-1]
	}
	return unit
}

// canonicalUCUMUnit maps the definite calendar duration keywords onto
// their UCUM codes. Calendar years and months have no UCUM equivalent and
// keep their singular keyword.
func canonicalUCUMUnit(unit string) string {
	unit = strings.TrimSpace(unit)
	switch normalized := normalizeTimeUnit(unit); normalized {
	case UnitYear, UnitMonth:
		return normalized
	case UnitWeek:
		return "wk"
	case UnitDay:
		return "d"
	case UnitHour:
		return "h"
	case UnitMinute:
		return "min"
	case UnitSecond:
		return "s"
	case UnitMillisecond:
		return "ms"
	}
	return unit
}

// convertDecimalUnit expresses value, given in unit from, in unit to.
func convertDecimalUnit(ctx *apd.Context, value *apd.Decimal, from, to string) (*apd.Decimal, error) {
	if unitKey(from) == unitKey(to) {
		return value, nil
	}
	from, to = canonicalUCUMUnit(from), canonicalUCUMUnit(to)
	if from == to {
		return value, nil
	}
	for _, unit := range []string{from, to} {
		if unit == UnitYear || unit == UnitMonth {
			return nil, fmt.Errorf("calendar duration %s can not be converted to %s", from, to)
		}
	}
	converted, err := unitConverter.ConvDecimal(value, from, to, ctx)
	if err != nil {
		return nil, err
	}
	return trimDecimal(ctx, converted), nil
}

// calendarMismatch reports the pairs that are never comparable: calendar
// years and months against the UCUM `a` and `mo`.
func calendarMismatch(a, b string) bool {
	na, nb := normalizeTimeUnit(unitKey(a)), normalizeTimeUnit(unitKey(b))
	switch {
	case na == UnitYear && nb == "a", na == "a" && nb == UnitYear:
		return true
	case na == UnitMonth && nb == "mo", na == "mo" && nb == UnitMonth:
		return true
	}
	return false
}

// quantitiesEqual returns ok false when the units can not be compared.
func quantitiesEqual(a, b Quantity) (eq bool, ok bool) {
	if calendarMismatch(a.Unit, b.Unit) {
		return false, false
	}
	bv, err := convertDecimalUnit(defaultAPDContext, b.Value, b.Unit, a.Unit)
	if err != nil {
		return false, false
	}
	return a.Value.Cmp(bv) == 0, true
}

func quantitiesEquivalent(ctx *apd.Context, a, b Quantity) bool {
	if calendarMismatch(a.Unit, b.Unit) {
		// `1 year ~ 1 'a'` holds, the units only differ in their
		// calendar definition.
		return decimalsEquivalent(ctx, a.Value, b.Value)
	}
	bv, err := convertDecimalUnit(ctx, b.Value, b.Unit, a.Unit)
	if err != nil {
		return false
	}
	return decimalsEquivalent(ctx, a.Value, bv)
}

func compareQuantities(a, b Quantity) (int, error) {
	if calendarMismatch(a.Unit, b.Unit) {
		return 0, newError(TypeError, "can not compare calendar duration %q to %q", a.Unit, b.Unit)
	}
	bv, err := convertDecimalUnit(defaultAPDContext, b.Value, b.Unit, a.Unit)
	if err != nil {
		return 0, wrapError(TypeError, err, "can not compare quantities with units %q and %q", a.Unit, b.Unit)
	}
	return a.Value.Cmp(bv), nil
}

// convertQuantity expresses q in unit. ok is false when the units measure
// different things.
func convertQuantity(ctx *apd.Context, q Quantity, unit string) (*apd.Decimal, bool) {
	v, err := convertDecimalUnit(ctx, q.Value, q.Unit, unit)
	if err != nil {
		return nil, false
	}
	return v, true
}

// quantityPattern accepts the text forms of toQuantity(): a number
// optionally followed by a quoted UCUM unit or a calendar keyword.
var quantityPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)\s*(?:'([^']+)'|([a-zA-Z]+))?$`)

// ParseQuantity parses "5.5 'mg'", "3 days" or a bare number (unit '1').
func ParseQuantity(s string) (Quantity, bool) {
	m := quantityPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Quantity{}, false
	}
	unit := "1"
	switch {
	case m[2] != "":
		if _, err := ucum.Parse([]byte(m[2])); err != nil {
			return Quantity{}, false
		}
		unit = m[2]
	case m[3] != "":
		if !isCalendarUnit(m[3]) {
			return Quantity{}, false
		}
		unit = m[3]
	}
	q, err := NewQuantity(m[1], unit)
	if err != nil {
		return Quantity{}, false
	}
	return q, true
}

// fhirQuantityTypes are the FHIR complex types that carry a quantity.
var fhirQuantityTypes = map[string]bool{
	"Quantity":       true,
	"SimpleQuantity": true,
	"MoneyQuantity":  true,
	"Age":            true,
	"Count":          true,
	"Distance":       true,
	"Duration":       true,
}

// quantityFromObject converts a FHIR Quantity element into a System
// quantity. The UCUM code is preferred over the display unit.
func quantityFromObject(o Object) (Quantity, bool) {
	if !fhirQuantityTypes[o.Type.Name] {
		return Quantity{}, false
	}
	raw, ok := o.Get("value")
	if !ok {
		return Quantity{}, false
	}
	value, ok := toDecimal(unwrapPrimitive(raw))
	if !ok {
		return Quantity{}, false
	}
	unit := "1"
	for _, key := range []string{"code", "unit"} {
		if v, ok := o.Get(key); ok {
			if s, ok := unwrapPrimitive(v).(String); ok && s.Value != "" {
				unit = s.Value
				break
			}
		}
	}
	return Quantity{Value: value, Unit: unit}, true
}

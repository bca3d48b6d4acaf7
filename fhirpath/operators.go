package fhirpath

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/cases"
)

// unwrapPrimitive returns the value of a FHIR primitive that was read
// together with its extensions (`birthDate` + `_birthDate`). Other values
// are returned unchanged.
func unwrapPrimitive(v Value) Value {
	o, ok := v.(Object)
	if !ok || !isPrimitiveWrapper(o) {
		return v
	}
	inner, ok := o.Get("value")
	if !ok {
		return v
	}
	return inner
}

func isPrimitiveWrapper(o Object) bool {
	if !strings.EqualFold(o.Type.Namespace, NamespaceFHIR) {
		return false
	}
	_, ok := fhirPrimitiveSystemTypes[o.Type.Name]
	return ok
}

// asQuantity converts System quantities and FHIR Quantity elements.
func asQuantity(v Value) (Quantity, bool) {
	switch q := v.(type) {
	case Quantity:
		return q, true
	case Object:
		return quantityFromObject(q)
	}
	return Quantity{}, false
}

// isTemporal reports whether v is a Date, DateTime or Time.
func isTemporal(v Value) bool {
	switch v.(type) {
	case Date, DateTime, Time:
		return true
	}
	return false
}

// coerceTemporal parses s as the temporal kind of like.
func coerceTemporal(s String, like Value) (Value, bool) {
	switch like.(type) {
	case Date:
		if d, err := ParseDate(s.Value); err == nil {
			return d, true
		}
		if dt, err := ParseDateTime(s.Value); err == nil {
			return dt, true
		}
	case DateTime:
		if dt, err := ParseDateTime(s.Value); err == nil {
			return dt, true
		}
	case Time:
		if t, err := ParseTime(s.Value); err == nil {
			return t, true
		}
	}
	return nil, false
}

func (e *evaluator) equality(l, r Value, negate bool) Value {
	eq, ok := valuesEqual(l, r)
	if !ok {
		return Empty{}
	}
	return Boolean{Value: eq != negate}
}

// valuesEqual compares two collections item by item in order. ok is false
// when either side is empty or an item comparison is undefined.
func valuesEqual(l, r Value) (eq bool, ok bool) {
	li, ri := Items(l), Items(r)
	if len(li) == 0 || len(ri) == 0 {
		return false, false
	}
	if len(li) != len(ri) {
		return false, true
	}
	for i := range li {
		eq, ok := itemsEqual(li[i], ri[i])
		if !ok {
			return false, false
		}
		if !eq {
			return false, true
		}
	}
	return true, true
}

func itemsEqual(a, b Value) (eq bool, ok bool) {
	a, b = unwrapPrimitive(a), unwrapPrimitive(b)

	if qa, isQuantity := asQuantity(a); isQuantity {
		if qb, isQuantity := asQuantity(b); isQuantity {
			return quantitiesEqual(qa, qb)
		}
	}

	switch x := a.(type) {
	case Boolean:
		y, isBool := b.(Boolean)
		return isBool && x.Value == y.Value, true
	case String:
		switch y := b.(type) {
		case String:
			return x.Value == y.Value, true
		case Date, DateTime, Time:
			parsed, parsedOK := coerceTemporal(x, y)
			if !parsedOK {
				return false, true
			}
			return itemsEqual(parsed, y)
		}
		return false, true
	case Integer, Integer64, Decimal:
		da, _ := toDecimal(a)
		db, isNum := toDecimal(b)
		if !isNum {
			return false, true
		}
		return da.Cmp(db) == 0, true
	case Date, DateTime, Time:
		if s, isString := b.(String); isString {
			parsed, parsedOK := coerceTemporal(s, a)
			if !parsedOK {
				return false, true
			}
			b = parsed
		}
		cmp, defined, err := compareTemporal(a, b)
		if err != nil {
			return false, true
		}
		if !defined {
			return false, false
		}
		return cmp == 0, true
	case Object:
		y, isObject := b.(Object)
		if !isObject {
			return false, true
		}
		return objectsMatch(x, y, func(l, r Value) bool {
			eq, ok := valuesEqual(l, r)
			return ok && eq
		}), true
	}
	return false, true
}

func objectsMatch(a, b Object, match func(l, r Value) bool) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for _, f := range a.Fields {
		other, ok := b.Get(f.Name)
		if !ok || !match(f.Value, other) {
			return false
		}
	}
	return true
}

// equivalent compares collections irrespective of order. Two empty
// collections are equivalent.
func (e *evaluator) equivalent(l, r Value) bool {
	li, ri := Items(l), Items(r)
	if len(li) != len(ri) {
		return false
	}
	used := make([]bool, len(ri))
outer:
	for _, a := range li {
		for j, b := range ri {
			if !used[j] && e.itemsEquivalent(a, b) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

var foldCase = cases.Fold()

// normalizeString prepares a string for equivalence: case folded with runs
// of whitespace collapsed to a single space.
func normalizeString(s string) string {
	return foldCase.String(strings.Join(strings.Fields(s), " "))
}

func (e *evaluator) itemsEquivalent(a, b Value) bool {
	a, b = unwrapPrimitive(a), unwrapPrimitive(b)

	if qa, isQuantity := asQuantity(a); isQuantity {
		if qb, isQuantity := asQuantity(b); isQuantity {
			return quantitiesEquivalent(e.ec.decimal, qa, qb)
		}
	}

	switch x := a.(type) {
	case String:
		if y, isString := b.(String); isString {
			return normalizeString(x.Value) == normalizeString(y.Value)
		}
	case Integer, Integer64, Decimal:
		da, _ := toDecimal(a)
		if db, isNum := toDecimal(b); isNum {
			return decimalsEquivalent(e.ec.decimal, da, db)
		}
		return false
	case Date, DateTime, Time:
		if s, isString := b.(String); isString {
			parsed, ok := coerceTemporal(s, a)
			if !ok {
				return false
			}
			b = parsed
		}
		cmp, defined, err := compareTemporal(a, b)
		return err == nil && defined && cmp == 0
	case Object:
		if y, isObject := b.(Object); isObject {
			return objectsMatch(x, y, e.equivalent)
		}
		return false
	}
	eq, ok := itemsEqual(a, b)
	return ok && eq
}

func (e *evaluator) inequality(op string, l, r Value) (Value, error) {
	a, aok, err := singleton(l, "operator "+op)
	if err != nil {
		return nil, err
	}
	b, bok, err := singleton(r, "operator "+op)
	if err != nil {
		return nil, err
	}
	if !aok || !bok {
		return Empty{}, nil
	}
	cmp, ok, err := compareValues(a, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Empty{}, nil
	}
	switch op {
	case "<":
		return Boolean{Value: cmp < 0}, nil
	case "<=":
		return Boolean{Value: cmp <= 0}, nil
	case ">":
		return Boolean{Value: cmp > 0}, nil
	default:
		return Boolean{Value: cmp >= 0}, nil
	}
}

// compareValues orders two singletons. ok is false when the order is
// undefined, as for date/times of different precision.
func compareValues(a, b Value) (cmp int, ok bool, err error) {
	a, b = unwrapPrimitive(a), unwrapPrimitive(b)

	if qa, isQuantity := asQuantity(a); isQuantity {
		qb, isQuantity := asQuantity(b)
		if !isQuantity {
			return 0, false, newError(TypeError, "can not compare %s to %s", TypeOf(a), TypeOf(b))
		}
		cmp, err := compareQuantities(qa, qb)
		return cmp, err == nil, err
	}

	switch x := a.(type) {
	case Integer, Integer64, Decimal:
		da, _ := toDecimal(a)
		db, isNum := toDecimal(b)
		if !isNum {
			break
		}
		return da.Cmp(db), true, nil
	case String:
		switch y := b.(type) {
		case String:
			return strings.Compare(x.Value, y.Value), true, nil
		case Date, DateTime, Time:
			parsed, parsedOK := coerceTemporal(x, y)
			if !parsedOK {
				return 0, false, newError(TypeError, "can not compare %q to %s", x.Value, TypeOf(y))
			}
			return compareTemporal(parsed, y)
		}
	case Date, DateTime, Time:
		if s, isString := b.(String); isString {
			parsed, parsedOK := coerceTemporal(s, a)
			if !parsedOK {
				return 0, false, newError(TypeError, "can not compare %s to %q", TypeOf(a), s.Value)
			}
			b = parsed
		}
		return compareTemporal(a, b)
	}
	return 0, false, newError(TypeError, "can not compare %s to %s", TypeOf(a), TypeOf(b))
}

// membership implements `in` and, with swapped operands, `contains`.
func (e *evaluator) membership(item, collection Value) (Value, error) {
	v, ok, err := singleton(item, "membership operator")
	if err != nil {
		return nil, err
	}
	if !ok {
		return Empty{}, nil
	}
	for _, candidate := range Items(collection) {
		if eq, ok := itemsEqual(v, candidate); ok && eq {
			return Boolean{Value: true}, nil
		}
	}
	return Boolean{Value: false}, nil
}

// union merges both operands without duplicates. The result has no
// defined order.
func (e *evaluator) union(l, r Value) Value {
	var out []Value
	for _, item := range append(append([]Value(nil), Items(l)...), Items(r)...) {
		duplicate := false
		for _, seen := range out {
			if e.itemsEquivalent(seen, item) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, item)
		}
	}
	return collect(out, true)
}

// stringify renders a primitive the way toString() does.
func stringify(v Value) (string, bool) {
	switch x := unwrapPrimitive(v).(type) {
	case String:
		return x.Value, true
	case Boolean:
		return strconv.FormatBool(x.Value), true
	case Integer:
		return strconv.FormatInt(x.Value, 10), true
	case Integer64:
		return strconv.FormatInt(x.Value, 10), true
	case Decimal:
		return x.Value.Text('f'), true
	case Date:
		return x.String(), true
	case DateTime:
		return strings.TrimSuffix(x.String(), "T"), true
	case Time:
		return x.String(), true
	case Quantity:
		return x.String(), true
	case Object:
		if q, ok := quantityFromObject(x); ok {
			return q.String(), true
		}
	}
	return "", false
}

func (e *evaluator) polarity(sign string, operand Value) (Value, error) {
	v, ok, err := singleton(operand, "unary "+sign)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Empty{}, nil
	}
	v = unwrapPrimitive(v)
	if q, isQuantity := asQuantity(v); isQuantity {
		v = q
	}
	if sign == "+" {
		if isNumber(v) {
			return v, nil
		}
		if _, isQuantity := v.(Quantity); isQuantity {
			return v, nil
		}
		return nil, newError(TypeError, "unary + is not defined for %s", TypeOf(v))
	}
	switch x := v.(type) {
	case Integer:
		if x.Value == math.MinInt64 {
			return nil, newError(ArithmeticOverflow, "negation of %d overflows", x.Value)
		}
		return Integer{Value: -x.Value}, nil
	case Integer64:
		if x.Value == math.MinInt64 {
			return nil, newError(ArithmeticOverflow, "negation of %d overflows", x.Value)
		}
		return Integer64{Value: -x.Value}, nil
	case Decimal:
		var d apd.Decimal
		d.Neg(x.Value)
		return Decimal{Value: &d}, nil
	case Quantity:
		var d apd.Decimal
		d.Neg(x.Value)
		return Quantity{Value: &d, Unit: x.Unit}, nil
	}
	return nil, newError(TypeError, "unary - is not defined for %s", TypeOf(v))
}

// concatOperand is the text of an `&` operand; Empty counts as ''.
func concatOperand(v Value) (string, error) {
	item, ok, err := singleton(v, "operator &")
	if err != nil || !ok {
		return "", err
	}
	s, ok := stringify(item)
	if !ok {
		return "", newError(TypeError, "operator & is not defined for %s", TypeOf(item))
	}
	return s, nil
}

func (e *evaluator) arithmetic(op string, l, r Value) (Value, error) {
	if op == "&" {
		ls, err := concatOperand(l)
		if err != nil {
			return nil, err
		}
		rs, err := concatOperand(r)
		if err != nil {
			return nil, err
		}
		return String{Value: ls + rs}, nil
	}

	a, aok, err := singleton(l, "operator "+op)
	if err != nil {
		return nil, err
	}
	b, bok, err := singleton(r, "operator "+op)
	if err != nil {
		return nil, err
	}
	if !aok || !bok {
		return Empty{}, nil
	}
	a, b = unwrapPrimitive(a), unwrapPrimitive(b)
	if q, ok := asQuantity(a); ok {
		a = q
	}
	if q, ok := asQuantity(b); ok {
		b = q
	}

	if op == "+" {
		if sa, ok := a.(String); ok {
			if sb, ok := b.(String); ok {
				return String{Value: sa.Value + sb.Value}, nil
			}
		}
		var err error
		if a, b, err = coerceNumericStrings(a, b); err != nil {
			return nil, err
		}
	}

	switch x := a.(type) {
	case Integer, Integer64, Decimal:
		switch y := b.(type) {
		case Integer, Integer64, Decimal:
			return e.numeric(op, a, b)
		case Quantity:
			if op == "*" {
				return e.scaleQuantity(y, x, false)
			}
		}
	case Quantity:
		switch y := b.(type) {
		case Quantity:
			return e.quantityArithmetic(op, x, y)
		case Integer, Integer64, Decimal:
			switch op {
			case "*":
				return e.scaleQuantity(x, y, false)
			case "/":
				return e.scaleQuantity(x, y, true)
			}
		}
	case Date:
		if q, ok := b.(Quantity); ok && (op == "+" || op == "-") {
			shifted, err := x.Add(q, op == "-")
			if err != nil {
				return nil, err
			}
			return shifted, nil
		}
	case DateTime:
		if q, ok := b.(Quantity); ok && (op == "+" || op == "-") {
			shifted, err := x.Add(q, op == "-")
			if err != nil {
				return nil, err
			}
			return shifted, nil
		}
	case Time:
		if q, ok := b.(Quantity); ok && (op == "+" || op == "-") {
			shifted, err := x.Add(q, op == "-")
			if err != nil {
				return nil, err
			}
			return shifted, nil
		}
	}
	return nil, newError(TypeError, "operator %s is not defined for %s and %s", op, TypeOf(a), TypeOf(b))
}

// coerceNumericStrings converts a String operand added to a number into a
// number.
func coerceNumericStrings(a, b Value) (Value, Value, error) {
	convert := func(s String) (Value, error) {
		if i, err := strconv.ParseInt(strings.TrimSpace(s.Value), 10, 64); err == nil {
			return Integer{Value: i}, nil
		}
		d, _, err := apd.NewFromString(strings.TrimSpace(s.Value))
		if err != nil || d.Form != apd.Finite {
			return nil, newError(TypeError, "can not add %q to a number", s.Value)
		}
		return Decimal{Value: d}, nil
	}
	var err error
	if s, ok := a.(String); ok && isNumber(b) {
		a, err = convert(s)
	}
	if s, ok := b.(String); ok && isNumber(a) {
		b, err = convert(s)
	}
	return a, b, err
}

func (e *evaluator) numeric(op string, a, b Value) (Value, error) {
	_, aDecimal := a.(Decimal)
	_, bDecimal := b.(Decimal)
	if aDecimal || bDecimal {
		if op == "div" || op == "mod" {
			if !aDecimal || !bDecimal {
				return nil, newError(TypeError, "operator %s expects operands of the same type, got %s and %s", op, TypeOf(a), TypeOf(b))
			}
		}
		da, _ := toDecimal(a)
		db, _ := toDecimal(b)
		return e.decimalArithmetic(op, da, db)
	}

	ai, bi := intValue(a), intValue(b)
	_, aLong := a.(Integer64)
	_, bLong := b.(Integer64)
	wrap := func(i int64) Value {
		if aLong || bLong {
			return Integer64{Value: i}
		}
		return Integer{Value: i}
	}

	var (
		result int64
		ok     = true
	)
	switch op {
	case "+":
		result, ok = addInt64(ai, bi)
	case "-":
		result, ok = subInt64(ai, bi)
	case "*":
		result, ok = mulInt64(ai, bi)
	case "/":
		return e.decimalArithmetic(op, decimalFromInt(ai), decimalFromInt(bi))
	case "div":
		if bi == 0 {
			return Empty{}, nil
		}
		if ai == math.MinInt64 && bi == -1 {
			ok = false
			break
		}
		result = ai / bi
	case "mod":
		if bi == 0 {
			return Empty{}, nil
		}
		if bi == -1 {
			result = 0
			break
		}
		result = ai % bi
	default:
		return nil, newError(InvalidOperation, "unknown operator %q", op)
	}
	if !ok {
		return nil, newError(ArithmeticOverflow, "%d %s %d overflows", ai, op, bi)
	}
	return wrap(result), nil
}

func intValue(v Value) int64 {
	switch n := v.(type) {
	case Integer:
		return n.Value
	case Integer64:
		return n.Value
	}
	return 0
}

func (e *evaluator) decimalArithmetic(op string, a, b *apd.Decimal) (Value, error) {
	var (
		result apd.Decimal
		err    error
	)
	switch op {
	case "+":
		_, err = e.ec.decimal.Add(&result, a, b)
	case "-":
		_, err = e.ec.decimal.Sub(&result, a, b)
	case "*":
		_, err = e.ec.decimal.Mul(&result, a, b)
	case "/":
		if b.IsZero() {
			return Empty{}, nil
		}
		if _, err = e.ec.decimal.Quo(&result, a, b); err == nil {
			return Decimal{Value: trimDecimal(e.ec.decimal, &result)}, nil
		}
	case "div":
		if b.IsZero() {
			return Empty{}, nil
		}
		_, err = e.ec.decimal.QuoInteger(&result, a, b)
		if err == nil {
			i, intErr := result.Int64()
			if intErr != nil {
				return nil, wrapError(ArithmeticOverflow, intErr, "%s div %s overflows", a, b)
			}
			return Integer{Value: i}, nil
		}
	case "mod":
		if b.IsZero() {
			return Empty{}, nil
		}
		_, err = e.ec.decimal.Rem(&result, a, b)
	default:
		return nil, newError(InvalidOperation, "unknown operator %q", op)
	}
	if err != nil {
		return nil, wrapError(ArithmeticOverflow, err, "decimal %s failed", op)
	}
	return Decimal{Value: &result}, nil
}

// scaleQuantity multiplies or divides a quantity by a number.
func (e *evaluator) scaleQuantity(q Quantity, n Value, divide bool) (Value, error) {
	factor, _ := toDecimal(n)
	var (
		result apd.Decimal
		err    error
	)
	if divide {
		if factor.IsZero() {
			return Empty{}, nil
		}
		if _, err = e.ec.decimal.Quo(&result, q.Value, factor); err == nil {
			return Quantity{Value: trimDecimal(e.ec.decimal, &result), Unit: q.Unit}, nil
		}
	} else {
		_, err = e.ec.decimal.Mul(&result, q.Value, factor)
	}
	if err != nil {
		return nil, wrapError(ArithmeticOverflow, err, "quantity arithmetic failed")
	}
	return Quantity{Value: &result, Unit: q.Unit}, nil
}

func (e *evaluator) quantityArithmetic(op string, a, b Quantity) (Value, error) {
	var (
		result apd.Decimal
		err    error
	)
	switch op {
	case "+", "-":
		bv, ok := convertQuantity(e.ec.decimal, b, a.Unit)
		if !ok || calendarMismatch(a.Unit, b.Unit) {
			return nil, newError(TypeError, "can not %s quantities with units %q and %q", map[string]string{"+": "add", "-": "subtract"}[op], a.Unit, b.Unit)
		}
		if op == "+" {
			_, err = e.ec.decimal.Add(&result, a.Value, bv)
		} else {
			_, err = e.ec.decimal.Sub(&result, a.Value, bv)
		}
		if err != nil {
			return nil, wrapError(ArithmeticOverflow, err, "quantity arithmetic failed")
		}
		return Quantity{Value: &result, Unit: a.Unit}, nil
	case "*":
		if _, err = e.ec.decimal.Mul(&result, a.Value, b.Value); err != nil {
			return nil, wrapError(ArithmeticOverflow, err, "quantity arithmetic failed")
		}
		return Quantity{Value: &result, Unit: combineUnits(a.Unit, b.Unit, ".")}, nil
	case "/":
		if b.Value.IsZero() {
			return Empty{}, nil
		}
		bv, sameUnit := convertQuantity(e.ec.decimal, b, a.Unit)
		unit := "1"
		if !sameUnit {
			bv = b.Value
			unit = combineUnits(a.Unit, b.Unit, "/")
		}
		if _, err = e.ec.decimal.Quo(&result, a.Value, bv); err != nil {
			return nil, wrapError(ArithmeticOverflow, err, "quantity arithmetic failed")
		}
		return Quantity{Value: trimDecimal(e.ec.decimal, &result), Unit: unit}, nil
	}
	return nil, newError(TypeError, "operator %s is not defined for quantities", op)
}

func combineUnits(a, b, sep string) string {
	switch {
	case unitKey(b) == "1":
		return a
	case unitKey(a) == "1" && sep == ".":
		return b
	}
	return a + sep + b
}

package fhirpath

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// converter converts a single unwrapped value. ok is false when the value
// can not be converted.
type converter func(ctx context.Context, c *Call, v Value) (Value, bool, error)

var (
	integerText = regexp.MustCompile(`^[+-]?\d+$`)
	decimalText = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
)

var (
	trueStrings  = map[string]bool{"true": true, "t": true, "yes": true, "y": true, "1": true, "1.0": true}
	falseStrings = map[string]bool{"false": true, "f": true, "no": true, "n": true, "0": true, "0.0": true}
)

// conversion registers toX and convertsToX for a converter.
func conversion(name string, arity int, convert converter) Functions {
	to := func(ctx context.Context, c *Call) (Value, error) {
		if err := c.arityRange(0, arity); err != nil {
			return nil, err
		}
		v, ok, err := c.singleInput()
		if err != nil || !ok {
			return Empty{}, err
		}
		result, ok, err := convert(ctx, c, v)
		if err != nil || !ok {
			return Empty{}, err
		}
		return result, nil
	}
	convertsTo := func(ctx context.Context, c *Call) (Value, error) {
		if err := c.arityRange(0, arity); err != nil {
			return nil, err
		}
		v, ok, err := c.singleInput()
		if err != nil || !ok {
			return Empty{}, err
		}
		_, ok, err = convert(ctx, c, v)
		if err != nil {
			return nil, err
		}
		return Boolean{Value: ok}, nil
	}
	return Functions{
		"to" + name:         to,
		"convertsTo" + name: convertsTo,
	}
}

func toBoolean(_ context.Context, _ *Call, v Value) (Value, bool, error) {
	switch x := v.(type) {
	case Boolean:
		return Boolean{Value: x.Value}, true, nil
	case Integer, Integer64:
		switch intValue(x) {
		case 1:
			return Boolean{Value: true}, true, nil
		case 0:
			return Boolean{Value: false}, true, nil
		}
	case Decimal:
		switch {
		case x.Value.Cmp(decimalFromInt(1)) == 0:
			return Boolean{Value: true}, true, nil
		case x.Value.IsZero():
			return Boolean{Value: false}, true, nil
		}
	case String:
		s := strings.ToLower(x.Value)
		switch {
		case trueStrings[s]:
			return Boolean{Value: true}, true, nil
		case falseStrings[s]:
			return Boolean{Value: false}, true, nil
		}
	}
	return nil, false, nil
}

func toInteger(_ context.Context, _ *Call, v Value) (Value, bool, error) {
	switch x := v.(type) {
	case Integer:
		return Integer{Value: x.Value}, true, nil
	case Integer64:
		return Integer{Value: x.Value}, true, nil
	case Boolean:
		if x.Value {
			return Integer{Value: 1}, true, nil
		}
		return Integer{Value: 0}, true, nil
	case String:
		if !integerText.MatchString(x.Value) {
			return nil, false, nil
		}
		i, err := strconv.ParseInt(x.Value, 10, 64)
		if err != nil {
			return nil, false, nil
		}
		return Integer{Value: i}, true, nil
	}
	return nil, false, nil
}

func toLong(ctx context.Context, c *Call, v Value) (Value, bool, error) {
	i, ok, err := toInteger(ctx, c, v)
	if err != nil || !ok {
		return nil, ok, err
	}
	return Integer64{Value: i.(Integer).Value}, true, nil
}

func toDecimalValue(_ context.Context, _ *Call, v Value) (Value, bool, error) {
	switch x := v.(type) {
	case Integer, Integer64:
		return Decimal{Value: decimalFromInt(intValue(x))}, true, nil
	case Decimal:
		return Decimal{Value: x.Value}, true, nil
	case Boolean:
		d := apd.New(0, -1)
		if x.Value {
			d = apd.New(10, -1)
		}
		return Decimal{Value: d}, true, nil
	case String:
		if !decimalText.MatchString(x.Value) {
			return nil, false, nil
		}
		d, _, err := apd.NewFromString(x.Value)
		if err != nil {
			return nil, false, nil
		}
		return Decimal{Value: d}, true, nil
	}
	return nil, false, nil
}

func toStringValue(_ context.Context, _ *Call, v Value) (Value, bool, error) {
	s, ok := stringify(v)
	if !ok {
		return nil, false, nil
	}
	return String{Value: s}, true, nil
}

func toDate(_ context.Context, _ *Call, v Value) (Value, bool, error) {
	switch x := v.(type) {
	case Date:
		return Date{Value: x.Value, Precision: x.Precision}, true, nil
	case DateTime:
		return x.ToDate(), true, nil
	case String:
		if d, err := ParseDate(x.Value); err == nil {
			return d, true, nil
		}
		if dt, err := ParseDateTime(x.Value); err == nil {
			return dt.ToDate(), true, nil
		}
	}
	return nil, false, nil
}

func toDateTime(_ context.Context, _ *Call, v Value) (Value, bool, error) {
	switch x := v.(type) {
	case DateTime:
		return DateTime{Value: x.Value, Precision: x.Precision, HasTimeZone: x.HasTimeZone}, true, nil
	case Date:
		return x.ToDateTime(), true, nil
	case String:
		if dt, err := ParseDateTime(x.Value); err == nil {
			return dt, true, nil
		}
	}
	return nil, false, nil
}

func toTime(_ context.Context, _ *Call, v Value) (Value, bool, error) {
	switch x := v.(type) {
	case Time:
		return Time{Value: x.Value, Precision: x.Precision}, true, nil
	case String:
		if t, err := ParseTime(x.Value); err == nil {
			return t, true, nil
		}
	}
	return nil, false, nil
}

func toQuantity(ctx context.Context, c *Call, v Value) (Value, bool, error) {
	var q Quantity
	switch x := v.(type) {
	case Integer, Integer64, Decimal:
		d, _ := toDecimal(x)
		q = Quantity{Value: d, Unit: "1"}
	case Boolean:
		d, _, _ := toDecimalValue(ctx, c, x)
		q = Quantity{Value: d.(Decimal).Value, Unit: "1"}
	case String:
		parsed, ok := ParseQuantity(x.Value)
		if !ok {
			return nil, false, nil
		}
		q = parsed
	default:
		converted, ok := asQuantity(x)
		if !ok {
			return nil, false, nil
		}
		q = converted
	}
	if c.NumArgs() == 0 {
		return q, true, nil
	}
	unit, ok, err := c.stringArg(ctx, 0)
	if err != nil || !ok {
		return nil, false, err
	}
	value, ok := convertQuantity(c.ec.decimal, q, unit)
	if !ok {
		return nil, false, nil
	}
	return Quantity{Value: value, Unit: unit}, true, nil
}

func init() {
	for _, fns := range []Functions{
		conversion("Boolean", 0, toBoolean),
		conversion("Integer", 0, toInteger),
		conversion("Long", 0, toLong),
		conversion("Decimal", 0, toDecimalValue),
		conversion("String", 0, toStringValue),
		conversion("Date", 0, toDate),
		conversion("DateTime", 0, toDateTime),
		conversion("Time", 0, toTime),
		conversion("Quantity", 1, toQuantity),
	} {
		registerFunctions(fns)
	}
}

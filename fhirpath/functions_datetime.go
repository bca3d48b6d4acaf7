package fhirpath

import (
	"context"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// temporalInput returns the input as a Date, DateTime or Time. Strings
// are parsed so that untyped FHIR date elements work as well.
func (c *Call) temporalInput() (Value, bool, error) {
	v, ok, err := c.singleInput()
	if err != nil || !ok {
		return nil, ok, err
	}
	switch x := v.(type) {
	case Date, DateTime, Time:
		return x, true, nil
	case String:
		if d, err := ParseDate(x.Value); err == nil {
			return d, true, nil
		}
		if dt, err := ParseDateTime(x.Value); err == nil {
			return dt, true, nil
		}
		if t, err := ParseTime(x.Value); err == nil {
			return t, true, nil
		}
	}
	return nil, false, newError(TypeError, "%s() expects a Date, DateTime or Time, got %s", c.Name, TypeOf(v))
}

// temporalLevel returns the moment and precision level of a temporal value.
func temporalLevel(v Value) (time.Time, int) {
	switch x := v.(type) {
	case Date:
		return x.Value, datePrecisionLevel(x.Precision)
	case DateTime:
		return x.Value, dateTimePrecisionLevel(x.Precision)
	case Time:
		return x.Value, timePrecisionLevel(x.Precision)
	}
	return time.Time{}, -1
}

// componentFunction builds yearOf() and friends. dates and times tell
// whether Date and Time inputs are accepted. The result is Empty when the
// input is less precise than level.
func componentFunction(level int, dates, times bool) Function {
	return func(ctx context.Context, c *Call) (Value, error) {
		if err := c.arity(0); err != nil {
			return nil, err
		}
		v, ok, err := c.temporalInput()
		if err != nil || !ok {
			return Empty{}, err
		}
		switch v.(type) {
		case Date:
			if !dates {
				return nil, newError(TypeError, "%s() is not defined for Date", c.Name)
			}
		case Time:
			if !times {
				return nil, newError(TypeError, "%s() is not defined for Time", c.Name)
			}
		}
		t, have := temporalLevel(v)
		if have < level {
			return Empty{}, nil
		}
		switch level {
		case levelSecond:
			return Integer{Value: int64(t.Second())}, nil
		case levelMillisecond:
			return Integer{Value: int64(t.Nanosecond() / int(time.Millisecond))}, nil
		}
		return Integer{Value: int64(component(t, level))}, nil
	}
}

// unitArg reads a calendar unit argument such as 'days' or 'mo'.
func (c *Call) unitArg(ctx context.Context, i int) (string, int, bool, error) {
	s, ok, err := c.stringArg(ctx, i)
	if err != nil || !ok {
		return "", 0, ok, err
	}
	unit := normalizeTimeUnit(unitKey(s))
	switch unit {
	case "a":
		unit = UnitYear
	case "mo":
		unit = UnitMonth
	}
	level, ok := timeUnitLevel(unit)
	if !ok {
		return "", 0, false, newError(InvalidArgument, "%s() does not support unit %q", c.Name, s)
	}
	return unit, level, true, nil
}

// temporalSpan reads the input and first argument of duration() and
// difference(). ok is false when either side is empty or too imprecise
// for the unit.
func (c *Call) temporalSpan(ctx context.Context) (start, end time.Time, unit string, ok bool, err error) {
	if err := c.arity(2); err != nil {
		return start, end, "", false, err
	}
	from, ok, err := c.temporalInput()
	if err != nil || !ok {
		return start, end, "", false, err
	}
	to, ok, err := c.singleArg(ctx, 0)
	if err != nil || !ok {
		return start, end, "", false, err
	}
	if s, isString := to.(String); isString {
		if coerced, parsed := coerceTemporal(s, from); parsed {
			to = coerced
		}
	}
	if _, isDate := from.(Date); isDate {
		if dt, isDateTime := to.(DateTime); isDateTime {
			to = dt.ToDate()
		}
	}
	unit, level, ok, err := c.unitArg(ctx, 1)
	if err != nil || !ok {
		return start, end, "", false, err
	}
	switch from.(type) {
	case Date:
		if level > levelDay {
			return start, end, "", false, newError(InvalidArgument, "%s() unit %q is not defined for Date", c.Name, unit)
		}
	case Time:
		if level < levelHour {
			return start, end, "", false, newError(InvalidArgument, "%s() unit %q is not defined for Time", c.Name, unit)
		}
	}
	if !sameTemporalKind(from, to) {
		return start, end, "", false, newError(TypeError, "%s() expects matching types, got %s and %s", c.Name, TypeOf(from), TypeOf(to))
	}
	start, fromLevel := temporalLevel(from)
	end, toLevel := temporalLevel(to)
	if min(fromLevel, toLevel) < level {
		return start, end, unit, false, nil
	}
	return start, end, unit, true, nil
}

func sameTemporalKind(a, b Value) bool {
	switch a.(type) {
	case Date:
		_, ok := b.(Date)
		return ok
	case DateTime:
		_, ok := b.(DateTime)
		return ok
	case Time:
		_, ok := b.(Time)
		return ok
	}
	return false
}

// wholePeriods counts the complete units between start and end.
func wholePeriods(start, end time.Time, unit string) int64 {
	sign := int64(1)
	if end.Before(start) {
		start, end = end, start
		sign = -1
	}
	var count int64
	switch unit {
	case UnitYear, UnitMonth:
		months := int64(end.Year()-start.Year())*12 + int64(end.Month()-start.Month())
		if months > 0 && addMonths(start, months).After(end) {
			months--
		}
		count = months
		if unit == UnitYear {
			count = months / 12
		}
	default:
		count = (end.UnixMilli() - start.UnixMilli()) / millisPerUnit[unit]
	}
	return count * sign
}

// boundariesCrossed counts the unit boundaries between start and end.
// Weeks start on Sunday.
func boundariesCrossed(start, end time.Time, unit string) int64 {
	switch unit {
	case UnitYear:
		return int64(end.Year() - start.Year())
	case UnitMonth:
		return int64(end.Year()-start.Year())*12 + int64(end.Month()-start.Month())
	case UnitWeek:
		s, _ := rangeEndpoints(start, levelDay)
		e, _ := rangeEndpoints(end, levelDay)
		s = s.AddDate(0, 0, -int(s.Weekday()))
		e = e.AddDate(0, 0, -int(e.Weekday()))
		return civilDays(s, e) / 7
	case UnitDay:
		return civilDays(start, end)
	}
	level, _ := timeUnitLevel(unit)
	s, _ := rangeEndpoints(start, level)
	e, _ := rangeEndpoints(end, level)
	return (e.UnixMilli() - s.UnixMilli()) / millisPerUnit[unit]
}

// civilDays counts calendar days between the dates of start and end,
// ignoring their clocks and zones.
func civilDays(start, end time.Time) int64 {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return (e.Unix() - s.Unix()) / 86400
}

// boundary builds lowBoundary() and highBoundary().
func boundary(upper bool) Function {
	return func(ctx context.Context, c *Call) (Value, error) {
		if err := c.arityRange(0, 1); err != nil {
			return nil, err
		}
		v, ok, err := c.singleInput()
		if err != nil || !ok {
			return Empty{}, err
		}
		digits := -1
		if c.NumArgs() == 1 {
			p, ok, err := c.integerArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			digits = int(p)
		}
		if s, isString := v.(String); isString {
			if parsed, ok := parseTemporalString(s.Value); ok {
				v = parsed
			}
		}
		switch x := v.(type) {
		case Integer, Integer64, Decimal:
			d, _ := toDecimal(x)
			return decimalBoundaryValue(c, d, digits, upper, nil)
		case Date:
			if digits < 0 {
				digits = maxDateDigits
			}
			if b, ok := x.Boundary(digits, upper); ok {
				return b, nil
			}
			return Empty{}, nil
		case DateTime:
			if digits < 0 {
				digits = maxDateTimeDigits
			}
			if b, ok := x.Boundary(digits, upper); ok {
				return b, nil
			}
			return Empty{}, nil
		case Time:
			if digits < 0 {
				digits = maxTimeDigits
			}
			if b, ok := x.Boundary(digits, upper); ok {
				return b, nil
			}
			return Empty{}, nil
		}
		if q, isQuantity := asQuantity(v); isQuantity {
			return decimalBoundaryValue(c, q.Value, digits, upper, &q)
		}
		return nil, newError(TypeError, "%s() is not defined for %s", c.Name, TypeOf(v))
	}
}

// maxDecimalBoundaryDigits is the largest precision accepted by the
// boundary functions for decimals.
const maxDecimalBoundaryDigits = 28

func decimalBoundaryValue(c *Call, d *apd.Decimal, digits int, upper bool, q *Quantity) (Value, error) {
	if digits < 0 {
		digits = 8
	}
	if digits > maxDecimalBoundaryDigits {
		return Empty{}, nil
	}
	b, err := decimalBoundary(c.ec.decimal, d, digits, upper)
	if err != nil {
		return nil, wrapError(ArithmeticOverflow, err, "%s() failed", c.Name)
	}
	if q != nil {
		return Quantity{Value: b, Unit: q.Unit}, nil
	}
	return Decimal{Value: b}, nil
}

func parseTemporalString(s string) (Value, bool) {
	if d, err := ParseDate(s); err == nil {
		return d, true
	}
	if dt, err := ParseDateTime(s); err == nil {
		return dt, true
	}
	if t, err := ParseTime(s); err == nil {
		return t, true
	}
	return nil, false
}

func init() {
	registerFunctions(Functions{
		"now": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			now := buildDateTimeFromTime(c.ec.currentTime(), DateTimePrecisionMillisecond)
			now.HasTimeZone = true
			return now, nil
		},
		"today": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			return buildDateFromTime(c.ec.currentTime(), DatePrecisionFull), nil
		},
		"timeOfDay": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			return buildTimeFromTime(c.ec.currentTime(), TimePrecisionMillisecond), nil
		},
		"yearOf":        componentFunction(levelYear, true, false),
		"monthOf":       componentFunction(levelMonth, true, false),
		"dayOf":         componentFunction(levelDay, true, false),
		"hourOf":        componentFunction(levelHour, false, true),
		"minuteOf":      componentFunction(levelMinute, false, true),
		"secondOf":      componentFunction(levelSecond, false, true),
		"millisecondOf": componentFunction(levelMillisecond, false, true),
		"timezoneOffsetOf": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			v, ok, err := c.temporalInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			dt, isDateTime := v.(DateTime)
			if !isDateTime {
				return nil, newError(TypeError, "timezoneOffsetOf() expects a DateTime, got %s", TypeOf(v))
			}
			if !dt.HasTimeZone {
				return Empty{}, nil
			}
			_, offset := dt.Value.Zone()
			var hours apd.Decimal
			if _, err := c.ec.decimal.Quo(&hours, decimalFromInt(int64(offset)), decimalFromInt(3600)); err != nil {
				return nil, wrapError(ArithmeticOverflow, err, "timezoneOffsetOf() failed")
			}
			if _, err := c.ec.decimal.Quantize(&hours, &hours, -1); err != nil {
				return nil, wrapError(ArithmeticOverflow, err, "timezoneOffsetOf() failed")
			}
			return Decimal{Value: &hours}, nil
		},
		"dateOf": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			v, ok, err := c.temporalInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			switch x := v.(type) {
			case Date:
				return Date{Value: x.Value, Precision: x.Precision}, nil
			case DateTime:
				return x.ToDate(), nil
			}
			return nil, newError(TypeError, "dateOf() expects a Date or DateTime, got %s", TypeOf(v))
		},
		"timeOf": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			v, ok, err := c.temporalInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			dt, isDateTime := v.(DateTime)
			if !isDateTime {
				return nil, newError(TypeError, "timeOf() expects a DateTime, got %s", TypeOf(v))
			}
			if t, ok := dt.TimeOfDay(); ok {
				return t, nil
			}
			return Empty{}, nil
		},
		"lowBoundary":  boundary(false),
		"highBoundary": boundary(true),
		"precision": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			v, ok, err := c.singleInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			if s, isString := v.(String); isString {
				if parsed, ok := parseTemporalString(s.Value); ok {
					v = parsed
				}
			}
			switch x := v.(type) {
			case Integer, Integer64:
				return Integer{Value: 0}, nil
			case Decimal:
				return Integer{Value: int64(decimalScale(x.Value))}, nil
			case Date:
				return Integer{Value: int64(x.PrecisionDigits())}, nil
			case DateTime:
				return Integer{Value: int64(x.PrecisionDigits())}, nil
			case Time:
				return Integer{Value: int64(x.PrecisionDigits())}, nil
			}
			if q, isQuantity := asQuantity(v); isQuantity {
				return Integer{Value: int64(decimalScale(q.Value))}, nil
			}
			return nil, newError(TypeError, "precision() is not defined for %s", TypeOf(v))
		},
		"comparable": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			v, ok, err := c.singleInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			other, ok, err := c.singleArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			a, isQuantity := asQuantity(v)
			if !isQuantity {
				return nil, newError(TypeError, "comparable() expects a Quantity, got %s", TypeOf(v))
			}
			b, isQuantity := asQuantity(other)
			if !isQuantity {
				return nil, newError(TypeError, "comparable() expects a Quantity argument, got %s", TypeOf(other))
			}
			_, comparable := quantitiesEqual(a, b)
			return Boolean{Value: comparable}, nil
		},
		"duration": func(ctx context.Context, c *Call) (Value, error) {
			start, end, unit, ok, err := c.temporalSpan(ctx)
			if err != nil || !ok {
				return Empty{}, err
			}
			return Integer{Value: wholePeriods(start, end, unit)}, nil
		},
		"difference": func(ctx context.Context, c *Call) (Value, error) {
			start, end, unit, ok, err := c.temporalSpan(ctx)
			if err != nil || !ok {
				return Empty{}, err
			}
			return Integer{Value: boundariesCrossed(start, end, unit)}, nil
		},
	})
}

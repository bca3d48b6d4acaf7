package fhirpath

import (
	"context"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// numericInput returns the input of a math function as a decimal. isInt
// reports an Integer input, unit is set for quantities.
func (c *Call) numericInput() (d *apd.Decimal, isInt bool, q *Quantity, ok bool, err error) {
	v, ok, err := c.singleInput()
	if err != nil || !ok {
		return nil, false, nil, ok, err
	}
	if quantity, isQuantity := asQuantity(v); isQuantity {
		return quantity.Value, false, &quantity, true, nil
	}
	switch n := v.(type) {
	case Integer, Integer64:
		return decimalFromInt(intValue(n)), true, nil, true, nil
	case Decimal:
		return n.Value, false, nil, true, nil
	}
	return nil, false, nil, false, newError(TypeError, "%s() expects a number, got %s", c.Name, TypeOf(v))
}

// rounding builds ceiling, floor and truncate.
func rounding(round func(ctx *apd.Context, d, x *apd.Decimal) (apd.Condition, error)) Function {
	return func(ctx context.Context, c *Call) (Value, error) {
		if err := c.arity(0); err != nil {
			return nil, err
		}
		x, isInt, q, ok, err := c.numericInput()
		if err != nil || !ok {
			return Empty{}, err
		}
		if isInt {
			return c.Input, nil
		}
		var d apd.Decimal
		if _, err := round(c.ec.decimal, &d, x); err != nil {
			return nil, wrapError(ArithmeticOverflow, err, "%s() failed", c.Name)
		}
		if q != nil {
			return Quantity{Value: &d, Unit: q.Unit}, nil
		}
		i, err := d.Int64()
		if err != nil {
			return nil, wrapError(ArithmeticOverflow, err, "%s() result does not fit an Integer", c.Name)
		}
		return Integer{Value: i}, nil
	}
}

func truncateDecimal(_ *apd.Context, d, x *apd.Decimal) (apd.Condition, error) {
	var frac apd.Decimal
	x.Modf(d, &frac)
	return 0, nil
}

// transcendental builds exp, ln and sqrt. Results outside the domain are
// Empty.
func transcendental(fn func(ctx *apd.Context, d, x *apd.Decimal) (apd.Condition, error), domain func(x *apd.Decimal) bool) Function {
	return func(ctx context.Context, c *Call) (Value, error) {
		if err := c.arity(0); err != nil {
			return nil, err
		}
		x, _, q, ok, err := c.numericInput()
		if err != nil || !ok {
			return Empty{}, err
		}
		if q != nil {
			return nil, newError(TypeError, "%s() is not defined for quantities", c.Name)
		}
		if domain != nil && !domain(x) {
			return Empty{}, nil
		}
		var d apd.Decimal
		if _, err := fn(c.ec.decimal, &d, x); err != nil {
			return nil, wrapError(ArithmeticOverflow, err, "%s() failed", c.Name)
		}
		return reduceDecimal(&d), nil
	}
}

func positive(x *apd.Decimal) bool    { return x.Sign() > 0 }
func nonNegative(x *apd.Decimal) bool { return x.Sign() >= 0 }

func init() {
	registerFunctions(Functions{
		"abs": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(0); err != nil {
				return nil, err
			}
			v, ok, err := c.singleInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			switch n := v.(type) {
			case Integer:
				if n.Value == math.MinInt64 {
					return nil, newError(ArithmeticOverflow, "abs(%d) overflows", n.Value)
				}
				return Integer{Value: absInt64(n.Value)}, nil
			case Integer64:
				if n.Value == math.MinInt64 {
					return nil, newError(ArithmeticOverflow, "abs(%d) overflows", n.Value)
				}
				return Integer64{Value: absInt64(n.Value)}, nil
			case Decimal:
				var d apd.Decimal
				d.Abs(n.Value)
				return Decimal{Value: &d}, nil
			}
			if q, isQuantity := asQuantity(v); isQuantity {
				var d apd.Decimal
				d.Abs(q.Value)
				return Quantity{Value: &d, Unit: q.Unit}, nil
			}
			return nil, newError(TypeError, "abs() expects a number, got %s", TypeOf(v))
		},
		"ceiling":  rounding((*apd.Context).Ceil),
		"floor":    rounding((*apd.Context).Floor),
		"truncate": rounding(truncateDecimal),
		"round": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arityRange(0, 1); err != nil {
				return nil, err
			}
			x, _, q, ok, err := c.numericInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			var precision int64
			if c.NumArgs() == 1 {
				p, ok, err := c.integerArg(ctx, 0)
				if err != nil || !ok {
					return Empty{}, err
				}
				if p < 0 {
					return nil, newError(InvalidArgument, "round() precision must not be negative")
				}
				precision = p
			}
			roundCtx := *c.ec.decimal
			roundCtx.Rounding = apd.RoundHalfUp
			var d apd.Decimal
			if _, err := roundCtx.Quantize(&d, x, -int32(precision)); err != nil {
				return nil, wrapError(ArithmeticOverflow, err, "round() failed")
			}
			if q != nil {
				return Quantity{Value: &d, Unit: q.Unit}, nil
			}
			return reduceDecimal(&d), nil
		},
		"exp":  transcendental((*apd.Context).Exp, nil),
		"ln":   transcendental((*apd.Context).Ln, positive),
		"sqrt": transcendental((*apd.Context).Sqrt, nonNegative),
		"log": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			x, _, q, ok, err := c.numericInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			if q != nil {
				return nil, newError(TypeError, "log() is not defined for quantities")
			}
			baseValue, ok, err := c.singleArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			base, isNum := toDecimal(baseValue)
			if !isNum {
				return nil, newError(TypeError, "log() expects a numeric base, got %s", TypeOf(baseValue))
			}
			if !positive(x) || !positive(base) || base.Cmp(decimalFromInt(1)) == 0 {
				return Empty{}, nil
			}
			var lnX, lnBase, d apd.Decimal
			if _, err := c.ec.decimal.Ln(&lnX, x); err != nil {
				return nil, wrapError(ArithmeticOverflow, err, "log() failed")
			}
			if _, err := c.ec.decimal.Ln(&lnBase, base); err != nil {
				return nil, wrapError(ArithmeticOverflow, err, "log() failed")
			}
			if _, err := c.ec.decimal.Quo(&d, &lnX, &lnBase); err != nil {
				return nil, wrapError(ArithmeticOverflow, err, "log() failed")
			}
			return reduceDecimal(&d), nil
		},
		"power": func(ctx context.Context, c *Call) (Value, error) {
			if err := c.arity(1); err != nil {
				return nil, err
			}
			v, ok, err := c.singleInput()
			if err != nil || !ok {
				return Empty{}, err
			}
			exponentValue, ok, err := c.singleArg(ctx, 0)
			if err != nil || !ok {
				return Empty{}, err
			}
			if !isNumber(v) || !isNumber(exponentValue) {
				return nil, newError(TypeError, "power() expects numbers, got %s and %s", TypeOf(v), TypeOf(exponentValue))
			}
			if base, isInt := v.(Integer); isInt {
				if exponent, isInt := exponentValue.(Integer); isInt && exponent.Value >= 0 {
					result, ok := powInt64(base.Value, exponent.Value)
					if !ok {
						return nil, newError(ArithmeticOverflow, "%d.power(%d) overflows", base.Value, exponent.Value)
					}
					return Integer{Value: result}, nil
				}
			}
			x, _ := toDecimal(v)
			y, _ := toDecimal(exponentValue)
			if x.Sign() < 0 {
				if _, integral := integralDecimal(y); !integral {
					return Empty{}, nil
				}
			}
			var d apd.Decimal
			if _, err := c.ec.decimal.Pow(&d, x, y); err != nil {
				return Empty{}, nil
			}
			return reduceDecimal(&d), nil
		},
	})
}

func powInt64(base, exponent int64) (int64, bool) {
	switch base {
	case 0, 1:
		if exponent == 0 {
			return 1, true
		}
		return base, true
	case -1:
		if exponent%2 == 0 {
			return 1, true
		}
		return -1, true
	}
	result := int64(1)
	for range exponent {
		var ok bool
		if result, ok = mulInt64(result, base); !ok {
			return 0, false
		}
	}
	return result, true
}

package fhirpath

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/apd/v3"
)

// DefaultDecimalPrecision keeps 34 significant digits (roughly Decimal128),
// well above the 18 digits FHIR requires for decimal values.
const DefaultDecimalPrecision uint32 = 34

var defaultAPDContext = apd.BaseContext.WithPrecision(DefaultDecimalPrecision)

// equivalenceTolerance is the largest difference at which two decimals are
// still equivalent.
var equivalenceTolerance = apd.New(1, -2)

func decimalFromInt(i int64) *apd.Decimal {
	return apd.New(i, 0)
}

// toDecimal widens Integer, Integer64 and Decimal values.
func toDecimal(v Value) (*apd.Decimal, bool) {
	switch n := v.(type) {
	case Integer:
		return decimalFromInt(n.Value), true
	case Integer64:
		return decimalFromInt(n.Value), true
	case Decimal:
		return n.Value, true
	}
	return nil, false
}

func isNumber(v Value) bool {
	_, ok := toDecimal(v)
	return ok
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(absInt64(a)), uint64(absInt64(b)))
	if hi != 0 || lo > math.MaxInt64 {
		if lo == 1<<63 && hi == 0 && (a < 0) != (b < 0) {
			return math.MinInt64, true
		}
		return 0, false
	}
	c := int64(lo)
	if (a < 0) != (b < 0) {
		c = -c
	}
	return c, true
}

func absInt64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// integralDecimal returns d as an int64 when it has no fractional part.
func integralDecimal(d *apd.Decimal) (int64, bool) {
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	if !frac.IsZero() {
		return 0, false
	}
	i, err := integ.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// reduceDecimal converts a whole decimal result back to Integer when it fits.
func reduceDecimal(d *apd.Decimal) Value {
	if i, ok := integralDecimal(d); ok {
		return Integer{Value: i}
	}
	return Decimal{Value: d}
}

// trimDecimal drops the trailing zeros a division leaves behind, keeping
// whole results out of exponent notation.
func trimDecimal(ctx *apd.Context, d *apd.Decimal) *apd.Decimal {
	var reduced apd.Decimal
	reduced.Reduce(d)
	if reduced.Exponent > 0 {
		if _, err := ctx.Quantize(&reduced, &reduced, 0); err != nil {
			return d
		}
	}
	return &reduced
}

// decimalsEquivalent reports whether a and b differ by less than the
// equivalence tolerance.
func decimalsEquivalent(ctx *apd.Context, a, b *apd.Decimal) bool {
	var diff apd.Decimal
	if _, err := ctx.Sub(&diff, a, b); err != nil {
		return false
	}
	diff.Abs(&diff)
	return diff.Cmp(equivalenceTolerance) < 0
}

// decimalScale is the number of digits after the decimal point.
func decimalScale(d *apd.Decimal) int {
	if d.Exponent < 0 {
		return int(-d.Exponent)
	}
	return 0
}

// decimalBoundary returns the lowest (upper false) or highest value that
// rounds to d at its own precision, expressed with digits decimal places.
func decimalBoundary(ctx *apd.Context, d *apd.Decimal, digits int, upper bool) (*apd.Decimal, error) {
	calcCtx := *ctx
	calcCtx.Rounding = apd.RoundFloor
	if upper {
		calcCtx.Rounding = apd.RoundCeiling
	}
	scale := decimalScale(d)
	if minPrecision := uint32(d.NumDigits()) + uint32(scale+digits+2); calcCtx.Precision < minPrecision {
		calcCtx.Precision = minPrecision
	}

	var halfWidth apd.Decimal
	halfWidth.SetFinite(5, -1-int32(scale))

	var result apd.Decimal
	var err error
	if upper {
		_, err = calcCtx.Add(&result, d, &halfWidth)
	} else {
		_, err = calcCtx.Sub(&result, d, &halfWidth)
	}
	if err != nil {
		return nil, err
	}

	var formatted apd.Decimal
	if _, err := calcCtx.Quantize(&formatted, &result, -int32(digits)); err != nil {
		return nil, err
	}
	return &formatted, nil
}

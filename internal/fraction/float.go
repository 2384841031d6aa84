package fraction

import (
	"fmt"
	"math"
)

// maxDoublings bounds the mantissa scaling in FromFloat64.
const maxDoublings = 300

// FromFloat64 returns the exact value of v as a fraction. zero selects the
// component configuration. Infinities and NaN fail.
func FromFloat64[C Component[C]](zero C, v float64) (Fraction[C], error) {
	switch {
	case math.IsInf(v, 0):
		return Fraction[C]{}, ErrInfinity
	case math.IsNaN(v):
		return Fraction[C]{}, ErrNaN
	}
	mantissa, exp := math.Frexp(v)
	for i := 0; i < maxDoublings && mantissa != math.Floor(mantissa); i++ {
		mantissa *= 2
		exp--
	}
	num := zero.FromInt64(int64(mantissa))
	den := zero.FromInt64(1)
	var err error
	if exp >= 0 {
		num, err = num.Lsh(exp)
	} else {
		den, err = den.Lsh(-exp)
	}
	if err != nil {
		return Fraction[C]{}, fmt.Errorf("fraction from %v: %w", v, err)
	}
	return normalize(num, den), nil
}

// Float64 returns f correctly rounded to float64. It fails with
// ErrFloatOverflow when f is beyond the float64 range.
func (f Fraction[C]) Float64() (float64, error) {
	return f.num.DivAsFloat64(f.denom())
}

package digits

import (
	"math"
	"math/bits"
)

const (
	mantissaBits = 53
	minExponent  = -1022
	maxExponent  = 1023
	// extra quotient bits kept for rounding
	guardBits = 2
)

// DivAsFloat64 returns a / b correctly rounded to the nearest float64 (ties
// to even). It fails when b is zero or the quotient overflows float64.
func (f *Family) DivAsFloat64(a, b Number) (float64, error) {
	if b.Sign == 0 {
		return 0, ErrDivisionByZero
	}
	if a.Sign == 0 {
		return 0, nil
	}
	neg := a.Sign*b.Sign < 0
	diff := f.BitLength(a.Digits) - f.BitLength(b.Digits)
	// floor(log2(|a/b|)) is diff or diff-1.
	if diff > maxExponent+1 {
		return 0, ErrFloatOverflow
	}
	if diff < minExponent-mantissaBits-1 {
		return signedZero(neg), nil
	}

	// Scale so the quotient has mantissaBits+guardBits or one more bits.
	scale := mantissaBits + guardBits - diff
	num, den := a.Digits, b.Digits
	var err error
	if scale >= 0 {
		num, err = f.shlMagnitude(num, uint64(scale))
	} else {
		den, err = f.shlMagnitude(den, uint64(-scale))
	}
	if err != nil {
		return 0, err
	}
	qd, rd := f.divRemMagnitudes(num, den)
	q, _ := f.ToUint64(qd)
	sticky := !IsZero(rd)

	qLen := bits.Len64(q)
	exp := qLen - 1 - scale
	precision := mantissaBits
	if exp < minExponent {
		precision -= minExponent - exp
	}
	if precision < 0 {
		return signedZero(neg), nil
	}
	extra := qLen - precision
	low := q & (uint64(1)<<extra - 1)
	q >>= extra
	half := uint64(1) << (extra - 1)
	if low > half || (low == half && (sticky || q&1 == 1)) {
		q++
	}
	result := math.Ldexp(float64(q), extra-scale)
	if math.IsInf(result, 0) {
		return 0, ErrFloatOverflow
	}
	if neg {
		result = -result
	}
	return result, nil
}

func signedZero(neg bool) float64 {
	if neg {
		return math.Copysign(0, -1)
	}
	return 0
}

package bignum

import (
	"rithm/internal/digits"
)

// Add returns x + y.
func (x BigInt) Add(y BigInt) BigInt {
	return x.withNumber(x.family().Add(x.number(), x.operand(y)))
}

// Sub returns x - y.
func (x BigInt) Sub(y BigInt) BigInt {
	return x.withNumber(x.family().Sub(x.number(), x.operand(y)))
}

// Mul returns x * y.
func (x BigInt) Mul(y BigInt) BigInt {
	return x.withNumber(x.family().Mul(x.number(), x.operand(y)))
}

// Neg returns -x.
func (x BigInt) Neg() BigInt { return x.withNumber(digits.Neg(x.number())) }

// Abs returns |x|.
func (x BigInt) Abs() BigInt {
	if x.sign >= 0 {
		return x
	}
	return x.Neg()
}

// AddAssign sets x to x + y.
func (x *BigInt) AddAssign(y BigInt) { *x = x.Add(y) }

// SubAssign sets x to x - y.
func (x *BigInt) SubAssign(y BigInt) { *x = x.Sub(y) }

// MulAssign sets x to x * y.
func (x *BigInt) MulAssign(y BigInt) { *x = x.Mul(y) }

// CheckedDivRem returns the truncated quotient and the remainder, which has
// the sign of x. ok is false when y is zero.
func (x BigInt) CheckedDivRem(y BigInt) (q, r BigInt, ok bool) {
	qn, rn, ok := x.family().DivRem(x.number(), x.operand(y))
	if !ok {
		return BigInt{}, BigInt{}, false
	}
	return x.withNumber(qn), x.withNumber(rn), true
}

// CheckedDiv returns x / y truncated toward zero.
func (x BigInt) CheckedDiv(y BigInt) (BigInt, bool) {
	q, _, ok := x.CheckedDivRem(y)
	return q, ok
}

// CheckedRem returns x - y*trunc(x/y).
func (x BigInt) CheckedRem(y BigInt) (BigInt, bool) {
	_, r, ok := x.CheckedDivRem(y)
	return r, ok
}

// CheckedDivRemEuclid returns q and r with x == q*y + r and 0 <= r < |y|.
func (x BigInt) CheckedDivRemEuclid(y BigInt) (q, r BigInt, ok bool) {
	qn, rn, ok := x.family().DivRemEuclid(x.number(), x.operand(y))
	if !ok {
		return BigInt{}, BigInt{}, false
	}
	return x.withNumber(qn), x.withNumber(rn), true
}

// CheckedDivEuclid returns the Euclidean quotient.
func (x BigInt) CheckedDivEuclid(y BigInt) (BigInt, bool) {
	q, _, ok := x.CheckedDivRemEuclid(y)
	return q, ok
}

// CheckedRemEuclid returns the Euclidean remainder, in [0, |y|).
func (x BigInt) CheckedRemEuclid(y BigInt) (BigInt, bool) {
	rn, ok := x.family().RemEuclid(x.number(), x.operand(y))
	if !ok {
		return BigInt{}, false
	}
	return x.withNumber(rn), true
}

// DivRem is CheckedDivRem that panics when y is zero.
func (x BigInt) DivRem(y BigInt) (q, r BigInt) {
	q, r, ok := x.CheckedDivRem(y)
	if !ok {
		panic(divisionByZero("divrem"))
	}
	return q, r
}

// Div is CheckedDiv that panics when y is zero.
func (x BigInt) Div(y BigInt) BigInt {
	q, ok := x.CheckedDiv(y)
	if !ok {
		panic(divisionByZero("div"))
	}
	return q
}

// Rem is CheckedRem that panics when y is zero.
func (x BigInt) Rem(y BigInt) BigInt {
	r, ok := x.CheckedRem(y)
	if !ok {
		panic(divisionByZero("rem"))
	}
	return r
}

// DivRemEuclid is CheckedDivRemEuclid that panics when y is zero.
func (x BigInt) DivRemEuclid(y BigInt) (q, r BigInt) {
	q, r, ok := x.CheckedDivRemEuclid(y)
	if !ok {
		panic(divisionByZero("divrem_euclid"))
	}
	return q, r
}

// DivEuclid is CheckedDivEuclid that panics when y is zero.
func (x BigInt) DivEuclid(y BigInt) BigInt {
	q, ok := x.CheckedDivEuclid(y)
	if !ok {
		panic(divisionByZero("div_euclid"))
	}
	return q
}

// RemEuclid is CheckedRemEuclid that panics when y is zero.
func (x BigInt) RemEuclid(y BigInt) BigInt {
	r, ok := x.CheckedRemEuclid(y)
	if !ok {
		panic(divisionByZero("rem_euclid"))
	}
	return r
}

// Gcd returns the non-negative greatest common divisor of x and y.
// Gcd(0, 0) is 0.
func (x BigInt) Gcd(y BigInt) BigInt {
	return x.withNumber(x.family().GcdNumber(x.number(), x.operand(y)))
}

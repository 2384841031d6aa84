package bignum

import (
	"fmt"
)

// CheckedPow returns x ** exponent. Negative exponents fail with
// ErrNegativeExponent; results longer than digits.MaxDigits fail with
// ErrShiftTooLarge.
func (x BigInt) CheckedPow(exponent BigInt) (BigInt, error) {
	if exponent.sign < 0 {
		return BigInt{}, ErrNegativeExponent
	}
	e := x.operand(exponent)
	out, err := x.family().Pow(x.number(), e.Digits)
	if err != nil {
		return BigInt{}, fmt.Errorf("power %s: %w", exponent, err)
	}
	return x.withNumber(out), nil
}

// Pow is CheckedPow that panics on failure.
func (x BigInt) Pow(exponent BigInt) BigInt {
	out, err := x.CheckedPow(exponent)
	if err != nil {
		panic(err)
	}
	return out
}

// CheckedPowRemEuclid returns x ** exponent mod |modulus| in [0, |modulus|).
// A negative exponent uses the modular inverse of x. A zero modulus or a
// non-invertible base fails with an *InversionError.
func (x BigInt) CheckedPowRemEuclid(exponent, modulus BigInt) (BigInt, error) {
	out, err := x.family().PowMod(x.number(), x.operand(exponent), x.operand(modulus))
	if err != nil {
		return BigInt{}, err
	}
	return x.withNumber(out), nil
}

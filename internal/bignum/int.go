// Package bignum provides BigInt, an immutable arbitrary-precision signed
// integer bound to a digits.Family.
package bignum

import (
	"rithm/internal/digits"
)

// BigInt represents a big signed integer.
//
// The zero value is numeric zero of the default family. Operators never
// modify their operands; only the *Assign methods mutate the receiver.
type BigInt struct {
	sign digits.Sign
	// digits are the little-endian magnitude in fam's layout; nil means zero.
	digits []digits.Digit
	fam    *digits.Family
}

// Family builds integers that belong to one digits.Family.
type Family struct {
	f *digits.Family
}

// In returns a builder for integers of fam. A nil fam selects the default family.
func In(fam *digits.Family) Family {
	if fam == nil {
		fam = digits.Default()
	}
	return Family{f: fam}
}

// Digits returns the underlying digit family.
func (b Family) Digits() *digits.Family { return b.f }

// Zero returns zero of the family.
func (b Family) Zero() BigInt { return BigInt{fam: b.f} }

// One returns one of the family.
func (b Family) One() BigInt { return b.FromInt64(1) }

// FromInt64 creates a BigInt from an int64.
func (b Family) FromInt64(v int64) BigInt { return wrap(b.f, b.f.FromInt64(v)) }

// FromUint64 creates a BigInt from a uint64.
func (b Family) FromUint64(v uint64) BigInt {
	if v == 0 {
		return b.Zero()
	}
	return BigInt{sign: 1, digits: b.f.FromUint64(v), fam: b.f}
}

// FromInt64 creates a BigInt of the default family from an int64.
func FromInt64(v int64) BigInt { return In(nil).FromInt64(v) }

// FromUint64 creates a BigInt of the default family from a uint64.
func FromUint64(v uint64) BigInt { return In(nil).FromUint64(v) }

func wrap(f *digits.Family, n digits.Number) BigInt {
	n = digits.Canonical(n)
	if n.Sign == 0 {
		return BigInt{fam: f}
	}
	return BigInt{sign: n.Sign, digits: n.Digits, fam: f}
}

func (x BigInt) family() *digits.Family {
	if x.fam == nil {
		return digits.Default()
	}
	return x.fam
}

func (x BigInt) number() digits.Number {
	if x.sign == 0 {
		return digits.ZeroNumber()
	}
	return digits.Number{Sign: x.sign, Digits: x.digits}
}

// operand returns y in x's digit layout.
func (x BigInt) operand(y BigInt) digits.Number {
	f, g := x.family(), y.family()
	if y.sign == 0 || f.Compatible(g) {
		return y.number()
	}
	return digits.Number{Sign: y.sign, Digits: digits.Repack(y.digits, g.Shift(), f.Shift())}
}

// Family returns the family x belongs to.
func (x BigInt) Family() *digits.Family { return x.family() }

// In returns x re-expressed in fam.
func (x BigInt) In(fam *digits.Family) BigInt {
	z := In(fam).Zero()
	return z.withNumber(z.operand(x))
}

func (x BigInt) withNumber(n digits.Number) BigInt { return wrap(x.family(), n) }

// Zero returns zero of x's family.
func (x BigInt) Zero() BigInt { return BigInt{fam: x.fam} }

// One returns one of x's family.
func (x BigInt) One() BigInt { return In(x.fam).One() }

// FromInt64 returns v in x's family.
func (x BigInt) FromInt64(v int64) BigInt { return In(x.fam).FromInt64(v) }

// Sign returns -1, 0 or 1.
func (x BigInt) Sign() int { return int(x.sign) }

// IsZero reports whether x == 0.
func (x BigInt) IsZero() bool { return x.sign == 0 }

// IsOne reports whether x == 1.
func (x BigInt) IsOne() bool { return x.sign > 0 && digits.IsOne(x.digits) }

// IsNegative reports whether x < 0.
func (x BigInt) IsNegative() bool { return x.sign < 0 }

// IsPositive reports whether x > 0.
func (x BigInt) IsPositive() bool { return x.sign > 0 }

// IsEven reports whether x is divisible by two.
func (x BigInt) IsEven() bool { return x.sign == 0 || x.digits[0]&1 == 0 }

// IsOdd reports whether x is not divisible by two.
func (x BigInt) IsOdd() bool { return !x.IsEven() }

// IsPowerOfTwo reports whether |x| is a power of two.
func (x BigInt) IsPowerOfTwo() bool { return x.sign != 0 && digits.IsPowerOfTwo(x.digits) }

// BitLength returns the number of bits needed to represent |x|.
func (x BigInt) BitLength() int {
	if x.sign == 0 {
		return 0
	}
	return x.family().BitLength(x.digits)
}

// Cmp compares x and y and returns -1, 0 or 1.
func (x BigInt) Cmp(y BigInt) int { return digits.Cmp(x.number(), x.operand(y)) }

// Equal reports whether x == y.
func (x BigInt) Equal(y BigInt) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x BigInt) Less(y BigInt) bool { return x.Cmp(y) < 0 }

// Int64 converts x to int64 if possible.
func (x BigInt) Int64() (int64, bool) { return x.family().ToInt64(x.number()) }

// Uint64 converts x to uint64 if possible.
func (x BigInt) Uint64() (uint64, bool) {
	if x.sign < 0 {
		return 0, false
	}
	if x.sign == 0 {
		return 0, true
	}
	return x.family().ToUint64(x.digits)
}

// Hash returns |x| mod (2^61 - 1) with x's sign, remapping -1 to -2.
// Equal values hash equally across families.
func (x BigInt) Hash() int64 { return x.family().Hash(x.number()) }

package calc

import (
	"rithm/internal/bignum"
	"rithm/internal/fraction"
)

// Rat is the exact rational type of the calculator.
type Rat = fraction.Fraction[bignum.BigInt]

// Value is one stack entry: an integer or a non-integral fraction.
type Value struct {
	n      bignum.BigInt
	q      Rat
	isFrac bool
}

// Int wraps an integer.
func Int(x bignum.BigInt) Value { return Value{n: x} }

// Frac wraps a fraction, collapsing it to an integer when the denominator is 1.
func Frac(f Rat) Value {
	if f.IsIntegral() {
		return Value{n: f.Numerator()}
	}
	return Value{q: f, isFrac: true}
}

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool { return !v.isFrac }

// BigInt returns the integer held by v.
func (v Value) BigInt() (bignum.BigInt, bool) {
	if v.isFrac {
		return bignum.BigInt{}, false
	}
	return v.n, true
}

// Rat returns v as a fraction.
func (v Value) Rat() Rat {
	if v.isFrac {
		return v.q
	}
	return fraction.FromComponent(v.n)
}

// Sign returns -1, 0 or 1.
func (v Value) Sign() int {
	if v.isFrac {
		return v.q.Sign()
	}
	return v.n.Sign()
}

// Cmp compares v and w numerically.
func (v Value) Cmp(w Value) int {
	if !v.isFrac && !w.isFrac {
		return v.n.Cmp(w.n)
	}
	return v.Rat().Cmp(w.Rat())
}

// Float64 returns v correctly rounded to float64.
func (v Value) Float64() (float64, error) {
	if v.isFrac {
		return v.q.Float64()
	}
	return v.n.Float64()
}

// Hash is consistent between an integer and the equal integral fraction.
func (v Value) Hash() int64 {
	if v.isFrac {
		return v.q.Hash()
	}
	return v.n.Hash()
}

// In returns v with its components converted to fam.
func (v Value) In(fam bignum.Family) Value {
	if !v.isFrac {
		return Int(v.n.In(fam.Digits()))
	}
	return Frac(fraction.MustNew(v.q.Numerator().In(fam.Digits()), v.q.Denominator().In(fam.Digits())))
}

func (v Value) String() string { return v.Text(10) }

// Text renders v in radix, as "n" or "n/d".
func (v Value) Text(radix int) string {
	if !v.isFrac {
		return v.n.Text(radix)
	}
	return v.q.Numerator().Text(radix) + "/" + v.q.Denominator().Text(radix)
}

// Package fraction implements exact rational numbers over any integer type
// that provides the Component operations.
//
// A Fraction is always reduced: the numerator and denominator share no
// common factor and the denominator is positive.
package fraction

import (
	"fmt"

	"rithm/internal/digits"
)

var (
	ErrDivisionByZero   = digits.ErrDivisionByZero
	ErrInfinity         = digits.ErrInfinity
	ErrNaN              = digits.ErrNaN
	ErrFloatOverflow    = digits.ErrFloatOverflow
	ErrCannotInvert     = digits.ErrCannotInvert
	ErrNegativeExponent = digits.ErrNegativeExponent
)

// Component is the integer arithmetic a Fraction is built on.
// Constructors such as FromInt64 and Lsh keep the receiver's configuration.
type Component[C any] interface {
	Add(C) C
	Sub(C) C
	Mul(C) C
	Neg() C
	Abs() C
	Sign() int
	Cmp(C) int
	IsZero() bool
	Gcd(C) C
	// CheckedDiv truncates toward zero.
	CheckedDiv(C) (C, bool)
	CheckedDivRemEuclid(C) (C, C, bool)
	// CheckedPow rejects negative exponents.
	CheckedPow(C) (C, error)
	CheckedPowRemEuclid(exponent, modulus C) (C, error)
	Lsh(int) (C, error)
	DivAsFloat64(C) (float64, error)
	FromInt64(int64) C
	Int64() (int64, bool)
	String() string
}

// Fraction is an exact rational number numerator/denominator. The zero
// value is 0.
type Fraction[C Component[C]] struct {
	num C
	den C
}

// New returns n/d in lowest terms. It fails when d is zero.
func New[C Component[C]](n, d C) (Fraction[C], error) {
	if d.IsZero() {
		return Fraction[C]{}, fmt.Errorf("fraction: %w", ErrDivisionByZero)
	}
	return normalize(n, d), nil
}

// MustNew is like New but panics on a zero denominator.
func MustNew[C Component[C]](n, d C) Fraction[C] {
	f, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return f
}

// FromComponent returns the integral fraction c/1.
func FromComponent[C Component[C]](c C) Fraction[C] {
	return Fraction[C]{num: c, den: c.FromInt64(1)}
}

// normalize divides out the gcd and moves the sign to the numerator.
// d must not be zero.
func normalize[C Component[C]](n, d C) Fraction[C] {
	if d.Sign() < 0 {
		n, d = n.Neg(), d.Neg()
	}
	g := n.Gcd(d)
	if g.Cmp(d.FromInt64(1)) != 0 {
		n, _ = n.CheckedDiv(g)
		d, _ = d.CheckedDiv(g)
	}
	return Fraction[C]{num: n, den: d}
}

func (f Fraction[C]) one() C { return f.num.FromInt64(1) }

// denom reads the denominator; the zero Fraction is 0/1.
func (f Fraction[C]) denom() C {
	if f.den.IsZero() {
		return f.one()
	}
	return f.den
}

// Numerator returns the reduced numerator, which carries the sign.
func (f Fraction[C]) Numerator() C { return f.num }

// Denominator returns the reduced, positive denominator.
func (f Fraction[C]) Denominator() C { return f.denom() }

// IsZero reports whether f == 0.
func (f Fraction[C]) IsZero() bool { return f.num.IsZero() }

// IsOne reports whether f == 1.
func (f Fraction[C]) IsOne() bool {
	one := f.one()
	return f.num.Cmp(one) == 0 && f.denom().Cmp(one) == 0
}

// IsIntegral reports whether the denominator is one.
func (f Fraction[C]) IsIntegral() bool { return f.denom().Cmp(f.one()) == 0 }

// Sign returns -1, 0 or 1.
func (f Fraction[C]) Sign() int { return f.num.Sign() }

// Add returns f + g.
func (f Fraction[C]) Add(g Fraction[C]) Fraction[C] {
	return normalize(f.num.Mul(g.denom()).Add(g.num.Mul(f.denom())), f.denom().Mul(g.denom()))
}

// Sub returns f - g.
func (f Fraction[C]) Sub(g Fraction[C]) Fraction[C] {
	return normalize(f.num.Mul(g.denom()).Sub(g.num.Mul(f.denom())), f.denom().Mul(g.denom()))
}

// Mul returns f * g.
func (f Fraction[C]) Mul(g Fraction[C]) Fraction[C] {
	return normalize(f.num.Mul(g.num), f.denom().Mul(g.denom()))
}

// CheckedDiv returns f / g; ok is false when g is zero.
func (f Fraction[C]) CheckedDiv(g Fraction[C]) (Fraction[C], bool) {
	if g.IsZero() {
		return Fraction[C]{}, false
	}
	return normalize(f.num.Mul(g.denom()), f.denom().Mul(g.num)), true
}

// Div is CheckedDiv that panics when g is zero.
func (f Fraction[C]) Div(g Fraction[C]) Fraction[C] {
	q, ok := f.CheckedDiv(g)
	if !ok {
		panic(fmt.Errorf("fraction: div: %w", ErrDivisionByZero))
	}
	return q
}

// Neg returns -f.
func (f Fraction[C]) Neg() Fraction[C] { return Fraction[C]{num: f.num.Neg(), den: f.denom()} }

// Abs returns |f|.
func (f Fraction[C]) Abs() Fraction[C] { return Fraction[C]{num: f.num.Abs(), den: f.denom()} }

// Cmp compares f and g and returns -1, 0 or 1.
func (f Fraction[C]) Cmp(g Fraction[C]) int {
	return f.num.Mul(g.denom()).Cmp(g.num.Mul(f.denom()))
}

// Equal reports whether f == g.
func (f Fraction[C]) Equal(g Fraction[C]) bool {
	return f.num.Cmp(g.num) == 0 && f.denom().Cmp(g.denom()) == 0
}

// CheckedPow returns f ** exponent. A negative exponent inverts f first, so
// zero to a negative power fails with ErrDivisionByZero.
func (f Fraction[C]) CheckedPow(exponent C) (Fraction[C], error) {
	if exponent.Sign() >= 0 {
		n, err := f.num.CheckedPow(exponent)
		if err != nil {
			return Fraction[C]{}, err
		}
		d, err := f.denom().CheckedPow(exponent)
		if err != nil {
			return Fraction[C]{}, err
		}
		return Fraction[C]{num: n, den: d}, nil
	}
	if f.IsZero() {
		return Fraction[C]{}, fmt.Errorf("fraction: zero to a negative power: %w", ErrDivisionByZero)
	}
	inv := normalize(f.denom(), f.num)
	return inv.CheckedPow(exponent.Neg())
}

// Pow is CheckedPow that panics on failure.
func (f Fraction[C]) Pow(exponent C) Fraction[C] {
	out, err := f.CheckedPow(exponent)
	if err != nil {
		panic(err)
	}
	return out
}

// String returns "n" for integral values and "n/d" otherwise.
func (f Fraction[C]) String() string {
	if f.IsIntegral() {
		return f.num.String()
	}
	return f.num.String() + "/" + f.denom().String()
}

package fraction

import (
	"errors"
	"math/big"
	"strconv"
)

// small is a minimal int64 component for tests that do not need big values.
type small int64

func (a small) Add(b small) small { return a + b }
func (a small) Sub(b small) small { return a - b }
func (a small) Mul(b small) small { return a * b }
func (a small) Neg() small        { return -a }

func (a small) Abs() small {
	if a < 0 {
		return -a
	}
	return a
}

func (a small) Sign() int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

func (a small) Cmp(b small) int { return (a - b).Sign() }
func (a small) IsZero() bool    { return a == 0 }

func (a small) Gcd(b small) small {
	x, y := a.Abs(), b.Abs()
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

func (a small) CheckedDiv(b small) (small, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

func (a small) CheckedDivRemEuclid(b small) (small, small, bool) {
	if b == 0 {
		return 0, 0, false
	}
	q, r := a/b, a%b
	if r < 0 {
		r += b.Abs()
		q -= small(b.Sign())
	}
	return q, r, true
}

func (a small) CheckedPow(e small) (small, error) {
	if e < 0 {
		return 0, ErrNegativeExponent
	}
	out := small(1)
	for range e {
		out *= a
	}
	return out, nil
}

func (a small) CheckedPowRemEuclid(e, m small) (small, error) {
	if m == 0 {
		return 0, ErrCannotInvert
	}
	mod := big.NewInt(int64(m.Abs()))
	base := new(big.Int).Mod(big.NewInt(int64(a)), mod)
	if e < 0 {
		if base.ModInverse(base, mod) == nil {
			return 0, ErrCannotInvert
		}
		e = -e
	}
	return small(new(big.Int).Exp(base, big.NewInt(int64(e)), mod).Int64()), nil
}

func (a small) Lsh(n int) (small, error) {
	if n < 0 || n > 62 {
		return 0, errors.New("small: shift out of range")
	}
	return a << n, nil
}

func (a small) DivAsFloat64(b small) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}

func (a small) FromInt64(v int64) small { return small(v) }
func (a small) Int64() (int64, bool)    { return int64(a), true }
func (a small) String() string          { return strconv.FormatInt(int64(a), 10) }

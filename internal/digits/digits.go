// Package digits implements multi-word arithmetic on little-endian digit
// sequences with a separate sign.
//
// Every function takes read-only inputs and returns freshly allocated,
// canonical outputs: no most-significant zero digits, and zero is a single
// 0 digit.
package digits

// Number is a sign and a magnitude.
type Number struct {
	Sign   Sign
	Digits []Digit
}

// Zero returns the canonical zero magnitude.
func Zero() []Digit { return []Digit{0} }

// One returns the canonical magnitude of one.
func One() []Digit { return []Digit{1} }

// ZeroNumber returns numeric zero.
func ZeroNumber() Number { return Number{Digits: Zero()} }

// IsZero reports whether d represents zero.
func IsZero(d []Digit) bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether d represents one.
func IsOne(d []Digit) bool {
	d = Trim(d)
	return len(d) == 1 && d[0] == 1
}

// Trim drops most-significant zero digits, keeping one digit for zero.
// The result aliases d.
func Trim(d []Digit) []Digit {
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Zero()
	}
	return d[:n]
}

// Clone returns a canonical copy of d.
func Clone(d []Digit) []Digit {
	d = Trim(d)
	out := make([]Digit, len(d))
	copy(out, d)
	return out
}

// Canonical returns n with trimmed digits and a sign consistent with them.
func Canonical(n Number) Number {
	d := Trim(n.Digits)
	if IsZero(d) {
		return ZeroNumber()
	}
	s := n.Sign
	if s == 0 {
		s = 1
	}
	return Number{Sign: s, Digits: d}
}

// CmpMagnitudes compares |a| and |b|.
func CmpMagnitudes(a, b []Digit) int {
	a = Trim(a)
	b = Trim(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Cmp compares two signed numbers.
func Cmp(a, b Number) int {
	switch {
	case a.Sign < b.Sign:
		return -1
	case a.Sign > b.Sign:
		return 1
	case a.Sign == 0:
		return 0
	}
	c := CmpMagnitudes(a.Digits, b.Digits)
	if a.Sign < 0 {
		return -c
	}
	return c
}

// BitLength returns the number of bits in the magnitude, 0 for zero.
func (f *Family) BitLength(d []Digit) int {
	d = Trim(d)
	top := d[len(d)-1]
	if top == 0 {
		return 0
	}
	return (len(d)-1)*int(f.shift) + int(digitBitLen(top))
}

// IsPowerOfTwo reports whether the magnitude has exactly one bit set.
func IsPowerOfTwo(d []Digit) bool {
	d = Trim(d)
	for _, v := range d[:len(d)-1] {
		if v != 0 {
			return false
		}
	}
	top := d[len(d)-1]
	return top != 0 && top&(top-1) == 0
}

// FromUint64 splits v into digits.
func (f *Family) FromUint64(v uint64) []Digit {
	if v == 0 {
		return Zero()
	}
	out := make([]Digit, 0, 64/f.shift+1)
	for v != 0 {
		out = append(out, Digit(v)&f.mask) //nolint:gosec // G115: truncation is intentional (digit split).
		v >>= f.shift
	}
	return out
}

// FromInt64 converts v to a signed number.
func (f *Family) FromInt64(v int64) Number {
	switch {
	case v == 0:
		return ZeroNumber()
	case v > 0:
		return Number{Sign: 1, Digits: f.FromUint64(uint64(v))}
	default:
		u := uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
		return Number{Sign: -1, Digits: f.FromUint64(u + 1)}
	}
}

// ToUint64 joins d into a uint64 if it fits.
func (f *Family) ToUint64(d []Digit) (uint64, bool) {
	d = Trim(d)
	if f.BitLength(d) > 64 {
		return 0, false
	}
	var v uint64
	for i := len(d) - 1; i >= 0; i-- {
		v = v<<f.shift | uint64(d[i])
	}
	return v, true
}

// ToInt64 converts n to an int64 if it fits.
func (f *Family) ToInt64(n Number) (int64, bool) {
	mag, ok := f.ToUint64(n.Digits)
	if !ok {
		return 0, false
	}
	const limit = uint64(1) << 63
	if n.Sign >= 0 {
		if mag >= limit {
			return 0, false
		}
		return int64(mag), true
	}
	switch {
	case mag > limit:
		return 0, false
	case mag == limit:
		return -1 << 63, true
	default:
		return -int64(mag), true
	}
}

// Neg returns -n.
func Neg(n Number) Number {
	return Number{Sign: -n.Sign, Digits: Clone(n.Digits)}
}

// Abs returns |n|.
func Abs(n Number) Number {
	if n.Sign < 0 {
		return Number{Sign: 1, Digits: Clone(n.Digits)}
	}
	return Number{Sign: n.Sign, Digits: Clone(n.Digits)}
}

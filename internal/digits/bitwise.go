package digits

// toTwos returns n in two's complement over width digits. width must exceed
// the magnitude's length so the top digit is all zeros or all ones.
func (f *Family) toTwos(n Number, width int) []Digit {
	out := make([]Digit, width)
	d := Trim(n.Digits)
	if n.Sign >= 0 {
		copy(out, d)
		return out
	}
	f.negateInto(out, d)
	return out
}

// negateInto writes the two's complement of d (zero-extended to len(dst)) into dst.
func (f *Family) negateInto(dst, d []Digit) {
	acc := SignedDoubleDigit(1)
	for i := range dst {
		var v Digit
		if i < len(d) {
			v = d[i]
		}
		acc += SignedDoubleDigit(^v & f.mask)
		dst[i] = Digit(acc) & f.mask //nolint:gosec // G115: truncation is intentional (carry split).
		acc >>= f.shift
	}
}

// fromTwos recovers sign and magnitude from a two's-complement digit sequence.
func (f *Family) fromTwos(t []Digit) Number {
	if t[len(t)-1]>>(f.shift-1) == 0 {
		return Canonical(Number{Sign: 1, Digits: t})
	}
	mag := make([]Digit, len(t))
	f.negateInto(mag, t)
	return Canonical(Number{Sign: -1, Digits: mag})
}

func (f *Family) bitwise(a, b Number, op func(x, y Digit) Digit) Number {
	width := max(len(Trim(a.Digits)), len(Trim(b.Digits))) + 1
	ta := f.toTwos(a, width)
	tb := f.toTwos(b, width)
	for i := range ta {
		ta[i] = op(ta[i], tb[i]) & f.mask
	}
	return f.fromTwos(ta)
}

// And returns a & b with infinite two's-complement semantics.
func (f *Family) And(a, b Number) Number {
	if a.Sign == 0 || b.Sign == 0 {
		return ZeroNumber()
	}
	return f.bitwise(a, b, func(x, y Digit) Digit { return x & y })
}

// Or returns a | b with infinite two's-complement semantics.
func (f *Family) Or(a, b Number) Number {
	return f.bitwise(a, b, func(x, y Digit) Digit { return x | y })
}

// Xor returns a ^ b with infinite two's-complement semantics.
func (f *Family) Xor(a, b Number) Number {
	return f.bitwise(a, b, func(x, y Digit) Digit { return x ^ y })
}

// Not returns ^a, that is -(a + 1).
func (f *Family) Not(a Number) Number {
	return f.Sub(Number{Sign: -a.Sign, Digits: a.Digits}, Number{Sign: 1, Digits: One()})
}

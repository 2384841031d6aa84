package digits

// Gcd returns the greatest common divisor of |a| and |b|; Gcd(0, 0) is 0.
func (f *Family) Gcd(a, b []Digit) []Digit {
	x := Clone(a)
	y := Clone(b)
	for !IsZero(y) {
		_, r := f.divRemMagnitudes(x, y)
		x, y = y, r
	}
	return x
}

// GcdNumber is Gcd over signed numbers; the result is never negative.
func (f *Family) GcdNumber(a, b Number) Number {
	return Canonical(Number{Sign: 1, Digits: f.Gcd(a.Digits, b.Digits)})
}

// Pow returns base^exponent for a non-negative exponent magnitude.
func (f *Family) Pow(base Number, exponent []Digit) (Number, error) {
	exponent = Trim(exponent)
	if IsZero(exponent) {
		return Number{Sign: 1, Digits: One()}, nil
	}
	if base.Sign == 0 {
		return ZeroNumber(), nil
	}
	sign := base.Sign
	if sign < 0 && exponent[0]&1 == 0 {
		sign = 1
	}
	if IsOne(base.Digits) {
		return Number{Sign: sign, Digits: One()}, nil
	}
	e, ok := f.ToUint64(exponent)
	// |base| >= 2, so the result has at least e bits.
	if !ok || e > uint64(MaxDigits)*uint64(f.shift) {
		return Number{}, ErrCapacityExceeded
	}
	approx := uint64(f.BitLength(base.Digits)-1) * e //nolint:gosec // G115: bit length is positive.
	if approx/uint64(f.shift) >= MaxDigits {
		return Number{}, ErrCapacityExceeded
	}
	result := One()
	acc := Clone(base.Digits)
	for {
		if e&1 == 1 {
			result = f.mulMagnitudes(result, acc)
		}
		e >>= 1
		if e == 0 {
			break
		}
		acc = f.mulMagnitudes(acc, acc)
	}
	return Number{Sign: sign, Digits: result}, nil
}

// PowMod returns base^exponent reduced into [0, |modulus|). A negative
// exponent uses the modular inverse of base. A zero modulus or a base that is
// not invertible fails with an *InversionError.
func (f *Family) PowMod(base, exponent, modulus Number) (Number, error) {
	if modulus.Sign == 0 {
		return Number{}, &InversionError{ZeroModulus: true}
	}
	m := Number{Sign: 1, Digits: Clone(modulus.Digits)}
	b, _ := f.RemEuclid(base, m)
	if exponent.Sign < 0 {
		inv, ok := f.inverse(b, m)
		if !ok {
			return Number{}, &InversionError{}
		}
		b = inv
	}
	if IsOne(m.Digits) {
		return ZeroNumber(), nil
	}

	result := One()
	acc := b.Digits
	e := Trim(exponent.Digits)
	n := f.BitLength(e)
	for k := range n {
		if e[k/int(f.shift)]>>(uint(k)%f.shift)&1 == 1 { //nolint:gosec // G115: k is non-negative.
			result = f.mulMod(result, acc, m.Digits)
		}
		if k+1 < n {
			acc = f.mulMod(acc, acc, m.Digits)
		}
	}
	return Canonical(Number{Sign: 1, Digits: result}), nil
}

func (f *Family) mulMod(a, b, m []Digit) []Digit {
	_, r := f.divRemMagnitudes(f.mulMagnitudes(a, b), m)
	return r
}

// inverse returns x in [0, m) with a*x ≡ 1 (mod m), using the extended
// Euclidean algorithm; a must already be reduced into [0, m).
func (f *Family) inverse(a, m Number) (Number, bool) {
	oldR, r := a, m
	oldS, s := Number{Sign: 1, Digits: One()}, ZeroNumber()
	for r.Sign != 0 {
		q, rem, _ := f.DivRem(oldR, r)
		oldR, r = r, rem
		oldS, s = s, f.Sub(oldS, f.Mul(q, s))
	}
	if IsOne(m.Digits) {
		return ZeroNumber(), true
	}
	if !IsOne(oldR.Digits) {
		return Number{}, false
	}
	x, _ := f.RemEuclid(oldS, m)
	return x, true
}

package digits

// divRemDigit divides |a| by a single non-zero digit.
func (f *Family) divRemDigit(a []Digit, d Digit) ([]Digit, Digit) {
	a = Trim(a)
	q := make([]Digit, len(a))
	dd := DoubleDigit(d)
	var rem DoubleDigit
	for i := len(a) - 1; i >= 0; i-- {
		rem = rem<<f.shift | DoubleDigit(a[i])
		q[i] = Digit(rem / dd) //nolint:gosec // G115: quotient digit fits in Digit.
		rem %= dd
	}
	return Trim(q), Digit(rem) //nolint:gosec // G115: remainder is below the divisor.
}

// shlDigits writes src << s into dst (len(dst) == len(src)) and returns the
// bits shifted out of the top digit. It requires s < f.shift.
func (f *Family) shlDigits(dst, src []Digit, s uint) Digit {
	var carry DoubleDigit
	mask := DoubleDigit(f.mask)
	for i, d := range src {
		acc := DoubleDigit(d)<<s | carry
		dst[i] = Digit(acc & mask)
		carry = acc >> f.shift
	}
	return Digit(carry) //nolint:gosec // G115: at most s bits remain.
}

// shrDigits writes src >> s into dst (len(dst) == len(src)) and returns the
// bits shifted out of the bottom digit. It requires s < f.shift.
func (f *Family) shrDigits(dst, src []Digit, s uint) Digit {
	var carry Digit
	low := Digit(1)<<s - 1
	for i := len(src) - 1; i >= 0; i-- {
		acc := DoubleDigit(carry)<<f.shift | DoubleDigit(src[i])
		dst[i] = Digit(acc >> s) //nolint:gosec // G115: shifted value fits in one digit.
		carry = src[i] & low
	}
	return carry
}

// divRemMagnitudes returns |a| / |b| and |a| % |b|; b must be non-zero.
func (f *Family) divRemMagnitudes(a, b []Digit) (quotient, remainder []Digit) {
	a = Trim(a)
	b = Trim(b)
	if CmpMagnitudes(a, b) < 0 {
		return Zero(), Clone(a)
	}
	if len(b) == 1 {
		q, r := f.divRemDigit(a, b[0])
		return q, []Digit{r}
	}

	// Normalize so the divisor's top digit has its high bit set; trial
	// quotients are then off by at most two.
	s := f.shift - digitBitLen(b[len(b)-1])
	v := make([]Digit, len(b))
	f.shlDigits(v, b, s)
	u := make([]Digit, len(a)+1)
	u[len(a)] = f.shlDigits(u[:len(a)], a, s)

	n := len(v)
	m := len(u) - n
	q := make([]Digit, m)
	base := DoubleDigit(1) << f.shift
	mask := DoubleDigit(f.mask)
	vTop := DoubleDigit(v[n-1])
	vNext := DoubleDigit(v[n-2])

	for j := m - 1; j >= 0; j-- {
		top := DoubleDigit(u[j+n])<<f.shift | DoubleDigit(u[j+n-1])
		qHat := top / vTop
		rHat := top - qHat*vTop
		for qHat >= base || qHat*vNext > rHat<<f.shift|DoubleDigit(u[j+n-2]) {
			qHat--
			rHat += vTop
			if rHat >= base {
				break
			}
		}

		// u[j:j+n+1] -= qHat * v
		var carry DoubleDigit
		var borrow SignedDoubleDigit
		for i := range n {
			carry += qHat * DoubleDigit(v[i])
			borrow += SignedDoubleDigit(u[j+i]) - SignedDoubleDigit(carry&mask) //nolint:gosec // G115: masked value fits.
			carry >>= f.shift
			u[j+i] = Digit(borrow) & f.mask //nolint:gosec // G115: truncation is intentional (two's-complement borrow).
			borrow >>= f.shift
		}
		borrow += SignedDoubleDigit(u[j+n]) - SignedDoubleDigit(carry) //nolint:gosec // G115: carry is below 2^(shift+1).
		u[j+n] = 0

		if borrow < 0 {
			// qHat was one too large: add the divisor back.
			var c DoubleDigit
			for i := range n {
				c += DoubleDigit(u[j+i]) + DoubleDigit(v[i])
				u[j+i] = Digit(c & mask)
				c >>= f.shift
			}
			qHat--
		}
		q[j] = Digit(qHat) //nolint:gosec // G115: corrected trial quotient fits in one digit.
	}

	r := make([]Digit, n)
	f.shrDigits(r, u[:n], s)
	return Trim(q), Trim(r)
}

// DivRem returns the truncating quotient and remainder of a / b: the quotient
// rounds toward zero and the remainder carries the dividend's sign.
// ok is false when b is zero.
func (f *Family) DivRem(a, b Number) (q, r Number, ok bool) {
	if b.Sign == 0 {
		return Number{}, Number{}, false
	}
	if a.Sign == 0 {
		return ZeroNumber(), ZeroNumber(), true
	}
	qd, rd := f.divRemMagnitudes(a.Digits, b.Digits)
	q = Canonical(Number{Sign: a.Sign * b.Sign, Digits: qd})
	r = Canonical(Number{Sign: a.Sign, Digits: rd})
	return q, r, true
}

// DivRemEuclid returns q and r with a == q*b + r and 0 <= r < |b|.
// ok is false when b is zero.
func (f *Family) DivRemEuclid(a, b Number) (q, r Number, ok bool) {
	q, r, ok = f.DivRem(a, b)
	if !ok || r.Sign >= 0 {
		return q, r, ok
	}
	r = f.Add(r, Number{Sign: 1, Digits: b.Digits})
	q = f.Sub(q, Number{Sign: b.Sign, Digits: One()})
	return q, r, true
}

// RemEuclid returns the non-negative remainder of a / b.
func (f *Family) RemEuclid(a, b Number) (Number, bool) {
	_, r, ok := f.DivRemEuclid(a, b)
	return r, ok
}

package digits

func (f *Family) addMagnitudes(a, b []Digit) []Digit {
	a = Trim(a)
	b = Trim(b)
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]Digit, len(a)+1)
	var carry DoubleDigit
	for i := range a {
		carry += DoubleDigit(a[i])
		if i < len(b) {
			carry += DoubleDigit(b[i])
		}
		out[i] = Digit(carry) & f.mask //nolint:gosec // G115: truncation is intentional (digit arithmetic).
		carry >>= f.shift
	}
	out[len(a)] = Digit(carry) //nolint:gosec // G115: carry is at most one bit.
	return Trim(out)
}

// subMagnitudes returns |a| - |b|; it requires |a| >= |b|.
func (f *Family) subMagnitudes(a, b []Digit) []Digit {
	a = Trim(a)
	b = Trim(b)
	out := make([]Digit, len(a))
	var acc SignedDoubleDigit
	for i := range a {
		acc += SignedDoubleDigit(a[i])
		if i < len(b) {
			acc -= SignedDoubleDigit(b[i])
		}
		out[i] = Digit(acc) & f.mask //nolint:gosec // G115: truncation is intentional (two's-complement borrow).
		acc >>= f.shift
	}
	return Trim(out)
}

// Add returns a + b.
func (f *Family) Add(a, b Number) Number {
	switch {
	case a.Sign == 0:
		return Number{Sign: b.Sign, Digits: Clone(b.Digits)}
	case b.Sign == 0:
		return Number{Sign: a.Sign, Digits: Clone(a.Digits)}
	case a.Sign == b.Sign:
		return Number{Sign: a.Sign, Digits: f.addMagnitudes(a.Digits, b.Digits)}
	}
	switch CmpMagnitudes(a.Digits, b.Digits) {
	case 0:
		return ZeroNumber()
	case 1:
		return Number{Sign: a.Sign, Digits: f.subMagnitudes(a.Digits, b.Digits)}
	default:
		return Number{Sign: b.Sign, Digits: f.subMagnitudes(b.Digits, a.Digits)}
	}
}

// Sub returns a - b.
func (f *Family) Sub(a, b Number) Number {
	return f.Add(a, Number{Sign: -b.Sign, Digits: b.Digits})
}

func (f *Family) increment(d []Digit) []Digit {
	return f.addMagnitudes(d, One())
}

func (f *Family) decrement(d []Digit) []Digit {
	return f.subMagnitudes(d, One())
}

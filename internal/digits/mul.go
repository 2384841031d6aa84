package digits

func (f *Family) mulMagnitudes(a, b []Digit) []Digit {
	a = Trim(a)
	b = Trim(b)
	if IsZero(a) || IsZero(b) {
		return Zero()
	}
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]Digit, len(a)+len(b))
	mask := DoubleDigit(f.mask)
	for i, bd := range b {
		if bd == 0 {
			continue
		}
		x := DoubleDigit(bd)
		var carry DoubleDigit
		for j, ad := range a {
			carry += DoubleDigit(out[i+j]) + x*DoubleDigit(ad)
			out[i+j] = Digit(carry & mask)
			carry >>= f.shift
		}
		for k := i + len(a); carry != 0; k++ {
			carry += DoubleDigit(out[k])
			out[k] = Digit(carry & mask)
			carry >>= f.shift
		}
	}
	return Trim(out)
}

// mulDigit returns |a| * m + add for a single digit m and addend.
func (f *Family) mulDigit(a []Digit, m, add DoubleDigit) []Digit {
	a = Trim(a)
	out := make([]Digit, len(a)+2)
	mask := DoubleDigit(f.mask)
	carry := add
	for i, d := range a {
		carry += DoubleDigit(d) * m
		out[i] = Digit(carry & mask)
		carry >>= f.shift
	}
	for k := len(a); carry != 0; k++ {
		out[k] = Digit(carry & mask)
		carry >>= f.shift
	}
	return Trim(out)
}

// Mul returns a * b.
func (f *Family) Mul(a, b Number) Number {
	if a.Sign == 0 || b.Sign == 0 {
		return ZeroNumber()
	}
	return Number{Sign: a.Sign * b.Sign, Digits: f.mulMagnitudes(a.Digits, b.Digits)}
}

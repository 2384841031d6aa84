package fraction

// Floor returns the largest integer not greater than f.
func (f Fraction[C]) Floor() C {
	q, _, _ := f.num.CheckedDivRemEuclid(f.denom())
	return q
}

// Ceil returns the smallest integer not less than f.
func (f Fraction[C]) Ceil() C {
	return f.Neg().Floor().Neg()
}

// Trunc returns f rounded toward zero.
func (f Fraction[C]) Trunc() C {
	q, _ := f.num.CheckedDiv(f.denom())
	return q
}

// Round returns f rounded to the nearest integer, ties to even.
func (f Fraction[C]) Round() C {
	one := f.one()
	two := f.num.FromInt64(2)
	q, r, _ := f.num.CheckedDivRemEuclid(f.denom())
	switch r.Mul(two).Cmp(f.denom()) {
	case 1:
		return q.Add(one)
	case 0:
		if _, parity, _ := q.CheckedDivRemEuclid(two); !parity.IsZero() {
			return q.Add(one)
		}
	}
	return q
}

// CheckedDivRemEuclid returns the Euclidean quotient q and the remainder
// f - q*g, which lies in [0, |g|). ok is false when g is zero.
func (f Fraction[C]) CheckedDivRemEuclid(g Fraction[C]) (C, Fraction[C], bool) {
	if g.IsZero() {
		var zero C
		return zero, Fraction[C]{}, false
	}
	// f/g = (a*d)/(b*c) for f = a/b and g = c/d.
	q, r, _ := f.num.Mul(g.denom()).CheckedDivRemEuclid(f.denom().Mul(g.num))
	return q, normalize(r, f.denom().Mul(g.denom())), true
}

// CheckedDivEuclid returns the Euclidean quotient of f / g.
func (f Fraction[C]) CheckedDivEuclid(g Fraction[C]) (C, bool) {
	q, _, ok := f.CheckedDivRemEuclid(g)
	return q, ok
}

// CheckedRemEuclid returns the Euclidean remainder of f / g, in [0, |g|).
func (f Fraction[C]) CheckedRemEuclid(g Fraction[C]) (Fraction[C], bool) {
	_, r, ok := f.CheckedDivRemEuclid(g)
	return r, ok
}

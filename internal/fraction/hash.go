package fraction

import (
	"rithm/internal/digits"
)

// Hash returns a hash consistent with the component hash for integral
// values: |n| * d^-1 mod (2^61 - 1) with n's sign, remapping -1 to -2.
// Denominators divisible by the modulus hash as digits.HashInfinity.
func (f Fraction[C]) Hash() int64 {
	modulus := f.num.FromInt64(int64(digits.HashModulus))
	inverse, err := f.denom().CheckedPowRemEuclid(f.num.FromInt64(int64(digits.HashModulus-2)), modulus)
	residue := uint64(digits.HashInfinity)
	if err == nil && !inverse.IsZero() {
		_, n, _ := f.num.Abs().CheckedDivRemEuclid(modulus)
		_, r, _ := n.Mul(inverse).CheckedDivRemEuclid(modulus)
		v, _ := r.Int64()
		residue = uint64(v) //nolint:gosec // G115: residue is in [0, HashModulus).
	}
	return digits.FinishHash(digitsSign(f.num.Sign()), residue)
}

func digitsSign(s int) digits.Sign {
	switch {
	case s < 0:
		return -1
	case s > 0:
		return 1
	}
	return 0
}

package digits

const (
	hashBits = 61
	// HashModulus is the Mersenne prime 2^61 - 1 that hashes are reduced by.
	HashModulus = uint64(1)<<hashBits - 1
	// HashInfinity is the hash of values whose denominator has no inverse.
	HashInfinity = 314159
)

// Hash folds the magnitude into |n| mod HashModulus by rotating the
// accumulator left by one digit width per step, applies the sign and remaps
// -1 to -2. The result does not depend on the family's digit width.
func (f *Family) Hash(n Number) int64 {
	d := Trim(n.Digits)
	var x uint64
	for i := len(d) - 1; i >= 0; i-- {
		x = (x<<f.shift)&HashModulus | x>>(hashBits-f.shift)
		x += uint64(d[i])
		if x >= HashModulus {
			x -= HashModulus
		}
	}
	return FinishHash(n.Sign, x)
}

// FinishHash applies the sign convention to a reduced residue.
func FinishHash(sign Sign, residue uint64) int64 {
	h := int64(residue) //nolint:gosec // G115: residue is below 2^61.
	if sign < 0 {
		h = -h
	}
	if h == -1 {
		h = -2
	}
	return h
}

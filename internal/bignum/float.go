package bignum

// Float64 returns x correctly rounded to float64. It fails with
// ErrFloatOverflow when |x| is beyond the float64 range.
func (x BigInt) Float64() (float64, error) {
	return x.DivAsFloat64(x.One())
}

// DivAsFloat64 returns x / y correctly rounded to float64, without forming an
// intermediate rational.
func (x BigInt) DivAsFloat64(y BigInt) (float64, error) {
	return x.family().DivAsFloat64(x.number(), x.operand(y))
}

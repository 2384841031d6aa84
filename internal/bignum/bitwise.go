package bignum

import (
	"fmt"

	"fortio.org/safecast"
)

// And returns x & y with two's-complement semantics for negative values.
func (x BigInt) And(y BigInt) BigInt {
	return x.withNumber(x.family().And(x.number(), x.operand(y)))
}

// Or returns x | y.
func (x BigInt) Or(y BigInt) BigInt {
	return x.withNumber(x.family().Or(x.number(), x.operand(y)))
}

// Xor returns x ^ y.
func (x BigInt) Xor(y BigInt) BigInt {
	return x.withNumber(x.family().Xor(x.number(), x.operand(y)))
}

// Not returns ^x, which is -x - 1.
func (x BigInt) Not() BigInt { return x.withNumber(x.family().Not(x.number())) }

// shiftCount converts a shift amount to bits. Amounts past uint64 are
// reported as ok == false.
func shiftCount(n BigInt) (count uint64, ok bool, err error) {
	if n.sign < 0 {
		return 0, false, ErrNegativeShift
	}
	count, ok = n.Uint64()
	return count, ok, nil
}

// Shl returns x << n. It fails for negative n and for results longer than
// digits.MaxDigits.
func (x BigInt) Shl(n BigInt) (BigInt, error) {
	count, ok, err := shiftCount(n)
	if err != nil {
		return BigInt{}, err
	}
	if x.sign == 0 {
		return x.Zero(), nil
	}
	if !ok {
		return BigInt{}, fmt.Errorf("shift by %s: %w", n, ErrShiftTooLarge)
	}
	out, err := x.family().Shl(x.number(), count)
	if err != nil {
		return BigInt{}, fmt.Errorf("shift by %d: %w", count, err)
	}
	return x.withNumber(out), nil
}

// Shr returns x >> n, rounding toward negative infinity.
func (x BigInt) Shr(n BigInt) (BigInt, error) {
	count, ok, err := shiftCount(n)
	if err != nil {
		return BigInt{}, err
	}
	if !ok {
		if x.sign < 0 {
			return x.FromInt64(-1), nil
		}
		return x.Zero(), nil
	}
	return x.withNumber(x.family().Shr(x.number(), count)), nil
}

// Lsh is Shl with an int amount.
func (x BigInt) Lsh(n int) (BigInt, error) {
	count, err := safecast.Conv[uint64](n)
	if err != nil {
		return BigInt{}, fmt.Errorf("shift by %d: %w: %w", n, ErrNegativeShift, err)
	}
	return x.Shl(In(x.fam).FromUint64(count))
}

// Rsh is Shr with an int amount.
func (x BigInt) Rsh(n int) (BigInt, error) {
	count, err := safecast.Conv[uint64](n)
	if err != nil {
		return BigInt{}, fmt.Errorf("shift by %d: %w: %w", n, ErrNegativeShift, err)
	}
	return x.withNumber(x.family().Shr(x.number(), count)), nil
}

package calc

import (
	"fmt"

	"fortio.org/safecast"

	"rithm/internal/bignum"
	"rithm/internal/fraction"
)

type opFunc func(fam bignum.Family, args []Value) ([]Value, error)

type operator struct {
	arity int
	fn    opFunc
}

var operators = map[string]operator{
	"+":  {2, exact(bignum.BigInt.Add, Rat.Add)},
	"-":  {2, exact(bignum.BigInt.Sub, Rat.Sub)},
	"*":  {2, exact(bignum.BigInt.Mul, Rat.Mul)},
	"/":  {2, divide},
	"//": {2, divEuclid},
	"%":  {2, remEuclid},

	"divmod": {2, divmod},
	"tdiv":   {2, truncDiv},
	"trem":   {2, truncRem},
	"neg":    {1, unary(bignum.BigInt.Neg, Rat.Neg)},
	"abs":    {1, unary(bignum.BigInt.Abs, Rat.Abs)},

	"&":  {2, bitwise(bignum.BigInt.And)},
	"|":  {2, bitwise(bignum.BigInt.Or)},
	"^":  {2, bitwise(bignum.BigInt.Xor)},
	"~":  {1, complement},
	"<<": {2, shift(bignum.BigInt.Shl)},
	">>": {2, shift(bignum.BigInt.Shr)},

	"**":     {2, power},
	"powmod": {3, powmod},
	"gcd":    {2, gcd},

	"floor": {1, rounding(Rat.Floor)},
	"ceil":  {1, rounding(Rat.Ceil)},
	"trunc": {1, rounding(Rat.Trunc)},
	"round": {1, rounding(Rat.Round)},
	"float": {1, toFloat},
	"hash":  {1, hash},
	"bits":  {1, bits},

	"dup":  {1, func(_ bignum.Family, a []Value) ([]Value, error) { return []Value{a[0], a[0]}, nil }},
	"drop": {1, func(bignum.Family, []Value) ([]Value, error) { return nil, nil }},
	"swap": {2, func(_ bignum.Family, a []Value) ([]Value, error) { return []Value{a[1], a[0]}, nil }},
}

func single(v Value) []Value { return []Value{v} }

func integers(args []Value) ([]bignum.BigInt, error) {
	out := make([]bignum.BigInt, len(args))
	for i, a := range args {
		x, ok := a.BigInt()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotInteger, a)
		}
		out[i] = x
	}
	return out, nil
}

func divisionByZero() error {
	return fmt.Errorf("calc: %w", bignum.ErrDivisionByZero)
}

// exact applies the integer form when both operands are integers.
func exact(ints func(x, y bignum.BigInt) bignum.BigInt, rats func(f, g Rat) Rat) opFunc {
	return func(_ bignum.Family, a []Value) ([]Value, error) {
		x, xok := a[0].BigInt()
		y, yok := a[1].BigInt()
		if xok && yok {
			return single(Int(ints(x, y))), nil
		}
		return single(Frac(rats(a[0].Rat(), a[1].Rat()))), nil
	}
}

func unary(ints func(bignum.BigInt) bignum.BigInt, rats func(Rat) Rat) opFunc {
	return func(_ bignum.Family, a []Value) ([]Value, error) {
		if x, ok := a[0].BigInt(); ok {
			return single(Int(ints(x))), nil
		}
		return single(Frac(rats(a[0].Rat()))), nil
	}
}

func divide(_ bignum.Family, a []Value) ([]Value, error) {
	q, ok := a[0].Rat().CheckedDiv(a[1].Rat())
	if !ok {
		return nil, divisionByZero()
	}
	return single(Frac(q)), nil
}

// euclid returns the Euclidean quotient and remainder of a[0] / a[1].
func euclid(a []Value) (Value, Value, error) {
	x, xok := a[0].BigInt()
	y, yok := a[1].BigInt()
	if xok && yok {
		q, r, ok := x.CheckedDivRemEuclid(y)
		if !ok {
			return Value{}, Value{}, divisionByZero()
		}
		return Int(q), Int(r), nil
	}
	q, r, ok := a[0].Rat().CheckedDivRemEuclid(a[1].Rat())
	if !ok {
		return Value{}, Value{}, divisionByZero()
	}
	return Int(q), Frac(r), nil
}

func divEuclid(_ bignum.Family, a []Value) ([]Value, error) {
	q, _, err := euclid(a)
	if err != nil {
		return nil, err
	}
	return single(q), nil
}

func remEuclid(_ bignum.Family, a []Value) ([]Value, error) {
	_, r, err := euclid(a)
	if err != nil {
		return nil, err
	}
	return single(r), nil
}

func divmod(_ bignum.Family, a []Value) ([]Value, error) {
	q, r, err := euclid(a)
	if err != nil {
		return nil, err
	}
	return []Value{q, r}, nil
}

// truncated returns the quotient rounded toward zero and the remainder
// carrying the sign of the dividend.
func truncated(a []Value) (Value, Value, error) {
	x, xok := a[0].BigInt()
	y, yok := a[1].BigInt()
	if xok && yok {
		q, r, ok := x.CheckedDivRem(y)
		if !ok {
			return Value{}, Value{}, divisionByZero()
		}
		return Int(q), Int(r), nil
	}
	f, g := a[0].Rat(), a[1].Rat()
	ratio, ok := f.CheckedDiv(g)
	if !ok {
		return Value{}, Value{}, divisionByZero()
	}
	q := ratio.Trunc()
	return Int(q), Frac(f.Sub(g.Mul(fraction.FromComponent(q)))), nil
}

func truncDiv(_ bignum.Family, a []Value) ([]Value, error) {
	q, _, err := truncated(a)
	if err != nil {
		return nil, err
	}
	return single(q), nil
}

func truncRem(_ bignum.Family, a []Value) ([]Value, error) {
	_, r, err := truncated(a)
	if err != nil {
		return nil, err
	}
	return single(r), nil
}

func bitwise(op func(x, y bignum.BigInt) bignum.BigInt) opFunc {
	return func(_ bignum.Family, a []Value) ([]Value, error) {
		xs, err := integers(a)
		if err != nil {
			return nil, err
		}
		return single(Int(op(xs[0], xs[1]))), nil
	}
}

func complement(_ bignum.Family, a []Value) ([]Value, error) {
	xs, err := integers(a)
	if err != nil {
		return nil, err
	}
	return single(Int(xs[0].Not())), nil
}

func shift(op func(x, n bignum.BigInt) (bignum.BigInt, error)) opFunc {
	return func(_ bignum.Family, a []Value) ([]Value, error) {
		xs, err := integers(a)
		if err != nil {
			return nil, err
		}
		r, err := op(xs[0], xs[1])
		if err != nil {
			return nil, err
		}
		return single(Int(r)), nil
	}
}

// power raises any value to an integer exponent. Negative exponents go
// through the fraction form.
func power(_ bignum.Family, a []Value) ([]Value, error) {
	exp, ok := a[1].BigInt()
	if !ok {
		return nil, fmt.Errorf("exponent %s: %w", a[1], ErrNotInteger)
	}
	if x, ok := a[0].BigInt(); ok && exp.Sign() >= 0 {
		r, err := x.CheckedPow(exp)
		if err != nil {
			return nil, err
		}
		return single(Int(r)), nil
	}
	r, err := a[0].Rat().CheckedPow(exp)
	if err != nil {
		return nil, err
	}
	return single(Frac(r)), nil
}

func powmod(_ bignum.Family, a []Value) ([]Value, error) {
	xs, err := integers(a)
	if err != nil {
		return nil, err
	}
	r, err := xs[0].CheckedPowRemEuclid(xs[1], xs[2])
	if err != nil {
		return nil, err
	}
	return single(Int(r)), nil
}

func gcd(_ bignum.Family, a []Value) ([]Value, error) {
	xs, err := integers(a)
	if err != nil {
		return nil, err
	}
	return single(Int(xs[0].Gcd(xs[1]))), nil
}

func rounding(op func(Rat) bignum.BigInt) opFunc {
	return func(_ bignum.Family, a []Value) ([]Value, error) {
		if a[0].IsInt() {
			return single(a[0]), nil
		}
		return single(Int(op(a[0].Rat()))), nil
	}
}

// toFloat replaces a value by the exact value of its nearest float64.
func toFloat(fam bignum.Family, a []Value) ([]Value, error) {
	f, err := a[0].Float64()
	if err != nil {
		return nil, err
	}
	q, err := fraction.FromFloat64(fam.Zero(), f)
	if err != nil {
		return nil, err
	}
	return single(Frac(q)), nil
}

func hash(fam bignum.Family, a []Value) ([]Value, error) {
	return single(Int(fam.FromInt64(a[0].Hash()))), nil
}

func bits(fam bignum.Family, a []Value) ([]Value, error) {
	xs, err := integers(a)
	if err != nil {
		return nil, err
	}
	n, err := safecast.Conv[int64](xs[0].BitLength())
	if err != nil {
		return nil, err
	}
	return single(Int(fam.FromInt64(n))), nil
}

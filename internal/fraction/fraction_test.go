package fraction

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"rithm/internal/bignum"
	"rithm/internal/digits"
)

type bigFraction = Fraction[bignum.BigInt]

func frac(t *testing.T, n, d int64) bigFraction {
	t.Helper()
	f, err := New(bignum.FromInt64(n), bignum.FromInt64(d))
	if err != nil {
		t.Fatalf("New(%d, %d): %v", n, d, err)
	}
	return f
}

func checkReduced[C Component[C]](t *testing.T, f Fraction[C]) {
	t.Helper()
	if f.den.Sign() <= 0 {
		t.Fatalf("%s: denominator %s is not positive", f, f.den)
	}
	if g := f.num.Gcd(f.den); g.Cmp(g.FromInt64(1)) != 0 {
		t.Fatalf("%s: gcd(num, den) = %s", f, g)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		n, d int64
		want string
	}{
		{6, 4, "3/2"},
		{-6, 4, "-3/2"},
		{6, -4, "-3/2"},
		{-6, -4, "3/2"},
		{0, -5, "0"},
		{10, 5, "2"},
		{1, 3, "1/3"},
	}
	for _, tt := range tests {
		f := frac(t, tt.n, tt.d)
		checkReduced(t, f)
		if f.String() != tt.want {
			t.Fatalf("New(%d, %d) = %s, want %s", tt.n, tt.d, f, tt.want)
		}
	}
	if _, err := New(bignum.FromInt64(1), bignum.BigInt{}); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("zero denominator error = %v", err)
	}
}

func TestZeroValue(t *testing.T) {
	var z bigFraction
	if !z.IsZero() || !z.IsIntegral() || z.String() != "0" {
		t.Fatalf("zero value = %s", z)
	}
	if d := z.Denominator(); !d.IsOne() {
		t.Fatalf("zero value denominator = %s", d)
	}
	one := FromComponent(bignum.FromInt64(1))
	for name, got := range map[string]bigFraction{
		"add": z.Add(one),
		"sub": one.Sub(z),
		"mul": z.Mul(frac(t, 3, 7)).Add(one),
	} {
		checkReduced(t, got)
		if !got.Equal(one) {
			t.Fatalf("%s with zero value = %s, want 1", name, got)
		}
	}
	if z.Cmp(frac(t, -1, 2)) != 1 || !z.Equal(frac(t, 0, 9)) {
		t.Fatalf("zero value compares wrongly")
	}
	if q, ok := z.CheckedDiv(one); !ok || !q.IsZero() {
		t.Fatalf("0 / 1 = %s, %v", q, ok)
	}
	if _, ok := one.CheckedDiv(z); ok {
		t.Fatalf("1 / zero value succeeded")
	}
	if f, err := z.Float64(); err != nil || f != 0 {
		t.Fatalf("Float64() = %v, %v", f, err)
	}
	if z.Hash() != 0 || z.Floor().Sign() != 0 {
		t.Fatalf("zero value hash or floor is not zero")
	}
}

func TestArithmetic(t *testing.T) {
	a, b := frac(t, 1, 2), frac(t, 1, 3)
	tests := []struct {
		name string
		got  bigFraction
		want string
	}{
		{"add", a.Add(b), "5/6"},
		{"sub", a.Sub(b), "1/6"},
		{"mul", a.Mul(b), "1/6"},
		{"div", a.Div(b), "3/2"},
		{"neg", a.Neg(), "-1/2"},
		{"abs", a.Neg().Abs(), "1/2"},
		{"cancel", a.Add(a), "1"},
		{"zero", a.Sub(a), "0"},
	}
	for _, tt := range tests {
		checkReduced(t, tt.got)
		if tt.got.String() != tt.want {
			t.Fatalf("%s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
	if _, ok := a.CheckedDiv(frac(t, 0, 1)); ok {
		t.Fatalf("division by zero reported ok")
	}
}

func TestArithmeticProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(41, 42))
	draw := func() Fraction[small] {
		d := small(r.IntN(40) + 1)
		if r.IntN(2) == 0 {
			d = -d
		}
		return MustNew(small(r.IntN(81)-40), d)
	}
	for range 2000 {
		a, b, c := draw(), draw(), draw()
		for _, f := range []Fraction[small]{a.Add(b), a.Sub(b), a.Mul(b)} {
			checkReduced(t, f)
		}
		if !a.Add(b).Sub(b).Equal(a) {
			t.Fatalf("%s + %s - %s != %s", a, b, b, a)
		}
		if !a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))) {
			t.Fatalf("distributivity fails for %s %s %s", a, b, c)
		}
		if q, ok := a.CheckedDiv(b); ok {
			checkReduced(t, q)
			if !q.Mul(b).Equal(a) {
				t.Fatalf("(%s / %s) * %s != %s", a, b, b, a)
			}
		}
		if (a.Cmp(b) < 0) != (a.Sub(b).Sign() < 0) {
			t.Fatalf("Cmp(%s, %s) = %d", a, b, a.Cmp(b))
		}
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		n, d                    int64
		floor, ceil, trunc, rnd int64
	}{
		{7, 2, 3, 4, 3, 4},
		{5, 2, 2, 3, 2, 2},
		{-5, 2, -3, -2, -2, -2},
		{-7, 2, -4, -3, -3, -4},
		{1, 3, 0, 1, 0, 0},
		{-1, 3, -1, 0, 0, 0},
		{2, 3, 0, 1, 0, 1},
		{4, 1, 4, 4, 4, 4},
	}
	for _, tt := range tests {
		f := frac(t, tt.n, tt.d)
		got := [4]string{f.Floor().String(), f.Ceil().String(), f.Trunc().String(), f.Round().String()}
		want := [4]string{
			bignum.FromInt64(tt.floor).String(), bignum.FromInt64(tt.ceil).String(),
			bignum.FromInt64(tt.trunc).String(), bignum.FromInt64(tt.rnd).String(),
		}
		if got != want {
			t.Fatalf("rounding %s = %v, want %v", f, got, want)
		}
	}
}

func TestDivRemEuclid(t *testing.T) {
	tests := []struct {
		a, b bigFraction
		q    int64
		rem  string
	}{
		{frac(t, 7, 2), frac(t, 1, 1), 3, "1/2"},
		{frac(t, -7, 2), frac(t, 1, 1), -4, "1/2"},
		{frac(t, 7, 2), frac(t, -2, 3), -5, "1/6"},
		{frac(t, 1, 3), frac(t, 1, 2), 0, "1/3"},
	}
	for _, tt := range tests {
		q, r, ok := tt.a.CheckedDivRemEuclid(tt.b)
		if !ok {
			t.Fatalf("CheckedDivRemEuclid(%s, %s) not ok", tt.a, tt.b)
		}
		if v, _ := q.Int64(); v != tt.q || r.String() != tt.rem {
			t.Fatalf("divrem_euclid(%s, %s) = (%s, %s), want (%d, %s)", tt.a, tt.b, q, r, tt.q, tt.rem)
		}
		if r.Sign() < 0 || r.Cmp(tt.b.Abs()) >= 0 {
			t.Fatalf("remainder %s out of range for %s", r, tt.b)
		}
		if back := FromComponent(q).Mul(tt.b).Add(r); !back.Equal(tt.a) {
			t.Fatalf("q*b + r = %s, want %s", back, tt.a)
		}
		if dq, _ := tt.a.CheckedDivEuclid(tt.b); !dq.Equal(q) {
			t.Fatalf("CheckedDivEuclid = %s, want %s", dq, q)
		}
		if dr, _ := tt.a.CheckedRemEuclid(tt.b); !dr.Equal(r) {
			t.Fatalf("CheckedRemEuclid = %s, want %s", dr, r)
		}
	}
	if _, _, ok := frac(t, 1, 2).CheckedDivRemEuclid(frac(t, 0, 1)); ok {
		t.Fatalf("divrem_euclid by zero reported ok")
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		f    bigFraction
		e    int64
		want string
	}{
		{frac(t, 2, 3), 3, "8/27"},
		{frac(t, -2, 3), 3, "-8/27"},
		{frac(t, -2, 3), -2, "9/4"},
		{frac(t, -2, 3), -3, "-27/8"},
		{frac(t, 5, 7), 0, "1"},
		{frac(t, 0, 1), 0, "1"},
	}
	for _, tt := range tests {
		got, err := tt.f.CheckedPow(bignum.FromInt64(tt.e))
		if err != nil {
			t.Fatalf("(%s) ** %d: %v", tt.f, tt.e, err)
		}
		checkReduced(t, got)
		if got.String() != tt.want {
			t.Fatalf("(%s) ** %d = %s, want %s", tt.f, tt.e, got, tt.want)
		}
	}
	if _, err := frac(t, 0, 1).CheckedPow(bignum.FromInt64(-1)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("0 ** -1 error = %v", err)
	}
}

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{0.5, "1/2"},
		{-0.75, "-3/4"},
		{3, "3"},
		{0.1, "3602879701896397/36028797018963968"},
		{1e20, "100000000000000000000"},
		{math.SmallestNonzeroFloat64, "1/" + pow2(1074)},
	}
	for _, tt := range tests {
		f, err := FromFloat64(bignum.BigInt{}, tt.v)
		if err != nil {
			t.Fatalf("FromFloat64(%v): %v", tt.v, err)
		}
		checkReduced(t, f)
		if f.String() != tt.want {
			t.Fatalf("FromFloat64(%v) = %s, want %s", tt.v, f, tt.want)
		}
		if back, err := f.Float64(); err != nil || back != tt.v {
			t.Fatalf("Float64(%s) = %v, %v; want %v", f, back, err, tt.v)
		}
	}
	if _, err := FromFloat64(bignum.BigInt{}, math.Inf(-1)); !errors.Is(err, ErrInfinity) {
		t.Fatalf("FromFloat64(-Inf) error = %v", err)
	}
	if _, err := FromFloat64(bignum.BigInt{}, math.NaN()); !errors.Is(err, ErrNaN) {
		t.Fatalf("FromFloat64(NaN) error = %v", err)
	}
}

func pow2(n int) string {
	x, _ := bignum.FromInt64(1).Lsh(n)
	return x.String()
}

func TestFromFloat64KeepsFamily(t *testing.T) {
	fam := digits.MustFamily(digits.Config{Width: digits.Width8})
	f, err := FromFloat64(bignum.In(fam).Zero(), 1.25)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	if f.Numerator().Family() != fam || f.Denominator().Family() != fam {
		t.Fatalf("components lost their family")
	}
}

func TestFloat64Overflow(t *testing.T) {
	huge, _ := bignum.FromInt64(1).Lsh(2000)
	f := MustNew(huge, bignum.FromInt64(3))
	if _, err := f.Float64(); !errors.Is(err, ErrFloatOverflow) {
		t.Fatalf("Float64 overflow error = %v", err)
	}
	if v, err := MustNew(bignum.FromInt64(1), huge).Float64(); err != nil || v != 0 {
		t.Fatalf("Float64 underflow = %v, %v", v, err)
	}
}

func TestHash(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 2, -7, 1 << 62} {
		integral := FromComponent(bignum.FromInt64(n))
		if got, want := integral.Hash(), bignum.FromInt64(n).Hash(); got != want {
			t.Fatalf("Hash(%d/1) = %d, want %d", n, got, want)
		}
	}
	// 2^-1 mod (2^61 - 1) is 2^60.
	if got := frac(t, 1, 2).Hash(); got != 1<<60 {
		t.Fatalf("Hash(1/2) = %d, want %d", got, int64(1)<<60)
	}
	if got := frac(t, -1, 2).Hash(); got != -(1 << 60) {
		t.Fatalf("Hash(-1/2) = %d", got)
	}
	modulus := bignum.FromUint64(digits.HashModulus)
	if got := MustNew(bignum.FromInt64(1), modulus).Hash(); got != digits.HashInfinity {
		t.Fatalf("Hash(1/M) = %d, want %d", got, digits.HashInfinity)
	}
	if frac(t, 3, 6).Hash() != frac(t, 1, 2).Hash() {
		t.Fatalf("equal fractions hash differently")
	}
}

func TestSmallComponent(t *testing.T) {
	f := MustNew(small(6), small(-4))
	if f.String() != "-3/2" || f.Floor() != -2 || f.Round() != -2 {
		t.Fatalf("small fraction = %s floor %d round %d", f, f.Floor(), f.Round())
	}
	if got := f.Pow(small(-1)); got.String() != "-2/3" {
		t.Fatalf("(-3/2) ** -1 = %s", got)
	}
	if !f.Mul(MustNew(small(-2), small(3))).IsOne() {
		t.Fatalf("(-3/2) * (-2/3) != 1")
	}
	if !FromComponent(small(4)).IsIntegral() || f.IsIntegral() {
		t.Fatalf("IsIntegral wrong")
	}
}

func TestMsgpack(t *testing.T) {
	in := []bigFraction{frac(t, -3, 2), frac(t, 5, 1), frac(t, 0, 7)}
	b, err := msgpack.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out []bigFraction
	if err := msgpack.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("decoded %d fractions, want %d", len(out), len(in))
	}
	for i := range in {
		if !out[i].Equal(in[i]) {
			t.Fatalf("fraction %d = %s, want %s", i, out[i], in[i])
		}
	}
}

package calc

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rithm/internal/bignum"
	"rithm/internal/digits"
	"rithm/internal/trace"
)

var widths = []digits.Width{digits.Width8, digits.Width16, digits.Width32}

func stackText(c *Calculator) string {
	parts := make([]string, 0, c.Depth())
	for _, v := range c.Stack() {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, " ")
}

func TestEval(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"1 2 +", "3"},
		{"0x_ff 0b11 *", "765"},
		{"1_000_000_000_000 dup *", "1000000000000000000000000"},
		{"7 2 /", "7/2"},
		{"6 4 /", "3/2"},
		{"6 3 /", "2"},
		{"1/3 1/6 +", "1/2"},
		{"1/2 1/2 +", "1"},
		{"7 -2 //", "-3"},
		{"7 -2 %", "1"},
		{"-7 2 divmod", "-4 1"},
		{"-7 2 tdiv", "-3"},
		{"-7 2 trem", "-1"},
		{"7/2 -2/3 divmod", "-5 1/6"},
		{"-7/2 1 trem", "-1/2"},
		{"5 neg abs", "5"},
		{"-3/4 abs", "3/4"},
		{"12 10 &", "8"},
		{"12 10 |", "14"},
		{"12 10 ^", "6"},
		{"0 ~", "-1"},
		{"1 100 <<", "1267650600228229401496703205376"},
		{"-1 1000 >>", "-1"},
		{"2 10 **", "1024"},
		{"2 -3 **", "1/8"},
		{"2/3 -2 **", "9/4"},
		{"2 -1 5 powmod", "3"},
		{"12 18 gcd", "6"},
		{"7/2 floor 7/2 ceil -7/2 trunc 5/2 round", "3 4 -3 2"},
		{"0.5", "1/2"},
		{"1e3", "1000"},
		{"0x1p-2", "1/4"},
		{"1/3 float", "6004799503160661/18014398509481984"},
		{"255 bits", "8"},
		{"0 bits -255 bits 1 64 << bits", "0 8 65"},
		{"1 2 swap drop", "2"},
		{"1 2 3 clear 4", "4"},
		{"1 2 + # comment 5", "3"},
		{"１２ －３ +", "9"},
		{"−5", "-5"},
	}
	for _, w := range widths {
		fam := digits.MustFamily(digits.Config{Width: w})
		for _, tt := range tests {
			c := New(fam)
			require.NoError(t, c.Eval(context.Background(), tt.line), "width %v: %s", w, tt.line)
			require.Equal(t, tt.want, stackText(c), "width %v: %s", w, tt.line)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		line string
		pos  int
		err  error
	}{
		{"1 +", 2, ErrStackUnderflow},
		{"1 0 /", 3, bignum.ErrDivisionByZero},
		{"1 0 //", 3, bignum.ErrDivisionByZero},
		{"1/0", 1, bignum.ErrDivisionByZero},
		{"1/2 1 &", 3, ErrNotInteger},
		{"2 1/2 **", 3, ErrNotInteger},
		{"0 -1 **", 3, bignum.ErrDivisionByZero},
		{"1 -1 <<", 3, bignum.ErrNegativeShift},
		{"2 -1 4 powmod 1", 4, bignum.ErrCannotInvert},
		{"1 frobnicate", 2, ErrUnknownToken},
		{"inf", 1, ErrUnknownToken},
		{"1e400", 1, ErrFloatRange},
		{"1__0", 1, bignum.ErrConsecutiveSeparators},
		{"0x", 1, bignum.ErrNoDigits},
	}
	for _, tt := range tests {
		c := New(nil)
		err := c.Eval(context.Background(), tt.line)
		require.ErrorIs(t, err, tt.err, tt.line)
		var calcErr *Error
		require.True(t, errors.As(err, &calcErr), tt.line)
		require.Equal(t, tt.pos, calcErr.Pos, tt.line)
	}
}

func TestEvalRollsBack(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Eval(context.Background(), "1 2"))
	err := c.Eval(context.Background(), "3 + 0 /")
	require.Error(t, err)
	require.Equal(t, "1 2", stackText(c))

	require.NoError(t, c.Eval(context.Background(), "+"))
	top, ok := c.Top()
	require.True(t, ok)
	require.Equal(t, "3", top.String())
}

func TestValue(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Eval(context.Background(), "-10/4 5 1/1"))
	stack := c.Stack()
	require.Len(t, stack, 3)

	require.False(t, stack[0].IsInt())
	require.Equal(t, "-5/2", stack[0].String())
	require.Equal(t, "-101/10", stack[0].Text(2))
	require.Equal(t, -1, stack[0].Sign())
	require.True(t, stack[2].IsInt(), "integral fractions collapse")
	require.Equal(t, 1, stack[1].Cmp(stack[0]))

	f, err := stack[0].Float64()
	require.NoError(t, err)
	require.Equal(t, -2.5, f)

	require.Equal(t, stack[1].Hash(), Frac(stack[1].Rat()).Hash())
}

func TestHashAcrossWidths(t *testing.T) {
	var want []string
	for _, w := range widths {
		c := New(digits.MustFamily(digits.Config{Width: w}))
		require.NoError(t, c.Eval(context.Background(), "123456789012345678901234567890 hash 1/3 hash"))
		got := strings.Fields(stackText(c))
		if want == nil {
			want = got
		}
		require.Equal(t, want, got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := New(digits.MustFamily(digits.Config{Width: digits.Width8}))
	require.NoError(t, src.Eval(context.Background(), "-3/7 99999999999999999999 0"))

	var buf bytes.Buffer
	require.NoError(t, src.Save(&buf))

	dst := New(nil)
	require.NoError(t, dst.Eval(context.Background(), "42"))
	require.NoError(t, dst.Load(&buf))
	require.Equal(t, stackText(src), stackText(dst))
	for _, v := range dst.Stack() {
		require.Equal(t, digits.Default(), v.Rat().Numerator().Family())
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	c := New(nil)
	require.Error(t, c.Load(bytes.NewReader([]byte{0xc1})))
}

func TestEvalTraces(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	c := New(nil)
	require.NoError(t, c.Eval(ctx, "1 2 +"))

	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Kind.String()+":"+ev.Name)
	}
	require.Equal(t, []string{"begin:line", "point:1", "point:2", "point:+", "end:line"}, names)
}

func TestOperators(t *testing.T) {
	ops := Operators()
	require.Contains(t, ops, "clear")
	require.Contains(t, ops, "powmod")
	require.IsNonDecreasing(t, ops)
}

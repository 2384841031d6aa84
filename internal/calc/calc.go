// Package calc evaluates reverse Polish notation over exact integers and
// fractions.
//
// A line is a sequence of whitespace separated tokens. Literals push a value;
// operators pop their operands and push results. A line either applies as a
// whole or leaves the stack untouched.
package calc

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"rithm/internal/bignum"
	"rithm/internal/digits"
	"rithm/internal/fraction"
	"rithm/internal/trace"
)

var (
	ErrStackUnderflow = errors.New("not enough operands")
	ErrUnknownToken   = errors.New("unknown token")
	ErrNotInteger     = errors.New("operand is not an integer")
	ErrFloatRange     = errors.New("float literal out of range")
)

// Error reports the token a line failed at.
type Error struct {
	Pos   int // 1-based token position within the line
	Token string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Pos, e.Token, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Calculator holds an operand stack of one digit family.
type Calculator struct {
	fam   bignum.Family
	stack []Value
}

// New returns an empty calculator. A nil fam selects the default family.
func New(fam *digits.Family) *Calculator {
	return &Calculator{fam: bignum.In(fam)}
}

// Family returns the integer family values are built in.
func (c *Calculator) Family() bignum.Family { return c.fam }

// Depth returns the number of values on the stack.
func (c *Calculator) Depth() int { return len(c.stack) }

// Stack returns a copy of the stack, bottom first.
func (c *Calculator) Stack() []Value { return slices.Clone(c.stack) }

// Top returns the topmost value.
func (c *Calculator) Top() (Value, bool) {
	if len(c.stack) == 0 {
		return Value{}, false
	}
	return c.stack[len(c.stack)-1], true
}

// Push places v on top of the stack.
func (c *Calculator) Push(v Value) { c.stack = append(c.stack, v.In(c.fam)) }

// Reset empties the stack.
func (c *Calculator) Reset() { c.stack = c.stack[:0] }

var unicodeMinus = strings.NewReplacer("−", "-")

// Tokenize normalizes line and splits it into tokens. Text after '#' is a
// comment.
func Tokenize(line string) []string {
	line = unicodeMinus.Replace(norm.NFKC.String(line))
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

// Eval applies every token of line. On error the stack is restored and the
// returned *Error names the failing token.
func (c *Calculator) Eval(ctx context.Context, line string) error {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}
	tracer := trace.FromContext(ctx)
	_, span := trace.StartSpan(ctx, trace.ScopeCommand, "line")

	saved := slices.Clone(c.stack)
	for i, tok := range tokens {
		if err := c.step(tok); err != nil {
			c.stack = saved
			span.WithExtra("token", tok).End("error")
			return &Error{Pos: i + 1, Token: tok, Err: err}
		}
		if tracer.Enabled() {
			trace.Point(tracer, trace.ScopeOp, tok, strconv.Itoa(len(c.stack)), span.ID())
		}
	}
	span.WithExtra("depth", strconv.Itoa(len(c.stack))).End("")
	return nil
}

func (c *Calculator) step(tok string) error {
	if tok == "clear" {
		c.Reset()
		return nil
	}
	if op, ok := operators[tok]; ok {
		if len(c.stack) < op.arity {
			return fmt.Errorf("%w: %s needs %d, have %d", ErrStackUnderflow, tok, op.arity, len(c.stack))
		}
		base := len(c.stack) - op.arity
		out, err := op.fn(c.fam, c.stack[base:])
		if err != nil {
			return err
		}
		c.stack = append(c.stack[:base], out...)
		return nil
	}
	v, err := c.literal(tok)
	if err != nil {
		return err
	}
	c.stack = append(c.stack, v)
	return nil
}

// literal parses an integer, an n/d fraction or a float token.
func (c *Calculator) literal(tok string) (Value, error) {
	if num, den, ok := strings.Cut(tok, "/"); ok {
		n, err := c.fam.Parse(num, 0)
		if err != nil {
			return Value{}, err
		}
		d, err := c.fam.Parse(den, 0)
		if err != nil {
			return Value{}, err
		}
		f, err := fraction.New(n, d)
		if err != nil {
			return Value{}, err
		}
		return Frac(f), nil
	}
	x, err := c.fam.Parse(tok, 0)
	if err == nil {
		return Int(x), nil
	}
	if looksLikeWord(tok) {
		return Value{}, ErrUnknownToken
	}
	f, ferr := strconv.ParseFloat(tok, 64)
	if ferr != nil {
		if errors.Is(ferr, strconv.ErrRange) {
			return Value{}, ErrFloatRange
		}
		return Value{}, err
	}
	q, err := fraction.FromFloat64(c.fam.Zero(), f)
	if err != nil {
		return Value{}, err
	}
	return Frac(q), nil
}

// looksLikeWord reports tokens that start with a letter and therefore
// cannot be a decimal literal.
func looksLikeWord(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")
	if tok == "" {
		return true
	}
	ch := tok[0]
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// Operators returns the operator names in sorted order.
func Operators() []string {
	names := append(slices.Collect(maps.Keys(operators)), "clear")
	slices.Sort(names)
	return names
}

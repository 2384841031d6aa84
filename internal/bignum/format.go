package bignum

import (
	"fmt"
	"strings"

	"rithm/internal/digits"
)

// String returns the decimal representation of x.
func (x BigInt) String() string { return x.Text(10) }

// Text returns x in radix (2..36) with lowercase digits and a leading '-'
// for negative values. It panics on an invalid radix.
func (x BigInt) Text(radix int) string {
	if radix < 2 || radix > digits.MaxRadix {
		panic(fmt.Errorf("%w, got %d", ErrInvalidRadix, radix))
	}
	if x.sign == 0 {
		return "0"
	}
	f := x.family()
	var sb strings.Builder
	if x.sign < 0 {
		sb.WriteByte('-')
	}
	if bitsPer := digits.RadixBits(radix); bitsPer != 0 {
		packed := digits.Repack(x.digits, f.Shift(), bitsPer)
		sb.Grow(len(packed))
		for i := len(packed) - 1; i >= 0; i-- {
			sb.WriteByte(digits.DigitChar(packed[i]))
		}
		return sb.String()
	}

	rc := f.RadixConstants(radix)
	chunks := f.ToRadixDigits(x.digits, rc.BatchPower)
	sb.Grow(len(chunks) * rc.BatchExponent)
	buf := make([]byte, rc.BatchExponent)
	r := digits.Digit(radix) //nolint:gosec // G115: radix is in 2..36.
	for i := len(chunks) - 1; i >= 0; i-- {
		c := chunks[i]
		pos := len(buf)
		for c != 0 || (i != len(chunks)-1 && pos > 0) {
			pos--
			buf[pos] = digits.DigitChar(c % r)
			c /= r
		}
		sb.Write(buf[pos:])
	}
	return sb.String()
}

// Format implements fmt.Formatter for the verbs b, o, d, x, X, s and v.
func (x BigInt) Format(s fmt.State, verb rune) {
	var text string
	switch verb {
	case 'b':
		text = x.Text(2)
	case 'o':
		text = x.Text(8)
	case 'x':
		text = x.Text(16)
	case 'X':
		text = strings.ToUpper(x.Text(16))
	case 'd', 's', 'v':
		text = x.Text(10)
	default:
		fmt.Fprintf(s, "%%!%c(bignum.BigInt=%s)", verb, x.String())
		return
	}
	if s.Flag('+') && x.sign >= 0 {
		text = "+" + text
	}
	if w, ok := s.Width(); ok && len(text) < w {
		pad := strings.Repeat(" ", w-len(text))
		if s.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}
	_, _ = s.Write([]byte(text))
}

package bignum

import (
	"fmt"
	"strings"

	"rithm/internal/digits"
)

// Parse parses text in radix (0 or 2..36) into a BigInt of the default family.
//
// Radix 0 infers the base from a 0b, 0o or 0x prefix and defaults to 10. A
// prefix matching an explicit radix is skipped too. Digits may be grouped by
// single separators; one separator may follow the prefix directly and one may
// trail the digits, but none may follow a leading 0 that is not a prefix.
func Parse(text string, radix int) (BigInt, error) {
	return In(nil).Parse(text, radix)
}

// ParseIn is Parse for an explicit family.
func ParseIn(fam *digits.Family, text string, radix int) (BigInt, error) {
	return In(fam).Parse(text, radix)
}

// MustParse is like Parse but panics if the text cannot be parsed.
func MustParse(text string, radix int) BigInt {
	x, err := Parse(text, radix)
	if err != nil {
		panic(err)
	}
	return x
}

// Parse parses text into an integer of the family.
func (b Family) Parse(text string, radix int) (BigInt, error) {
	if radix != 0 && (radix < 2 || radix > digits.MaxRadix) {
		return BigInt{}, fmt.Errorf("%w, got %d", ErrInvalidRadix, radix)
	}
	s := strings.TrimSpace(text)
	var sign digits.Sign = 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	sep := b.f.Separator()
	afterPrefix := false
	if len(s) >= 2 && s[0] == '0' {
		if base := prefixRadix(s[1]); base != 0 && (radix == 0 || radix == base) {
			radix = base
			s = s[2:]
			if s != "" && s[0] == sep {
				s = s[1:]
				afterPrefix = true
			}
		} else if s[1] == sep {
			// Only a radix prefix may be followed by a separator.
			return BigInt{}, fmt.Errorf("parse %q: %w", text, ErrLeadingSeparator)
		}
	}
	if radix == 0 {
		radix = 10
	}

	values, err := scanDigits(s, radix, sep, afterPrefix)
	if err != nil {
		return BigInt{}, fmt.Errorf("parse %q: %w", text, err)
	}
	var mag []digits.Digit
	if digits.RadixBits(radix) != 0 {
		mag = b.f.FromBinaryRadixDigits(values, radix)
	} else {
		mag = b.f.FromRadixDigits(values, radix)
	}
	return wrap(b.f, digits.Number{Sign: sign, Digits: mag}), nil
}

func prefixRadix(ch byte) int {
	switch ch {
	case 'b', 'B':
		return 2
	case 'o', 'O':
		return 8
	case 'x', 'X':
		return 16
	default:
		return 0
	}
}

// scanDigits validates the digit run and returns digit values, most
// significant first. sepBefore reports a separator consumed just before s.
func scanDigits(s string, radix int, sep byte, sepBefore bool) ([]digits.Digit, error) {
	if s == "" {
		return nil, ErrNoDigits
	}
	if s[0] == sep && !sepBefore {
		return nil, ErrLeadingSeparator
	}
	values := make([]digits.Digit, 0, len(s))
	prevSep := sepBefore
	for i := range len(s) {
		ch := s[i]
		if ch == sep {
			if prevSep {
				return nil, ErrConsecutiveSeparators
			}
			prevSep = true
			continue
		}
		v, ok := digits.DigitValue(ch, radix)
		if !ok {
			return nil, &InvalidDigitError{Radix: radix, Char: ch}
		}
		values = append(values, v)
		prevSep = false
	}
	return values, nil
}

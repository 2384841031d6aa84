package digits

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero indicates an undefined division.
	ErrDivisionByZero = errors.New("division by zero is undefined")
	// ErrNegativeShift indicates a shift by a negative amount.
	ErrNegativeShift = errors.New("negative shift count")
	// ErrCapacityExceeded indicates a result would be longer than MaxDigits.
	ErrCapacityExceeded = errors.New("numeric capacity exceeded")
	// ErrNegativeExponent indicates an integer power with a negative exponent.
	ErrNegativeExponent = errors.New("negative exponent")
	// ErrCannotInvert indicates a modular inverse does not exist.
	ErrCannotInvert = errors.New("base is not invertible for the given modulus")

	ErrInvalidRadix          = errors.New("radix should be zero or in range from 2 to 36")
	ErrInvalidDigit          = errors.New("invalid digit")
	ErrConsecutiveSeparators = errors.New("consecutive separators found")
	ErrLeadingSeparator      = errors.New("should not start with separator")
	ErrNoDigits              = errors.New("no digits found")

	ErrInfinity      = errors.New("conversion of infinity is undefined")
	ErrNaN           = errors.New("conversion of NaN is undefined")
	ErrFloatOverflow = errors.New("too large to convert to floating point")
)

// InvalidDigitError reports a character that is not a digit of the active radix.
type InvalidDigitError struct {
	Radix int
	Char  byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("%v in base %d: %q", ErrInvalidDigit, e.Radix, e.Char)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }

// InversionError reports a failed modular inverse.
type InversionError struct {
	ZeroModulus bool
}

func (e *InversionError) Error() string {
	if e.ZeroModulus {
		return "modulus should not be zero"
	}
	return ErrCannotInvert.Error()
}

func (e *InversionError) Unwrap() error { return ErrCannotInvert }

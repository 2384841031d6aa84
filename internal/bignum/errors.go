package bignum

import (
	"fmt"

	"rithm/internal/digits"
)

// Errors returned by BigInt operations. They are the digits sentinels, so
// errors.Is matches across packages.
var (
	ErrDivisionByZero        = digits.ErrDivisionByZero
	ErrNegativeShift         = digits.ErrNegativeShift
	ErrShiftTooLarge         = digits.ErrCapacityExceeded
	ErrNegativeExponent      = digits.ErrNegativeExponent
	ErrCannotInvert          = digits.ErrCannotInvert
	ErrInvalidRadix          = digits.ErrInvalidRadix
	ErrInvalidDigit          = digits.ErrInvalidDigit
	ErrConsecutiveSeparators = digits.ErrConsecutiveSeparators
	ErrLeadingSeparator      = digits.ErrLeadingSeparator
	ErrNoDigits              = digits.ErrNoDigits
	ErrFloatOverflow         = digits.ErrFloatOverflow
)

type (
	InvalidDigitError = digits.InvalidDigitError
	InversionError    = digits.InversionError
)

func divisionByZero(op string) error {
	return fmt.Errorf("bignum: %s: %w", op, ErrDivisionByZero)
}

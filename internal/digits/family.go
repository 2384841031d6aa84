package digits

import (
	"fmt"
	"math/bits"
	"sync"
)

// Digit is one word of the positional representation.
type Digit = uint32

// DoubleDigit is wide enough to hold the product of two digits plus a carry.
type DoubleDigit = uint64

// SignedDoubleDigit accumulates borrows during subtraction and two's-complement conversion.
type SignedDoubleDigit = int64

// Sign is -1, 0 or 1.
type Sign = int8

// Width selects the storage word of a family. One bit of every word is kept
// free, so a Width32 family stores 31 payload bits per digit.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// String returns the string representation of Width.
func (w Width) String() string {
	switch w {
	case Width8, Width16, Width32:
		return fmt.Sprintf("%d-bit", uint8(w))
	default:
		return "unknown"
	}
}

// ParseWidth converts a bit count to Width.
func ParseWidth(n int) (Width, error) {
	switch n {
	case 8:
		return Width8, nil
	case 16:
		return Width16, nil
	case 32:
		return Width32, nil
	default:
		return 0, fmt.Errorf("invalid digit width: %d (expected: 8|16|32)", n)
	}
}

// DefaultSeparator groups digits in textual input.
const DefaultSeparator = '_'

// MaxDigits is the maximum number of digits a shift or power may produce.
const MaxDigits = 1 << 24

// Config describes an arithmetic family.
type Config struct {
	Width     Width
	Separator byte
}

// DefaultConfig returns the configuration of the default family.
func DefaultConfig() Config {
	return Config{Width: Width32, Separator: DefaultSeparator}
}

// Family holds the constants shared by every integer of one configuration.
// A Family is immutable after construction and safe for concurrent use.
type Family struct {
	cfg   Config
	shift uint
	mask  Digit
	radix [MaxRadix + 1]radixSlot
}

type radixSlot struct {
	once sync.Once
	c    RadixConstants
}

// NewFamily validates cfg and builds a Family for it.
func NewFamily(cfg Config) (*Family, error) {
	switch cfg.Width {
	case Width8, Width16, Width32:
	default:
		return nil, fmt.Errorf("invalid digit width: %d (expected: 8|16|32)", uint8(cfg.Width))
	}
	if cfg.Separator == 0 {
		cfg.Separator = DefaultSeparator
	}
	if digitValues[cfg.Separator] < invalidDigit || cfg.Separator == '+' || cfg.Separator == '-' || isSpace(cfg.Separator) {
		return nil, fmt.Errorf("invalid separator %q: must not be a digit, sign or space", cfg.Separator)
	}
	shift := uint(cfg.Width) - 1
	return &Family{
		cfg:   cfg,
		shift: shift,
		mask:  Digit(1)<<shift - 1,
	}, nil
}

// MustFamily is like NewFamily but panics on an invalid configuration.
func MustFamily(cfg Config) *Family {
	f, err := NewFamily(cfg)
	if err != nil {
		panic(err)
	}
	return f
}

var defaultFamily = MustFamily(DefaultConfig())

// Default returns the shared 32-bit family.
func Default() *Family { return defaultFamily }

// Config returns the configuration the family was built from.
func (f *Family) Config() Config { return f.cfg }

// Shift returns the number of payload bits per digit.
func (f *Family) Shift() uint { return f.shift }

// Mask returns the largest digit value.
func (f *Family) Mask() Digit { return f.mask }

// Separator returns the digit-group separator.
func (f *Family) Separator() byte { return f.cfg.Separator }

// Compatible reports whether both families use the same digit layout.
func (f *Family) Compatible(g *Family) bool {
	return f == g || f.shift == g.shift
}

func (f *Family) String() string {
	return fmt.Sprintf("family(%s, sep=%q)", f.cfg.Width, f.cfg.Separator)
}

func digitBitLen(d Digit) uint {
	return uint(bits.Len32(d))
}

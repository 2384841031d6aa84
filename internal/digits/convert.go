package digits

import (
	"math"
	"math/bits"
)

// MaxRadix is the largest radix with a single-character digit alphabet.
const MaxRadix = 36

const invalidDigit = MaxRadix + 1

// digitValues maps ASCII characters to digit values; invalidDigit marks
// characters that are not digits in any radix.
var digitValues = func() (t [256]byte) {
	for i := range t {
		t[i] = invalidDigit
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = byte(c-'a') + 10
		t[c-'a'+'A'] = byte(c-'a') + 10
	}
	return t
}()

// DigitValue returns the value of ch as a digit and whether it is below radix.
func DigitValue(ch byte, radix int) (Digit, bool) {
	v := digitValues[ch]
	return Digit(v), int(v) < radix
}

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// DigitChar returns the lowercase character for a digit value below MaxRadix.
func DigitChar(v Digit) byte { return digitChars[v] }

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// RadixConstants are the per-radix values used by base conversion.
type RadixConstants struct {
	// LogFactor is ln(radix) / ln(2^shift): output digits per input character.
	LogFactor float64
	// BatchExponent is the largest k with radix^k <= 2^shift.
	BatchExponent int
	// BatchPower is radix^BatchExponent.
	BatchPower DoubleDigit
}

// RadixConstants returns the cached constants for radix (2..36). They are
// computed on first use, once per family and radix.
func (f *Family) RadixConstants(radix int) RadixConstants {
	slot := &f.radix[radix]
	slot.once.Do(func() {
		base := DoubleDigit(1) << f.shift
		r := DoubleDigit(radix) //nolint:gosec // G115: radix is in 2..36.
		power, exponent := r, 1
		for power*r <= base {
			power *= r
			exponent++
		}
		slot.c = RadixConstants{
			LogFactor:     math.Log(float64(radix)) / math.Log(float64(base)),
			BatchExponent: exponent,
			BatchPower:    power,
		}
	})
	return slot.c
}

// RadixBits returns log2(radix) for power-of-two radixes and 0 otherwise.
func RadixBits(radix int) uint {
	if radix < 2 || radix&(radix-1) != 0 {
		return 0
	}
	return uint(bits.TrailingZeros(uint(radix))) //nolint:gosec // G115: radix is positive.
}

// Repack regroups the bits of a little-endian digit sequence from srcShift
// bits per digit to dstShift bits per digit. Both shifts must be at most 31.
func Repack(src []Digit, srcShift, dstShift uint) []Digit {
	src = Trim(src)
	if srcShift == dstShift {
		return Clone(src)
	}
	totalBits := uint64(len(src)) * uint64(srcShift)
	out := make([]Digit, 0, totalBits/uint64(dstShift)+1)
	dstMask := DoubleDigit(1)<<dstShift - 1
	var acc DoubleDigit
	var have uint
	for _, d := range src {
		acc |= DoubleDigit(d) << have
		have += srcShift
		for have >= dstShift {
			out = append(out, Digit(acc&dstMask))
			acc >>= dstShift
			have -= dstShift
		}
	}
	if have > 0 {
		out = append(out, Digit(acc)) //nolint:gosec // G115: fewer than dstShift bits remain.
	}
	return Trim(out)
}

// ToRadixDigits converts a magnitude to little-endian digits in targetBase,
// which must not exceed 2^shift. Each output digit is produced by repeatedly
// scaling the partial result by 2^shift and folding in the next input digit.
func (f *Family) ToRadixDigits(d []Digit, targetBase DoubleDigit) []Digit {
	d = Trim(d)
	out := make([]Digit, 0, len(d)+1)
	for i := len(d) - 1; i >= 0; i-- {
		hi := DoubleDigit(d[i])
		for j := range out {
			z := DoubleDigit(out[j])<<f.shift | hi
			hi = z / targetBase
			out[j] = Digit(z - hi*targetBase) //nolint:gosec // G115: remainder is below targetBase.
		}
		for hi != 0 {
			out = append(out, Digit(hi%targetBase)) //nolint:gosec // G115: remainder is below targetBase.
			hi /= targetBase
		}
	}
	if len(out) == 0 {
		return Zero()
	}
	return out
}

// FromRadixDigits builds a magnitude from digit values (most significant
// first) in a radix that is not a power of two. Characters are folded in
// batches of BatchExponent, so the result is rescanned once per batch.
func (f *Family) FromRadixDigits(values []Digit, radix int) []Digit {
	rc := f.RadixConstants(radix)
	r := DoubleDigit(radix) //nolint:gosec // G115: radix is in 2..36.
	mask := DoubleDigit(f.mask)
	capacity := int(float64(len(values))*rc.LogFactor) + 1
	out := make([]Digit, 0, capacity)
	for start := 0; start < len(values); start += rc.BatchExponent {
		end := min(start+rc.BatchExponent, len(values))
		var carry DoubleDigit
		multiplier := DoubleDigit(1)
		for _, v := range values[start:end] {
			carry = carry*r + DoubleDigit(v)
			multiplier *= r
		}
		for i := range out {
			carry += DoubleDigit(out[i]) * multiplier
			out[i] = Digit(carry & mask)
			carry >>= f.shift
		}
		for carry != 0 {
			out = append(out, Digit(carry&mask))
			carry >>= f.shift
		}
	}
	return Trim(out)
}

// FromBinaryRadixDigits builds a magnitude from digit values (most
// significant first) in a power-of-two radix by packing their bits.
func (f *Family) FromBinaryRadixDigits(values []Digit, radix int) []Digit {
	bitsPer := RadixBits(radix)
	reversed := make([]Digit, len(values))
	for i, v := range values {
		reversed[len(values)-1-i] = v
	}
	return Repack(reversed, bitsPer, f.shift)
}

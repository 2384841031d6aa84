package digits

import (
	"fmt"
	"slices"
)

// Endianness selects the byte order of serialized integers.
type Endianness uint8

const (
	BigEndian Endianness = iota + 1
	LittleEndian
)

// String returns the string representation of Endianness.
func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "unknown"
	}
}

// ParseEndianness converts a string to Endianness.
func ParseEndianness(s string) (Endianness, error) {
	switch s {
	case "big", "BIG", "be":
		return BigEndian, nil
	case "little", "LITTLE", "le":
		return LittleEndian, nil
	default:
		return 0, fmt.Errorf("invalid endianness: %q (expected: big|little)", s)
	}
}

const signByte = 0x80

// ToBytes encodes n as a minimal two's-complement buffer.
func (f *Family) ToBytes(n Number, e Endianness) []byte {
	packed := Repack(n.Digits, f.shift, 8)
	out := make([]byte, len(packed), len(packed)+1)
	for i, v := range packed {
		out[i] = byte(v) //nolint:gosec // G115: repacked digits hold 8 bits.
	}
	if n.Sign < 0 {
		negateBytes(out)
		if out[len(out)-1] < signByte {
			out = append(out, 0xff)
		}
	} else if out[len(out)-1] >= signByte {
		out = append(out, 0)
	}
	if e == BigEndian {
		slices.Reverse(out)
	}
	return out
}

// FromBytes decodes a two's-complement buffer; an empty buffer is zero.
func (f *Family) FromBytes(b []byte, e Endianness) Number {
	if len(b) == 0 {
		return ZeroNumber()
	}
	buf := slices.Clone(b)
	if e == BigEndian {
		slices.Reverse(buf)
	}
	sign := Sign(1)
	if buf[len(buf)-1] >= signByte {
		negateBytes(buf)
		sign = -1
	}
	values := make([]Digit, len(buf))
	for i, v := range buf {
		values[i] = Digit(v)
	}
	return Canonical(Number{Sign: sign, Digits: Repack(values, 8, f.shift)})
}

func negateBytes(b []byte) {
	carry := uint16(1)
	for i, v := range b {
		carry += uint16(^v)
		b[i] = byte(carry) //nolint:gosec // G115: truncation is intentional (carry split).
		carry >>= 8
	}
}

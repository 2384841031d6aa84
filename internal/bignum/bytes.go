package bignum

import (
	"rithm/internal/digits"
)

type Endianness = digits.Endianness

const (
	BigEndian    = digits.BigEndian
	LittleEndian = digits.LittleEndian
)

// Bytes returns the minimal two's-complement encoding of x.
func (x BigInt) Bytes(e Endianness) []byte {
	return x.family().ToBytes(x.number(), e)
}

// FromBytes decodes a two's-complement buffer into the default family. An
// empty buffer decodes to zero.
func FromBytes(b []byte, e Endianness) BigInt { return In(nil).FromBytes(b, e) }

// FromBytesIn is FromBytes for an explicit family.
func FromBytesIn(fam *digits.Family, b []byte, e Endianness) BigInt {
	return In(fam).FromBytes(b, e)
}

// FromBytes decodes a two's-complement buffer into the family.
func (b Family) FromBytes(buf []byte, e Endianness) BigInt {
	return wrap(b.f, b.f.FromBytes(buf, e))
}

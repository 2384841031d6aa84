package fraction

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack writes f as a two-element array [numerator, denominator].
func (f Fraction[C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.Encode(f.num); err != nil {
		return err
	}
	return enc.Encode(f.denom())
}

// DecodeMsgpack reads a fraction written by EncodeMsgpack and reduces it.
// Components decode into the receiver's existing configuration.
func (f *Fraction[C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("fraction: expected 2 components, got %d", n)
	}
	num, den := f.num, f.denom()
	if err := dec.Decode(&num); err != nil {
		return err
	}
	if err := dec.Decode(&den); err != nil {
		return err
	}
	v, err := New(num, den)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

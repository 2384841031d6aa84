package bignum

import (
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"

	"rithm/internal/digits"
)

// MsgpackExtID is the msgpack extension type carrying a BigInt as its
// little-endian two's-complement bytes.
const MsgpackExtID int8 = 1

func init() {
	msgpack.RegisterExtEncoder(MsgpackExtID, BigInt{}, encodeExt)
	msgpack.RegisterExtDecoder(MsgpackExtID, BigInt{}, decodeExt)
}

func encodeExt(_ *msgpack.Encoder, v reflect.Value) ([]byte, error) {
	x, ok := v.Interface().(BigInt)
	if !ok {
		return nil, fmt.Errorf("bignum: cannot encode %s", v.Type())
	}
	return x.Bytes(LittleEndian), nil
}

// decodeExt keeps the family of the value being decoded into.
func decodeExt(dec *msgpack.Decoder, v reflect.Value, extLen int) error {
	buf := make([]byte, extLen)
	if err := dec.ReadFull(buf); err != nil {
		return err
	}
	var fam *digits.Family
	if cur, ok := v.Interface().(BigInt); ok {
		fam = cur.fam
	}
	v.Set(reflect.ValueOf(In(fam).FromBytes(buf, LittleEndian)))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x BigInt) MarshalText() ([]byte, error) {
	return []byte(x.Text(10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any syntax accepted
// by Parse with radix 0 is allowed.
func (x *BigInt) UnmarshalText(text []byte) error {
	v, err := In(x.fam).Parse(string(text), 0)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

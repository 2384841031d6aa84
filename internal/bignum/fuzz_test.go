package bignum

import (
	"testing"

	"rithm/internal/digits"
)

const maxFuzzInput = 4 << 10

var parseSeeds = []string{
	"0", "-0", "+7", "0x_ff", "-0b1_0_1", "0o777", "1_000_000", "__1", "1__0", "0x",
	"zz", "123456789012345678901234567890", "-18446744073709551616", "0b_", "٣",
}

// FuzzParse checks that accepted text round-trips through every radix and
// byte order, and that all widths agree on the value.
func FuzzParse(f *testing.F) {
	for _, s := range parseSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, text string) {
		if len(text) > maxFuzzInput {
			text = text[:maxFuzzInput]
		}
		want, err := Parse(text, 0)
		if err != nil {
			return
		}
		for _, fam := range families {
			x, err := ParseIn(fam, text, 0)
			if err != nil {
				t.Fatalf("width %d rejects %q: %v", fam.Config().Width, text, err)
			}
			if x.String() != want.String() {
				t.Fatalf("width %d: %q = %s, want %s", fam.Config().Width, text, x, want)
			}
			if x.Hash() != want.Hash() {
				t.Fatalf("width %d: hash of %q differs", fam.Config().Width, text)
			}
		}
		for _, radix := range []int{2, 7, 16, 36} {
			back, err := Parse(want.Text(radix), radix)
			if err != nil || back.Cmp(want) != 0 {
				t.Fatalf("radix %d round trip of %s: %v, %v", radix, want, back, err)
			}
		}
		for _, e := range []digits.Endianness{digits.BigEndian, digits.LittleEndian} {
			if back := FromBytes(want.Bytes(e), e); back.Cmp(want) != 0 {
				t.Fatalf("bytes round trip of %s: %s", want, back)
			}
		}
	})
}

// FuzzFromBytes checks that any buffer decodes to a value whose encoding
// decodes back to the same value.
func FuzzFromBytes(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x80})
	f.Add([]byte{0x00, 0xff})
	f.Add([]byte{0xff, 0xff, 0xff, 0x7f})
	f.Fuzz(func(t *testing.T, buf []byte) {
		if len(buf) > maxFuzzInput {
			buf = buf[:maxFuzzInput]
		}
		x := FromBytes(buf, digits.LittleEndian)
		for _, fam := range families {
			y := FromBytesIn(fam, buf, digits.LittleEndian)
			if y.String() != x.String() {
				t.Fatalf("width %d decodes %x to %s, want %s", fam.Config().Width, buf, y, x)
			}
		}
		if back := FromBytes(x.Bytes(digits.LittleEndian), digits.LittleEndian); back.Cmp(x) != 0 {
			t.Fatalf("re-encoding %s gives %s", x, back)
		}
	})
}

package calc

import (
	"context"
	"testing"
)

// FuzzEval feeds arbitrary lines to a calculator holding a known stack. A
// line either succeeds or leaves the stack exactly as it was.
func FuzzEval(f *testing.F) {
	for _, seed := range []string{
		"1 2 +", "0 /", "1/0", "7 -2 divmod", "2 -1 5 powmod", "1 100 << 3 >>",
		"0.1 float", "1e400", "swap swap", "clear", "２ ３ **", "# only a comment",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, line string) {
		if len(line) > 256 {
			line = line[:256]
		}
		c := New(nil)
		if err := c.Eval(context.Background(), "3 -1/2"); err != nil {
			t.Fatal(err)
		}
		before := stackText(c)
		if err := c.Eval(context.Background(), line); err != nil && stackText(c) != before {
			t.Fatalf("%q failed with %v but changed the stack to %q", line, err, stackText(c))
		}
	})
}

package calc

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

const snapshotVersion = 1

type snapshot struct {
	Version int   `msgpack:"v"`
	Stack   []Rat `msgpack:"s"`
}

// Save writes the stack to w as msgpack.
func (c *Calculator) Save(w io.Writer) error {
	snap := snapshot{Version: snapshotVersion, Stack: make([]Rat, len(c.stack))}
	for i, v := range c.stack {
		snap.Stack[i] = v.Rat()
	}
	if err := msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("save stack: %w", err)
	}
	return nil
}

// Load replaces the stack with one written by Save. Values are converted
// to the calculator's family.
func (c *Calculator) Load(r io.Reader) error {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("load stack: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("load stack: unsupported snapshot version %d", snap.Version)
	}
	stack := make([]Value, len(snap.Stack))
	for i, q := range snap.Stack {
		stack[i] = Frac(q).In(c.fam)
	}
	c.stack = stack
	return nil
}

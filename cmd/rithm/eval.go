package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rithm/internal/calc"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] [expression...]",
		Short: "Evaluate RPN expressions",
		Long: `Eval applies every expression, in order, to one stack and prints the
stack bottom first. Without arguments expressions are read from stdin, one per line.`,
		Example: `  rithm eval "2 100 **"
  rithm eval "1/3 1/6 +" --radix 16
  echo "7 -2 divmod" | rithm eval`,
		RunE: a.runEval,
	}
	cmd.Flags().String("load", "", "load the stack from a snapshot before evaluating")
	cmd.Flags().String("save", "", "save the final stack to a snapshot")
	cmd.Flags().Bool("top", false, "print only the top of the stack")
	return cmd
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	loadPath, err := cmd.Flags().GetString("load")
	if err != nil {
		return fmt.Errorf("failed to get load flag: %w", err)
	}
	savePath, err := cmd.Flags().GetString("save")
	if err != nil {
		return fmt.Errorf("failed to get save flag: %w", err)
	}
	topOnly, err := cmd.Flags().GetBool("top")
	if err != nil {
		return fmt.Errorf("failed to get top flag: %w", err)
	}

	c := calc.New(a.settings.fam)
	if loadPath != "" {
		if err := a.measure("load", func() error { return loadSnapshot(c, loadPath) }); err != nil {
			return err
		}
	}

	lines := args
	if len(lines) == 0 {
		if lines, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	err = a.measure("eval", func() error {
		for i, line := range lines {
			if err := c.Eval(cmd.Context(), line); err != nil {
				return fmt.Errorf("expression %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	values := c.Stack()
	if topOnly && len(values) > 0 {
		values = values[len(values)-1:]
	}
	if err := printValues(cmd.OutOrStdout(), values, a.settings.radix); err != nil {
		return err
	}
	if savePath != "" {
		return a.measure("save", func() error { return saveSnapshot(c, savePath) })
	}
	return nil
}

// measure runs fn as a timed phase when --timings is set.
func (a *app) measure(name string, fn func() error) error {
	if a.settings == nil || a.settings.timer == nil {
		return fn()
	}
	return a.settings.timer.Measure(name, fn)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

func printValues(w io.Writer, values []calc.Value, radix int) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v.Text(radix)); err != nil {
			return err
		}
	}
	return nil
}

func loadSnapshot(c *calc.Calculator, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return c.Load(bufio.NewReader(f))
}

func saveSnapshot(c *calc.Calculator, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return c.Save(f)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rithm/internal/version"
)

// app carries per-invocation state from the root pre-run hook to the
// subcommands and back to execute for cleanup.
type app struct {
	settings *settings
	cleanups []func(failed bool)
	stdin    io.Reader
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rithm",
		Short:         "Arbitrary-precision integers and exact fractions",
		Long:          `rithm evaluates exact integer and rational arithmetic in reverse Polish notation`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to rithm.toml (default: nearest rithm.toml upward)")
	flags.Int("width", 0, "digit width in bits (8|16|32)")
	flags.String("separator", "", "digit group separator accepted in input")
	flags.Int("radix", 0, "output radix (2..36)")
	flags.String("color", "", "colorize output (auto|on|off)")
	flags.Bool("timings", false, "show timing information")

	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "", "trace storage (stream|ring|both)")
	flags.String("trace-format", "", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 0, "ring buffer capacity in events")
	flags.Duration("trace-heartbeat", 0, "heartbeat interval (0 disables)")

	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(
		newEvalCmd(a),
		newBatchCmd(a),
		newConvertCmd(a),
		newBytesCmd(a),
		newFromBytesCmd(a),
		newFracCmd(a),
		newHashCmd(a),
		newReplCmd(a),
		newVersionCmd(a),
	)
	return root
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	a.finish(err != nil)
	if err == nil {
		return 0
	}
	printError(stderr, err)
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return 1
}

// exitError selects a specific exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

var errorColor = color.New(color.FgRed, color.Bold)

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("error:"), err)
}

func (a *app) finish(failed bool) {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i](failed)
	}
	a.cleanups = nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

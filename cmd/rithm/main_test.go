package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// run executes the command line with colors disabled.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	full := append([]string{"--color", "off"}, args...)
	var out, errOut bytes.Buffer
	code := execute(context.Background(), full, strings.NewReader(stdin), &out, &errOut)
	return result{stdout: out.String(), stderr: errOut.String(), code: code}
}

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
}

func TestGolden(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"eval_basic", "", []string{"eval", "2 100 **", "1/3 1/6 +", "7 -2 divmod"}},
		{"eval_stdin", "1 2 +\n# comment only\n10 *\n", []string{"eval"}},
		{"eval_radix", "", []string{"--radix", "16", "eval", "255 1/16 -10"}},
		{"convert", "", []string{"convert", "--to", "2", "--prefix", "--", "0xff", "-255"}},
		{"bytes", "", []string{"bytes", "--", "128", "-129", "255"}},
		{"bytes_little", "", []string{"bytes", "--endian", "little", "--", "128", "-129"}},
		{"frombytes", "", []string{"frombytes", "ff7f", "0x0080"}},
		{"frac", "", []string{"frac", "--", "0.1", "-2.5"}},
		{"hash", "", []string{"hash", "1/2", "5 neg"}},
		{"version", "", []string{"version"}},
		{"batch", "", []string{"batch", "--ui", "off", "-j", "2", "testdata/batch/a.rpn", "testdata/batch/b.rpn"}},
		{"repl_lines", "1 2 +\n0 /\ndup *\nquit\n5\n", []string{"repl", "--ui", "off"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.stdin, tt.args...)
			if tt.name != "repl_lines" {
				require.Empty(t, res.stderr)
			}
			require.Equal(t, 0, res.code, res.stderr)
			golden(t).Assert(t, tt.name, []byte(res.stdout))
		})
	}
}

func TestReplReportsErrors(t *testing.T) {
	res := run(t, "1 2 +\n0 /\n", "repl", "--ui", "off")
	require.Equal(t, 0, res.code)
	require.Equal(t, "error: token 2 \"/\": calc: division by zero is undefined\n", res.stderr)
}

func TestEvalError(t *testing.T) {
	res := run(t, "", "eval", "1 2", "3 frobnicate")
	require.Equal(t, 1, res.code)
	require.Empty(t, res.stdout)
	require.Equal(t, "error: expression 2: token 2 \"frobnicate\": unknown token\n", res.stderr)
}

func TestEvalTop(t *testing.T) {
	res := run(t, "", "eval", "--top", "1 2 3")
	require.Equal(t, 0, res.code)
	require.Equal(t, "3\n", res.stdout)
}

func TestConfigFile(t *testing.T) {
	res := run(t, "", "--config", "testdata/hex8.toml", "eval", "255 256 *")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "ff00\n", res.stdout)

	res = run(t, "", "--config", "testdata/hex8.toml", "--radix", "10", "eval", "255")
	require.Equal(t, "255\n", res.stdout)

	res = run(t, "", "--config", "testdata/bad.toml", "eval", "1")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "unknown keys: output.base")
}

func TestInvalidFlags(t *testing.T) {
	res := run(t, "", "--width", "12", "eval", "1")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "[arithmetic].digit_width")

	res = run(t, "", "convert", "--to", "40", "7")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "--to")

	res = run(t, "", "bytes", "--endian", "middle", "7")
	require.Equal(t, 1, res.code)

	res = run(t, "", "frombytes", "xyz")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "invalid hex")

	res = run(t, "", "hash", "")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, errEmptyStack.Error())
}

func TestSnapshotAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.msgpack")
	res := run(t, "", "--width", "8", "eval", "--save", path, "1/3 5")
	require.Equal(t, 0, res.code, res.stderr)

	res = run(t, "", "eval", "--load", path, "+")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "16/3\n", res.stdout)
}

func TestBatchFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.rpn")
	res := run(t, "", "batch", "--ui", "off", "testdata/batch/a.rpn", missing)
	require.Equal(t, 1, res.code)
	require.Equal(t, "testdata/batch/a.rpn: 30\n", res.stdout)
	require.Contains(t, res.stderr, "failed to open")
	require.Contains(t, res.stderr, "1 of 2 files failed")
}

func TestTimings(t *testing.T) {
	res := run(t, "", "--timings", "eval", "1 2 +")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "3\n", res.stdout)
	require.Contains(t, res.stderr, "timings:")
	require.Contains(t, res.stderr, "eval")
}

func TestTraceToStderr(t *testing.T) {
	res := run(t, "", "--trace", "-", "--trace-level", "debug", "--trace-format", "text", "eval", "1 2 +")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "3\n", res.stdout)
	require.Contains(t, res.stderr, "eval")
	require.Contains(t, res.stderr, "line")
}

func TestVersionJSON(t *testing.T) {
	res := run(t, "", "version", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, `"tool": "rithm"`)
	require.Contains(t, res.stdout, `"tagline": "every digit counts"`)

	res = run(t, "", "version", "--format", "yaml")
	require.Equal(t, 1, res.code)
}

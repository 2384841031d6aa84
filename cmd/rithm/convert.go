package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rithm/internal/bignum"
)

var radixPrefixes = map[int]string{2: "0b", 8: "0o", 16: "0x"}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] number...",
		Short: "Convert integers between radixes",
		Example: `  rithm convert 0xff --to 2
  rithm convert zz --from 36`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runConvert,
	}
	cmd.Flags().Int("from", 0, "input radix (0 detects 0b/0o/0x prefixes)")
	cmd.Flags().Int("to", 0, "output radix (default --radix)")
	cmd.Flags().Bool("prefix", false, "prefix binary, octal and hex output")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	from, err := cmd.Flags().GetInt("from")
	if err != nil {
		return fmt.Errorf("failed to get from flag: %w", err)
	}
	to, err := cmd.Flags().GetInt("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	prefix, err := cmd.Flags().GetBool("prefix")
	if err != nil {
		return fmt.Errorf("failed to get prefix flag: %w", err)
	}
	if to == 0 {
		to = a.settings.radix
	}
	if to < 2 || to > 36 {
		return fmt.Errorf("--to: %w, got %d", bignum.ErrInvalidRadix, to)
	}

	fam := bignum.In(a.settings.fam)
	for _, arg := range args {
		x, err := fam.Parse(arg, from)
		if err != nil {
			return err
		}
		text := x.Abs().Text(to)
		if prefix {
			text = radixPrefixes[to] + text
		}
		if x.IsNegative() {
			text = "-" + text
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}

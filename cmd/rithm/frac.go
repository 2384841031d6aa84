package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rithm/internal/bignum"
	"rithm/internal/calc"
	"rithm/internal/fraction"
)

func newFracCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frac [flags] float...",
		Short: "Print the exact fraction of a float64",
		Long: `Frac parses each argument as a float64 and prints the exact rational value
of the parsed double, which is what the float really stores.`,
		Example: "  rithm frac 0.1 1e-3 -2.5",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, err := cmd.Flags().GetBool("check")
			if err != nil {
				return fmt.Errorf("failed to get check flag: %w", err)
			}
			zero := bignum.In(a.settings.fam).Zero()
			for _, arg := range args {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid float %q: %w", arg, err)
				}
				q, err := fraction.FromFloat64(zero, f)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				text := calc.Frac(q).Text(a.settings.radix)
				if check {
					back, err := q.Float64()
					if err != nil {
						return err
					}
					text += fmt.Sprintf(" (round trip %v)", back == f)
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
	cmd.Flags().Bool("check", false, "verify the fraction converts back to the same float")
	return cmd
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rithm/internal/calc"
)

func newHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash expression...",
		Short: "Print the hash of each expression's result",
		Long: `Hash evaluates each argument on a fresh stack and prints the hash of the
top value. Equal integers and fractions hash equally at every digit width.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				c := calc.New(a.settings.fam)
				if err := c.Eval(cmd.Context(), arg); err != nil {
					return err
				}
				top, ok := c.Top()
				if !ok {
					return fmt.Errorf("%q: %w", arg, errEmptyStack)
				}
				fmt.Fprintln(cmd.OutOrStdout(), top.Hash())
			}
			return nil
		},
	}
}

var errEmptyStack = errors.New("expression left the stack empty")

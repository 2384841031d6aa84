package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rithm/internal/bignum"
	"rithm/internal/digits"
)

func endianFlag(cmd *cobra.Command) (bignum.Endianness, error) {
	value, err := cmd.Flags().GetString("endian")
	if err != nil {
		return 0, fmt.Errorf("failed to get endian flag: %w", err)
	}
	return digits.ParseEndianness(strings.ToLower(value))
}

func newBytesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytes [flags] number...",
		Short: "Print the two's complement bytes of integers as hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endian, err := endianFlag(cmd)
			if err != nil {
				return err
			}
			fam := bignum.In(a.settings.fam)
			for _, arg := range args {
				x, err := fam.Parse(arg, 0)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(x.Bytes(endian)))
			}
			return nil
		},
	}
	cmd.Flags().String("endian", "big", "byte order (big|little)")
	return cmd
}

func newFromBytesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frombytes [flags] hex...",
		Short: "Decode two's complement hex bytes into integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endian, err := endianFlag(cmd)
			if err != nil {
				return err
			}
			fam := bignum.In(a.settings.fam)
			for _, arg := range args {
				text := strings.TrimPrefix(strings.ToLower(arg), "0x")
				buf, err := hex.DecodeString(text)
				if err != nil {
					return fmt.Errorf("invalid hex %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), fam.FromBytes(buf, endian).Text(a.settings.radix))
			}
			return nil
		},
	}
	cmd.Flags().String("endian", "big", "byte order (big|little)")
	return cmd
}

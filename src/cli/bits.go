package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eriklarko/rpn-logic/src/bits"
)

func newBitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bits",
		Short: "Integer arithmetic built from bitwise operations",
	}

	cmd.AddCommand(
		newBinaryBitsCmd("add", "Add two numbers", bits.Adder),
		newBinaryBitsCmd("mul", "Multiply two numbers", bits.Multiplier),
		&cobra.Command{
			Use:   "gray N",
			Short: "Print the gray code of a number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := parseUint32(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), bits.GrayCode(n))
				return nil
			},
		},
	)
	return cmd
}

func newBinaryBitsCmd(use, short string, op func(a, b uint32) uint32) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseUint32(args[0])
			if err != nil {
				return err
			}
			b, err := parseUint32(args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), op(a, b))
			return nil
		},
	}
}

// parseUint32 accepts decimal, 0x hex, 0o octal and 0b binary.
func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s': %w", s, err)
	}
	return uint32(n), nil
}

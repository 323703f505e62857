package cli

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/eriklarko/rpn-logic/src/boolexpr"
)

func newEvalCmd(_ *options) *cobra.Command {
	var bindings map[string]string

	cmd := &cobra.Command{
		Use:   "eval FORMULA",
		Short: "Evaluate a formula and print 1 or 0",
		Long: `Evaluate a formula and print 1 or 0.

Every variable in the formula needs a value, given with --set.

        $ rpnlogic eval '10|1&'
        $ rpnlogic eval 'AB>' --set A=1,B=0
        `,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			context, err := parseBindings(bindings)
			if err != nil {
				return err
			}

			tree, err := boolexpr.New(args[0])
			if err != nil {
				return err
			}

			result, err := tree.Solve(context)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), bit(result))
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&bindings, "set", nil, "variable values, e.g. A=1,B=0")
	return cmd
}

func parseBindings(bindings map[string]string) (map[rune]bool, error) {
	context := make(map[rune]bool, len(bindings))
	for name, raw := range bindings {
		r, size := utf8.DecodeRuneInString(name)
		if size != len(name) || r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("invalid variable '%s', variables are single uppercase letters", name)
		}

		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s' for variable %s: %w", raw, name, err)
		}
		context[r] = value
	}
	return context, nil
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

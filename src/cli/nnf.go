package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eriklarko/rpn-logic/src/boolexpr"
	"github.com/eriklarko/rpn-logic/src/truthtable"
)

func newNNFCmd(opts *options) *cobra.Command {
	var (
		tree   bool
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "nnf FORMULA",
		Short: "Rewrite a formula into negation normal form",
		Long: `Rewrite a formula into negation normal form.

The result only uses !, & and |, and ! is only applied to variables and
constants.

        $ rpnlogic nnf 'AB&!'
        A!B!|
        `,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := boolexpr.New(args[0])
			if err != nil {
				return err
			}

			normal, err := root.NNF()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tree {
				fmt.Fprintln(out, normal.Tree())
			} else {
				fmt.Fprintln(out, normal.String())
			}

			if verify {
				// a formula already in normal form comes back unchanged
				equivalent := normal.Equal(root)
				if !equivalent {
					equivalent, err = truthtable.New(truthtable.WithWorkers(opts.config.Workers)).Equivalent(root.String(), normal.String())
					if err != nil {
						return err
					}
				}
				if !equivalent {
					return fmt.Errorf("'%s' is not equivalent to '%s'", normal, root)
				}
				fmt.Fprintln(out, "equivalent")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "print the result as a tree")
	cmd.Flags().BoolVar(&verify, "verify", false, "compare the truth tables of the input and the result")
	return cmd
}

func newTreeCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FORMULA",
		Short: "Print the expression tree of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := boolexpr.New(args[0])
			if err != nil {
				return err
			}
			// every level indents the ones below it, deep trees would print
			// quadratically many bytes
			if root.Depth() > boolexpr.MaxDepth {
				return boolexpr.NewRecursionLimitError(boolexpr.MaxDepth)
			}

			fmt.Fprintln(cmd.OutOrStdout(), root.Tree())
			return nil
		},
	}
}

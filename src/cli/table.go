package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/eriklarko/rpn-logic/src/boolexpr"
	"github.com/eriklarko/rpn-logic/src/environment"
	"github.com/eriklarko/rpn-logic/src/truthtable"
	"github.com/eriklarko/rpn-logic/src/tui"
)

// confirmAbove is the number of variables above which an interactive user
// is asked before the table is generated.
const confirmAbove = 16

type tableOptions struct {
	format  string
	workers int
	summary bool
}

func addTableFlags(flags *pflag.FlagSet, o *tableOptions) {
	flags.StringVarP(&o.format, "format", "f", "", "output format: plain, table, csv or yaml")
	flags.IntVarP(&o.workers, "workers", "w", 1, "number of rows evaluated in parallel")
	flags.BoolVar(&o.summary, "summary", false, "print a summary after the table")
}

// resolve merges the flags with the config file. Flags that were set on the
// command line win.
func (o *tableOptions) resolve(flags *pflag.FlagSet, opts *options) (truthtable.Format, int, bool, error) {
	cfg := opts.config

	format := cfg.Format
	if flags.Changed("format") {
		format = o.format
	}
	workers := cfg.Workers
	if flags.Changed("workers") {
		workers = o.workers
	}
	summary := cfg.Summary
	if flags.Changed("summary") {
		summary = o.summary
	}

	if workers < 1 {
		return "", 0, false, fmt.Errorf("workers must be at least 1, got %d", workers)
	}

	if format == "" {
		if environment.IsInteractive() {
			return truthtable.Boxed, workers, summary, nil
		}
		return truthtable.Plain, workers, summary, nil
	}

	f, err := truthtable.ParseFormat(format)
	if err != nil {
		return "", 0, false, err
	}
	return f, workers, summary, nil
}

func newTableCmd(opts *options) *cobra.Command {
	o := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table FORMULA",
		Short: "Print the truth table of a formula",
		Long: `Print the truth table of a formula.

Variables are listed in alphabetical order followed by the value of the
formula. Rows count upwards in binary with the first variable as the most
significant bit.

        $ rpnlogic table 'AB>'
        $ rpnlogic table 'AB^C|' --format csv --workers 4
        `,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, workers, summary, err := o.resolve(cmd.Flags(), opts)
			if err != nil {
				return err
			}

			formula := args[0]
			// without a terminal to ask on, max-variables is a hard limit
			limit := opts.config.MaxVariables
			if variables := boolexpr.Variables(formula); len(variables) > min(confirmAbove, limit) && environment.IsInputInteractive() {
				t := tui.New()
				t.SetInput(cmd.InOrStdin())
				t.SetOutput(cmd.ErrOrStderr())
				ok, err := t.AskForever("%s has %d variables and %d rows, continue? [y/N] ", formula, len(variables), 1<<len(variables))
				if err != nil {
					return err
				}
				if !ok {
					slog.Info("Aborted by user")
					return nil
				}
				limit = truthtable.MaxVariables
			}

			table, err := truthtable.New(truthtable.WithWorkers(workers), truthtable.WithMaxVariables(limit)).Generate(formula)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := truthtable.Render(out, table, format); err != nil {
				return err
			}

			// the yaml document carries its own summary
			if summary && format != truthtable.YAML {
				printSummary(out, table.Summary())
			}
			return nil
		},
	}

	addTableFlags(cmd.Flags(), o)
	return cmd
}

func printSummary(w io.Writer, s truthtable.Summary) {
	fmt.Fprintf(w, "true rows: %d, false rows: %d, ratio: %.3f\n", s.TrueRows, s.FalseRows, s.TrueRatio)
	switch {
	case s.Tautology:
		fmt.Fprintln(w, "tautology")
	case s.Contradiction:
		fmt.Fprintln(w, "contradiction")
	}
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/eriklarko/rpn-logic/src/boolexpr"
	"github.com/eriklarko/rpn-logic/src/environment"
	"github.com/eriklarko/rpn-logic/src/phraser"
	"github.com/eriklarko/rpn-logic/src/truthtable"
	"github.com/eriklarko/rpn-logic/src/tui"
)

const prompt = "rpn> "

var headings = []string{
	"Truth table for %[1]s",
	"%[1]s has %[2]d rows",
	"Every assignment of %[1]s",
	"Here's how %[1]s turns out",
	"%[1]s, row by row",
}

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read formulas from the terminal and print their truth tables",
		Long: `Read formulas one line at a time.

Formulas without variables print their value, everything else prints its
truth table followed by its negation normal form. Enter ` + tui.QuitCommand + ` or end the
input to leave.
        `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			generator := truthtable.New(
				truthtable.WithWorkers(opts.config.Workers),
				truthtable.WithMaxVariables(opts.config.MaxVariables),
			)

			var reader tui.LineReader
			var history func(string)
			var heading *phraser.Phraser
			if environment.IsInputInteractive() {
				line := liner.NewLiner()
				defer line.Close()
				line.SetCtrlCAborts(true)

				reader = line
				history = line.AppendHistory
				heading = phraser.New(headings)
			} else {
				t := tui.New()
				t.SetInput(cmd.InOrStdin())
				t.SetOutput(io.Discard)

				reader = t
				history = func(string) {}
			}

			err := tui.Loop(reader, out, prompt, func(formula string) error {
				history(formula)
				return evaluate(out, generator, heading, formula)
			})
			if errors.Is(err, liner.ErrPromptAborted) {
				slog.Debug("Prompt aborted")
				return nil
			}
			return err
		},
	}
}

// evaluate prints the value of a formula without variables, or the truth
// table and negation normal form of anything else. heading may be nil.
func evaluate(out io.Writer, generator *truthtable.Generator, heading *phraser.Phraser, formula string) error {
	root, err := boolexpr.New(formula)
	if err != nil {
		return err
	}

	if len(root.Variables()) == 0 {
		result, err := root.Eval()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, bit(result))
		return nil
	}

	table, err := generator.Generate(formula)
	if err != nil {
		return err
	}
	if heading != nil {
		fmt.Fprintln(out, heading.Get(formula, len(table.Rows)))
	}
	if err := truthtable.Render(out, table, truthtable.Plain); err != nil {
		return err
	}

	normal, err := root.NNF()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "nnf: %s\n", normal)
	return nil
}

package truthtable

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/eriklarko/rpn-logic/src/boolexpr"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Row struct {
	Assignment
	Result bool
}

type Table struct {
	Formula   string
	Variables []rune
	// Rows are in the same order as Assignments yields them
	Rows []Row
}

type Generator struct {
	// how many rows are evaluated concurrently, 1 or less means sequentially
	workers int
	// formulas with more variables are refused before any row is allocated
	maxVariables int
}

type Option func(*Generator)

// WithWorkers evaluates up to n rows concurrently.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// WithMaxVariables refuses formulas with more than n variables. Values above
// MaxVariables have no effect.
func WithMaxVariables(n int) Option {
	return func(g *Generator) {
		g.maxVariables = min(n, MaxVariables)
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{workers: 1, maxVariables: MaxVariables}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the truth table of a postfix formula. For every assignment
// the variables are replaced by their values in the formula text, which is
// then parsed and evaluated again.
func (g *Generator) Generate(formula string) (*Table, error) {
	// parse once up front so a broken formula fails once instead of once per
	// row
	if _, err := boolexpr.New(formula); err != nil {
		return nil, err
	}

	variables := boolexpr.Variables(formula)
	if len(variables) > g.maxVariables {
		return nil, NewTooManyVariablesError(len(variables), g.maxVariables)
	}
	count, err := Count(variables)
	if err != nil {
		return nil, fmt.Errorf("failed to generate truth table for '%s': %w", formula, err)
	}

	slog.Debug("Generating truth table", "formula", formula, "variables", string(variables), "rows", count, "workers", g.workers)

	rows := make([]Row, count)
	if g.workers <= 1 {
		for i, assignment := range Assignments(variables) {
			if rows[i], err = evaluateRow(formula, assignment); err != nil {
				return nil, err
			}
		}
	} else {
		var group errgroup.Group
		group.SetLimit(g.workers)
		for i := range count {
			group.Go(func() error {
				row, err := evaluateRow(formula, AssignmentAt(variables, i))
				if err != nil {
					return err
				}
				// every goroutine owns its own index
				rows[i] = row
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
	}

	return &Table{
		Formula:   formula,
		Variables: variables,
		Rows:      rows,
	}, nil
}

func evaluateRow(formula string, assignment Assignment) (Row, error) {
	ground := assignment.Substitute(formula)

	tree, err := boolexpr.New(ground)
	if err != nil {
		return Row{}, fmt.Errorf("failed to parse row %s: %w", assignment, err)
	}

	result, err := tree.Eval()
	if err != nil {
		return Row{}, fmt.Errorf("failed to evaluate row %s: %w", assignment, err)
	}

	return Row{Assignment: assignment, Result: result}, nil
}

// Equivalent reports whether two formulas have the same value under every
// assignment of the union of their variables. Assignments are checked one at
// a time and no table is kept.
func (g *Generator) Equivalent(a, b string) (bool, error) {
	left, err := boolexpr.New(a)
	if err != nil {
		return false, err
	}
	right, err := boolexpr.New(b)
	if err != nil {
		return false, err
	}

	variables := lo.Union(left.Variables(), right.Variables())
	slices.Sort(variables)
	if _, err := Count(variables); err != nil {
		return false, fmt.Errorf("failed to compare '%s' and '%s': %w", a, b, err)
	}

	for _, assignment := range Assignments(variables) {
		context := assignment.Map()

		l, err := left.Solve(context)
		if err != nil {
			return false, err
		}
		r, err := right.Solve(context)
		if err != nil {
			return false, err
		}

		if l != r {
			slog.Debug("Formulas differ", "a", a, "b", b, "assignment", assignment.String())
			return false, nil
		}
	}
	return true, nil
}

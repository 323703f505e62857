package truthtable

import (
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

type Summary struct {
	TrueRows  int     `yaml:"true-rows"`
	FalseRows int     `yaml:"false-rows"`
	TrueRatio float64 `yaml:"true-ratio"`

	Tautology     bool `yaml:"tautology"`
	Contradiction bool `yaml:"contradiction"`
}

func (t *Table) Summary() Summary {
	trueRows := lo.CountBy(t.Rows, func(row Row) bool {
		return row.Result
	})

	results := lo.Map(t.Rows, func(row Row, _ int) float64 {
		return float64(bit(row.Result))
	})
	// Mean only fails on empty input, and a table always has at least one row
	ratio, _ := stats.Mean(results)

	return Summary{
		TrueRows:      trueRows,
		FalseRows:     len(t.Rows) - trueRows,
		TrueRatio:     ratio,
		Tautology:     trueRows == len(t.Rows),
		Contradiction: trueRows == 0,
	}
}

package truthtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	// Plain renders markdown-like rows: | A | B | = |
	Plain Format = "plain"
	// Boxed renders a bordered table
	Boxed Format = "table"
	CSV   Format = "csv"
	YAML  Format = "yaml"
)

var formats = []Format{Plain, Boxed, CSV, YAML}

// ResultColumn is the header of the column holding the value of the formula.
const ResultColumn = "="

func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	if !lo.Contains(formats, format) {
		return "", fmt.Errorf("unknown format '%s', expected one of %v", s, formats)
	}
	return format, nil
}

// Render writes the table to w. Variables are listed in ascending order,
// followed by the result column, one line per row.
func Render(w io.Writer, t *Table, format Format) error {
	switch format {
	case Plain:
		return renderPlain(w, t)
	case Boxed:
		return renderBoxed(w, t)
	case CSV:
		return renderCSV(w, t)
	case YAML:
		return renderYAML(w, t)
	}
	return fmt.Errorf("unknown format '%s'", format)
}

func header(t *Table) []string {
	return append(lo.Map(t.Variables, func(v rune, _ int) string {
		return string(v)
	}), ResultColumn)
}

func cells(row Row) []string {
	return append(lo.Map(row.Values, func(v bool, _ int) string {
		return strconv.Itoa(bit(v))
	}), strconv.Itoa(bit(row.Result)))
}

func renderPlain(w io.Writer, t *Table) error {
	line := func(cols []string) string {
		return "| " + strings.Join(cols, " | ") + " |\n"
	}

	head := header(t)
	var sb strings.Builder
	sb.WriteString(line(head))
	sb.WriteString("|" + strings.Repeat("---|", len(head)) + "\n")
	for _, row := range t.Rows {
		sb.WriteString(line(cells(row)))
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("failed to write truth table: %w", err)
	}
	return nil
}

func renderBoxed(w io.Writer, t *Table) error {
	table := tablewriter.NewWriter(w)
	table.Header(header(t))

	if err := table.Bulk(lo.Map(t.Rows, func(row Row, _ int) []string {
		return cells(row)
	})); err != nil {
		return fmt.Errorf("failed to add rows: %w", err)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render truth table: %w", err)
	}
	return nil
}

func renderCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	records := [][]string{header(t)}
	for _, row := range t.Rows {
		records = append(records, cells(row))
	}

	// WriteAll flushes
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

type yamlTable struct {
	Formula   string           `yaml:"formula"`
	Variables []string         `yaml:"variables"`
	Rows      []map[string]int `yaml:"rows"`
	Summary   Summary          `yaml:"summary"`
}

func renderYAML(w io.Writer, t *Table) error {
	doc := yamlTable{
		Formula: t.Formula,
		Variables: lo.Map(t.Variables, func(v rune, _ int) string {
			return string(v)
		}),
		Summary: t.Summary(),
	}
	for _, row := range t.Rows {
		values := make(map[string]int, len(row.Variables)+1)
		for i, v := range row.Variables {
			values[string(v)] = bit(row.Values[i])
		}
		values[ResultColumn] = bit(row.Result)
		doc.Rows = append(doc.Rows, values)
	}

	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode truth table: %w", err)
	}
	return nil
}

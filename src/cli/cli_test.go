package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eriklarko/rpn-logic/src/boolexpr"
	"github.com/eriklarko/rpn-logic/src/cli"
	"github.com/eriklarko/rpn-logic/src/config"
	"github.com/eriklarko/rpn-logic/src/environment"
	helpers_test "github.com/eriklarko/rpn-logic/src/helpers"
	"github.com/eriklarko/rpn-logic/src/truthtable"
)

// run executes the root command as if stdin and stdout were pipes.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(environment.ResetIsInteractive)
	t.Cleanup(func() { boolexpr.MaxDepth = boolexpr.DefaultMaxDepth })

	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--interactive=false"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	testCases := map[string][]string{
		"1\n": {"eval", "10|1&"},
		"0\n": {"eval", "AB>", "--set", "A=1,B=0"},
	}

	for expected, args := range testCases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, err := run(t, "", args...)
			require.NoError(t, err)
			assert.Equal(t, expected, out)
		})
	}

	t.Run("unbound variable", func(t *testing.T) {
		_, err := run(t, "", "eval", "AB&", "--set", "A=1")

		var errUnbound *boolexpr.UnboundVariableError
		require.ErrorAs(t, err, &errUnbound)
		assert.Equal(t, 'B', errUnbound.Name)
	})

	t.Run("invalid binding", func(t *testing.T) {
		_, err := run(t, "", "eval", "A", "--set", "a=1")
		assert.ErrorContains(t, err, "invalid variable 'a'")

		_, err = run(t, "", "eval", "A", "--set", "A=maybe")
		assert.ErrorContains(t, err, "invalid value 'maybe'")
	})

	t.Run("invalid formula", func(t *testing.T) {
		_, err := run(t, "", "eval", "1x&")

		var errInvalid *boolexpr.InvalidSymbolError
		assert.ErrorAs(t, err, &errInvalid)
	})
}

func TestTable(t *testing.T) {
	t.Run("plain when not a terminal", func(t *testing.T) {
		out, err := run(t, "", "table", "AB>")
		require.NoError(t, err)

		assert.Equal(t, `| A | B | = |
|---|---|---|
| 0 | 0 | 1 |
| 0 | 1 | 1 |
| 1 | 0 | 0 |
| 1 | 1 | 1 |
`, out)
	})

	t.Run("csv with parallel workers", func(t *testing.T) {
		out, err := run(t, "", "table", "AB^", "--format", "csv", "--workers", "4")
		require.NoError(t, err)

		assert.Equal(t, "A,B,=\n0,0,0\n0,1,1\n1,0,1\n1,1,0\n", out)
	})

	t.Run("summary", func(t *testing.T) {
		out, err := run(t, "", "table", "AA!|", "--summary")
		require.NoError(t, err)

		assert.Contains(t, out, "true rows: 2, false rows: 0, ratio: 1.000\n")
		assert.True(t, strings.HasSuffix(out, "tautology\n"))
	})

	t.Run("format from config", func(t *testing.T) {
		path := helpers_test.CreateTempFileWithContents(t, "format: csv\nworkers: 2\n")

		out, err := run(t, "", "--config", path, "table", "A!")
		require.NoError(t, err)
		assert.Equal(t, "A,=\n0,1\n1,0\n", out)
	})

	t.Run("flags override config", func(t *testing.T) {
		path := helpers_test.CreateTempFileWithContents(t, "format: csv\n")

		out, err := run(t, "", "--config", path, "table", "A!", "-f", "plain")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "| A | = |\n"))
	})

	t.Run("large tables need confirmation on a terminal", func(t *testing.T) {
		formula := "ABCDEFGHIJKLMNOPQ" + strings.Repeat("&", 16)

		var out, prompt bytes.Buffer
		cmd := cli.NewRootCmd()
		t.Cleanup(environment.ResetIsInteractive)
		cmd.SetIn(strings.NewReader("maybe\nn\n"))
		cmd.SetOut(&out)
		cmd.SetErr(&prompt)
		cmd.SetArgs([]string{"--interactive", "table", formula})

		require.NoError(t, cmd.Execute())
		assert.Empty(t, out.String())
		// asked twice, "maybe" is not an answer
		assert.Equal(t, 2, strings.Count(prompt.String(), "has 17 variables and 131072 rows"))
	})

	t.Run("too many variables without a terminal", func(t *testing.T) {
		formula := "ABCDEFGHIJKLMNOPQRSTU" + strings.Repeat("&", 20)

		_, err := run(t, "", "table", formula)

		var errTooMany *truthtable.TooManyVariablesError
		require.ErrorAs(t, err, &errTooMany)
		assert.Equal(t, 21, errTooMany.Variables)
		assert.Equal(t, config.DefaultMaxVariables, errTooMany.Limit)
	})

	t.Run("max variables from config", func(t *testing.T) {
		path := helpers_test.CreateTempFileWithContents(t, "max-variables: 2\n")

		_, err := run(t, "", "--config", path, "table", "ABC||")

		var errTooMany *truthtable.TooManyVariablesError
		require.ErrorAs(t, err, &errTooMany)
		assert.Equal(t, 2, errTooMany.Limit)
	})

	t.Run("invalid workers", func(t *testing.T) {
		_, err := run(t, "", "table", "A", "--workers", "0")
		assert.ErrorContains(t, err, "workers")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "", "table", "A", "--format", "xml")
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("malformed formula", func(t *testing.T) {
		_, err := run(t, "", "table", "AB&&")

		var errMalformed *boolexpr.MalformedExpressionError
		assert.ErrorAs(t, err, &errMalformed)
	})
}

func TestConfig(t *testing.T) {
	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := run(t, "", "--config", helpers_test.NonExistingPath(t, "missing.yaml"), "eval", "1")
		assert.ErrorContains(t, err, "failed to load config")
	})

	t.Run("max depth is applied", func(t *testing.T) {
		path := helpers_test.CreateTempFileWithContents(t, "max-depth: 3\n")

		_, err := run(t, "", "--config", path, "eval", "1!!!!!!")

		var errLimit *boolexpr.RecursionLimitError
		require.ErrorAs(t, err, &errLimit)
		assert.Equal(t, 3, errLimit.Limit)
	})
}

func TestNNF(t *testing.T) {
	out, err := run(t, "", "nnf", "AB&!")
	require.NoError(t, err)
	assert.Equal(t, "A!B!|\n", out)

	out, err = run(t, "", "nnf", "AB>!", "--verify")
	require.NoError(t, err)
	assert.Equal(t, "AB!&\nequivalent\n", out)

	// already in normal form, nothing to compare
	out, err = run(t, "", "nnf", "A!B|", "--verify")
	require.NoError(t, err)
	assert.Equal(t, "A!B|\nequivalent\n", out)

	out, err = run(t, "", "nnf", "AB=", "--tree")
	require.NoError(t, err)
	normal, err := boolexpr.New("AB&A!B!&|")
	require.NoError(t, err)
	assert.Equal(t, normal.Tree()+"\n", out)
}

func TestTree(t *testing.T) {
	out, err := run(t, "", "tree", "AB&C|")
	require.NoError(t, err)

	root, err := boolexpr.New("AB&C|")
	require.NoError(t, err)
	assert.Equal(t, root.Tree()+"\n", out)

	t.Run("too deep", func(t *testing.T) {
		path := helpers_test.CreateTempFileWithContents(t, "max-depth: 10\n")

		out, err := run(t, "", "--config", path, "tree", "A"+strings.Repeat("!", 10))

		var errLimit *boolexpr.RecursionLimitError
		require.ErrorAs(t, err, &errLimit)
		assert.Equal(t, 10, errLimit.Limit)
		assert.Empty(t, out)
	})
}

func TestConfigSaveAndShow(t *testing.T) {
	path := helpers_test.NonExistingPath(t, "saved.yaml")

	out, err := run(t, "", "--config", path, "config", "save", "--format", "csv", "--workers", "3", "--summary")
	require.NoError(t, err)
	assert.Equal(t, "Saved config to "+path+"\n", out)

	helpers_test.AssertYamlFileExists(t, path, map[string]any{
		"format":        "csv",
		"workers":       3,
		"max-depth":     boolexpr.DefaultMaxDepth,
		"max-variables": config.DefaultMaxVariables,
		"summary":       true,
	})

	// the other commands pick the saved settings up
	out, err = run(t, "", "--config", path, "table", "A")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "A,=\n0,0\n1,1\n"), out)
	assert.Contains(t, out, "true rows: 1, false rows: 1")

	// saving again only changes what is given
	_, err = run(t, "", "--config", path, "config", "save", "--max-depth", "50")
	require.NoError(t, err)

	out, err = run(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# "+path+"\n"), out)
	assert.Contains(t, out, "format: csv\n")
	assert.Contains(t, out, "workers: 3\n")
	assert.Contains(t, out, "max-depth: 50\n")

	t.Run("invalid values are not written", func(t *testing.T) {
		path := helpers_test.NonExistingPath(t, "invalid.yaml")

		_, err := run(t, "", "--config", path, "config", "save", "--workers", "0")
		assert.ErrorContains(t, err, "workers")

		exists, err := config.FileExists(path)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("other commands still need the file", func(t *testing.T) {
		_, err := run(t, "", "--config", helpers_test.NonExistingPath(t, "missing.yaml"), "config", "show")
		assert.ErrorContains(t, err, "failed to load config")
	})
}

func TestRepl(t *testing.T) {
	input := strings.Join([]string{
		"10&",
		"",
		"A&",
		"AB|",
		":quit",
		"A",
	}, "\n")

	out, err := run(t, input, "repl")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, "0", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "error: "), lines[1])
	assert.Equal(t, []string{
		"| A | B | = |",
		"|---|---|---|",
		"| 0 | 0 | 0 |",
		"| 0 | 1 | 1 |",
		"| 1 | 0 | 1 |",
		"| 1 | 1 | 1 |",
		"nnf: AB|",
		"",
	}, lines[2:])
}

func TestRepl_EndOfInput(t *testing.T) {
	out, err := run(t, "11=", "repl")
	require.NoError(t, err)
	assert.Equal(t, "1\n\n", out)
}

func TestBits(t *testing.T) {
	testCases := map[string][]string{
		"5\n":  {"bits", "add", "2", "3"},
		"48\n": {"bits", "mul", "0x10", "3"},
		"2\n":  {"bits", "gray", "3"},
	}

	for expected, args := range testCases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, err := run(t, "", args...)
			require.NoError(t, err)
			assert.Equal(t, expected, out)
		})
	}

	_, err := run(t, "", "bits", "add", "1", "two")
	assert.Error(t, err)
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eriklarko/rpn-logic/src/phraser"
	"github.com/eriklarko/rpn-logic/src/truthtable"
)

func TestEvaluate(t *testing.T) {
	t.Run("constant formula prints its value", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, evaluate(&out, truthtable.New(), nil, "10>"))
		assert.Equal(t, "0\n", out.String())
	})

	t.Run("headings", func(t *testing.T) {
		heading := phraser.New(headings)

		var out bytes.Buffer
		require.NoError(t, evaluate(&out, truthtable.New(), heading, "AB&"))
		require.NoError(t, evaluate(&out, truthtable.New(), heading, "A!"))

		lines := strings.Split(out.String(), "\n")
		assert.Equal(t, "Truth table for AB&", lines[0])
		assert.Equal(t, "nnf: AB&", lines[7])
		// the second heading comes from the shuffled rest
		assert.NotEqual(t, "Truth table for A!", lines[8])
		assert.Contains(t, lines[8], "A!")
		assert.Equal(t, "nnf: A!", lines[13])
	})

	t.Run("errors are returned", func(t *testing.T) {
		err := evaluate(&bytes.Buffer{}, truthtable.New(), nil, "&")
		assert.Error(t, err)
	})
}

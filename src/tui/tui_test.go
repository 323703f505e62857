package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTUI(input string) (*TUI, *bytes.Buffer) {
	var output bytes.Buffer
	tui := New()
	tui.SetInput(strings.NewReader(input))
	tui.SetOutput(&output)
	return tui, &output
}

func TestPrompt(t *testing.T) {
	tui, output := newTestTUI("AB&\r\nA!\nlast")

	for _, expected := range []string{"AB&", "A!", "last"} {
		line, err := tui.Prompt("> ")
		require.NoError(t, err)
		assert.Equal(t, expected, line)
	}

	_, err := tui.Prompt("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", output.String())
}

func TestAskForever(t *testing.T) {
	tests := map[string]bool{
		"y\n":                 true,
		"YES\n":               true,
		"n\n":                 false,
		"\n":                  false,
		"maybe\nperhaps\ny\n": true,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			tui, output := newTestTUI(input)

			answer, err := tui.AskForever("Render %d rows? [y/N]: ", 1024)
			require.NoError(t, err)
			assert.Equal(t, expected, answer)
			assert.Contains(t, output.String(), "Render 1024 rows? [y/N]: ")
		})
	}

	t.Run("input ends before an answer", func(t *testing.T) {
		tui, _ := newTestTUI("maybe\n")

		_, err := tui.AskForever("? ")
		assert.Error(t, err)
	})
}

func TestLoop(t *testing.T) {
	t.Run("handles every line until input ends", func(t *testing.T) {
		tui, output := newTestTUI("A\n\n  B  \nboom\nC\n")

		var handled []string
		err := Loop(tui, tui.output, "> ", func(line string) error {
			if line == "boom" {
				return errors.New("kaboom")
			}
			handled = append(handled, line)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B", "C"}, handled)
		assert.Contains(t, output.String(), "error: kaboom\n")
	})

	t.Run("stops at the quit command", func(t *testing.T) {
		tui, _ := newTestTUI("A\n:quit\nB\n")

		var handled []string
		err := Loop(tui, tui.output, "> ", func(line string) error {
			handled = append(handled, line)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, handled)
	})

	t.Run("returns reader errors", func(t *testing.T) {
		err := Loop(failingReader{}, &bytes.Buffer{}, "> ", func(string) error { return nil })
		assert.EqualError(t, err, "broken terminal")
	})
}

type failingReader struct{}

func (failingReader) Prompt(string) (string, error) {
	return "", errors.New("broken terminal")
}

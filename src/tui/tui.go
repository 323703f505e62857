package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LineReader reads one line of input after showing a prompt. *liner.State
// satisfies it, as does *TUI.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// QuitCommand ends a Loop
const QuitCommand = ":quit"

type TUI struct {
	input  *bufio.Reader
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  bufio.NewReader(os.Stdin),
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewReader(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// Prompt writes the prompt and returns the next line of input without its
// line ending. io.EOF is returned once the input is exhausted.
func (t *TUI) Prompt(prompt string) (string, error) {
	fmt.Fprint(t.output, prompt)

	line, err := t.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskForever asks a yes/no question until it gets an answer. An empty answer
// means no.
func (t *TUI) AskForever(question string, a ...any) (bool, error) {
	for {
		response, err := t.Prompt(fmt.Sprintf(question, a...))
		if err != nil {
			slog.Error("failed to read user input", "error", err)
			return false, fmt.Errorf("failed to read user input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
	}
}

// Loop prompts for lines until the input ends or QuitCommand is entered,
// handing every non-blank line to handle. Errors from handle are written to
// out and the loop continues.
func Loop(reader LineReader, out io.Writer, prompt string, handle func(line string) error) error {
	for {
		line, err := reader.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case QuitCommand:
			return nil
		}

		if err := handle(line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

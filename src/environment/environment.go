package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal checks of IsInteractive and
// IsInputInteractive, used by tests and the --interactive flag
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive undoes ForceSetIsInteractive
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if output goes to a terminal a user is looking
// at, false if it's piped or redirected
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdout)
}

// IsInputInteractive returns true if input is typed by a user rather than
// piped in
func IsInputInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package cmd

import (
	"os"

	"golang.org/x/term"
)

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// isStdinPipe returns true if stdin is a pipe or file (not a terminal).
func isStdinPipe() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// resolveColor determines whether to use color output based on flags and TTY status.
// colorFlag is the --color value: "auto", "always", or "never".
func resolveColor(colorFlag string, noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return os.Getenv("NO_COLOR") == "" && isStdoutTTY()
	}
}

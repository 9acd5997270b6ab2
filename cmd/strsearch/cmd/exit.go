package cmd

import (
	"errors"
	"fmt"
)

// searchExit is returned by search and compare to signal a specific exit code.
// Same convention as grep: 0=found, 1=not found, 2=error.
type searchExit struct{ code int }

func (e searchExit) Error() string {
	switch e.code {
	case 0:
		return ""
	case 1:
		return "no match"
	default:
		return fmt.Sprintf("search error (exit %d)", e.code)
	}
}

// ExitCode maps the error returned by Execute to a process exit code.
// nil is 0, a searchExit carries its own code, anything else is 2.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se searchExit
	if errors.As(err, &se) {
		return se.code
	}
	return 2
}

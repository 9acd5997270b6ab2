// strsearch finds every occurrence of a pattern in a text with one of four
// exact matching algorithms and reports how much work each one did.
package main

import (
	"os"

	"github.com/corey/strsearch/cmd/strsearch/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}

// Command golisp runs the golisp interpreter's CLI: `run`, `parse`, and
// `version` subcommands over the embeddable pkg/golisp core.
package main

import (
	"fmt"
	"os"

	"github.com/AlxV07/golisp/cmd/golisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

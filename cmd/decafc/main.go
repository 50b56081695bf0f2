// Command decafc is the compiler front-end driver: scan,
// parse, check, and build IR for a single input file.
package main

import (
	"fmt"
	"os"

	"github.com/go-decaf/decafc/cmd/decafc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Stage failures have already written their wire-format
		// diagnostics to the selected output; an empty message means
		// "exit 1, nothing more to say" rather than a usage error.
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

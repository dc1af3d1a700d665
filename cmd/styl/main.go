// Command styl compiles style documents to CSS.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/styl/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()

	// ExitErrors were already reported by the command; argument and flag
	// errors from cobra were not.
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}

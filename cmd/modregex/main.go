// SPDX-License-Identifier: MIT

// Command modregex prints regular expressions for numerals with a given
// remainder. See "modregex --help".
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/modregex/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}

// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modregex"
)

const replPrompt = "Provide space-separated divisor, base and remainder, and an optional file to write to.\n'q' to quit: "

type replCmdOptions struct {
	synthFlags
	quiet bool
}

// NewReplCommand creates the interactive repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &replCmdOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read 'divisor base remainder [file]' lines until 'q'",
		Long: `Interactive loop: every line holds a divisor, a base and a remainder,
optionally followed by a file name. The expression is printed, or written
to the file. A line with 'q' (or end of input) quits. Errors are reported
and the loop goes on.`,
		Args: usage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(rootOpts, opts, cmd)
		},
	}
	opts.register(cmd.Flags())
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the prompt")

	return cmd
}

func runRepl(rootOpts *RootOptions, opts *replCmdOptions, cmd *cobra.Command) error {
	cfg := rootOpts.Config
	opts.apply(cmd.Flags(), &cfg)
	libOpts, err := libOptions(commandContext(cmd.Context()), cfg, rootOpts.Logger)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		if !opts.quiet {
			fmt.Fprint(w, replPrompt)
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "q" || line == "quit" {
			break
		}
		replLine(w, line, libOpts)
	}
	if err = sc.Err(); err != nil {
		return WrapExitError(ExitCommandError, "read input", err)
	}

	return nil
}

// replLine handles one input line and reports to w.
func replLine(w io.Writer, line string, opts []modregex.Option) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields) > 4 {
		fmt.Fprintln(w, "Invalid number of arguments")
		fmt.Fprintln(w)
		return
	}

	var in [3]int
	for i, name := range []string{"divisor", "base", "remainder"} {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			fmt.Fprintf(w, "%s %q: input restricted to integers\n\n", name, fields[i])
			return
		}
		in[i] = v
	}

	re, err := modregex.Synthesize(in[0], in[1], in[2], opts...)
	if err != nil {
		var se *modregex.SynthesisError
		if errors.As(err, &se) {
			fmt.Fprintf(w, "Error [%s]: %s\n\n", se.Kind, se.Kind.Description())
		} else {
			fmt.Fprintf(w, "Error: %v\n\n", err)
		}
		return
	}

	if len(fields) == 4 {
		if err = os.WriteFile(fields[3], []byte(re), 0o644); err != nil {
			fmt.Fprintf(w, "Error: %v\n\n", err)
			return
		}
		fmt.Fprintf(w, "Regex written to '%s'\n", fields[3])
		return
	}
	fmt.Fprintln(w, re)
}

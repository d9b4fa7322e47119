// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modregex"
	"github.com/katalvlaran/modregex/automaton"
	"github.com/katalvlaran/modregex/regex"
)

// Verdict is the judgment of one numeral by every recognizer.
type Verdict struct {
	Numeral   string `json:"numeral"`
	Residue   int    `json:"residue"`
	Regexp    bool   `json:"regexp"`
	AST       bool   `json:"ast"`
	Automaton bool   `json:"automaton"`
}

// agree reports whether the three recognizers gave the same answer.
func (v Verdict) agree() bool { return v.Regexp == v.AST && v.AST == v.Automaton }

// MatchOutput is the payload of the match command.
type MatchOutput struct {
	Regex    string    `json:"regex"`
	Verdicts []Verdict `json:"verdicts"`
}

// Text prints one line per numeral.
func (o MatchOutput) Text() string {
	var sb strings.Builder
	sb.WriteString(o.Regex)
	for _, v := range o.Verdicts {
		word := "no match"
		if v.Regexp {
			word = "match"
		}
		fmt.Fprintf(&sb, "\n%s\t%s\t(residue %d)", v.Numeral, word, v.Residue)
		if !v.agree() {
			fmt.Fprintf(&sb, "\tDISAGREE regexp=%v ast=%v automaton=%v", v.Regexp, v.AST, v.Automaton)
		}
	}
	return sb.String()
}

type matchCmdOptions struct {
	synthFlags
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &matchCmdOptions{}

	cmd := &cobra.Command{
		Use:   "match <divisor> <base> <remainder> <numeral>...",
		Short: "Test numerals against the synthesized regex and the automaton",
		Long: `Synthesize the expression, then judge each numeral with Go's regexp
engine, the expression tree itself and the residue automaton. Letters are
case-insensitive; the empty numeral (pass "") has value 0.

Exits 1 if the recognizers ever disagree.`,
		Example: `  modregex match 3 10 1 1 4 7 10 13 0 2 3`,
		Args:    usage(cobra.MinimumNArgs(4)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(rootOpts, opts, cmd, args)
		},
	}
	opts.register(cmd.Flags())

	return cmd
}

func runMatch(rootOpts *RootOptions, opts *matchCmdOptions, cmd *cobra.Command, args []string) error {
	f := rootOpts.formatter(cmd)
	cfg := rootOpts.Config
	opts.apply(cmd.Flags(), &cfg)

	in, err := parseInts(args[:3], "divisor", "base", "remainder")
	if err != nil {
		return err
	}
	d, b, r := in[0], in[1], in[2]
	libOpts, err := libOptions(commandContext(cmd.Context()), cfg, rootOpts.Logger)
	if err != nil {
		return err
	}
	res, err := modregex.SynthesizeResult(d, b, r, libOpts...)
	if err != nil {
		return synthesisFailure(f, err)
	}
	a, err := automaton.New(d, b, r)
	if err != nil {
		return synthesisFailure(f, err)
	}
	re, err := regexp.Compile(regex.Render(res.Expr, regex.WithAnchors()))
	if err != nil {
		return WrapExitError(ExitFailure, "compile regex", err)
	}

	out := MatchOutput{Regex: res.Text}
	agree := true
	for _, numeral := range args[3:] {
		v, err := judge(a, re, res.Expr, strings.ToLower(numeral))
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("numeral %q", numeral), err)
		}
		agree = agree && v.agree()
		out.Verdicts = append(out.Verdicts, v)
	}
	if err = f.Success(out); err != nil {
		return err
	}
	if !agree {
		return NewExitError(ExitFailure, "recognizers disagree")
	}

	return nil
}

// judge runs numeral through every recognizer.
func judge(a *automaton.Automaton, re *regexp.Regexp, expr *regex.Node, numeral string) (Verdict, error) {
	digits, err := numeralDigits(numeral, a.Base())
	if err != nil {
		return Verdict{}, err
	}
	residue, err := a.Run(digits)
	if err != nil {
		return Verdict{}, err
	}

	return Verdict{
		Numeral:   numeral,
		Residue:   residue,
		Regexp:    re.MatchString(numeral),
		AST:       regex.Matches(expr, digits),
		Automaton: a.Accepts(digits),
	}, nil
}

// numeralDigits parses numeral into digit values below base.
func numeralDigits(numeral string, base int) ([]int, error) {
	digits := make([]int, len(numeral))
	for i := 0; i < len(numeral); i++ {
		x, ok := automaton.Digit(numeral[i])
		if !ok || x >= base {
			return nil, fmt.Errorf("position %d: %q is not a base-%d digit: %w", i, numeral[i], base, automaton.ErrBadSymbol)
		}
		digits[i] = x
	}
	return digits, nil
}

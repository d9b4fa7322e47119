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

// maxVerifyNumerals caps the exhaustive enumeration.
const maxVerifyNumerals = 1 << 22

// maxReported caps the mismatches listed in the output.
const maxReported = 10

// VerifyOutput is the payload of the verify command.
type VerifyOutput struct {
	Divisor    int      `json:"divisor"`
	Base       int      `json:"base"`
	Remainder  int      `json:"remainder"`
	Length     int      `json:"length"`
	Checked    int      `json:"checked"`
	Matched    int      `json:"matched"`
	Mismatched int      `json:"mismatched"`
	Examples   []string `json:"examples,omitempty"` // first mismatching numerals
}

// Text prints a one-line summary plus the first mismatches.
func (o VerifyOutput) Text() string {
	status := "ok"
	if o.Mismatched > 0 {
		status = "FAIL"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d numerals up to length %d checked, %d match, %d mismatched",
		status, o.Checked, o.Length, o.Matched, o.Mismatched)
	for _, s := range o.Examples {
		fmt.Fprintf(&sb, "\n  %q", s)
	}
	return sb.String()
}

type verifyCmdOptions struct {
	synthFlags
	length int
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &verifyCmdOptions{}

	cmd := &cobra.Command{
		Use:   "verify <divisor> <base> <remainder>",
		Short: "Exhaustively check the synthesized regex against the automaton",
		Long: `Enumerate every numeral of length 0..--length over the base's digits and
check that the synthesized expression (through Go's regexp and through the
expression tree) accepts exactly those the residue automaton accepts.

Exits 1 on any mismatch.`,
		Args: usage(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, opts, cmd, args)
		},
	}
	opts.register(cmd.Flags())
	cmd.Flags().IntVarP(&opts.length, "length", "l", 6, "longest numeral checked")

	return cmd
}

func runVerify(rootOpts *RootOptions, opts *verifyCmdOptions, cmd *cobra.Command, args []string) error {
	f := rootOpts.formatter(cmd)
	cfg := rootOpts.Config
	opts.apply(cmd.Flags(), &cfg)

	in, err := parseInts(args, "divisor", "base", "remainder")
	if err != nil {
		return err
	}
	d, b, r := in[0], in[1], in[2]
	if err = modregex.Validate(d, b, r); err != nil {
		return synthesisFailure(f, err)
	}
	if opts.length < 0 || numeralCount(b, opts.length) > maxVerifyNumerals {
		return NewExitError(ExitCommandError, fmt.Sprintf("length %d: more than %d numerals in base %d", opts.length, maxVerifyNumerals, b))
	}

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

	out := VerifyOutput{Divisor: d, Base: b, Remainder: r, Length: opts.length}
	enumerate(b, opts.length, func(numeral string, digits []int) {
		want := a.Accepts(digits)
		out.Checked++
		if want {
			out.Matched++
		}
		if re.MatchString(numeral) != want || regex.Matches(res.Expr, digits) != want {
			out.Mismatched++
			if len(out.Examples) < maxReported {
				out.Examples = append(out.Examples, numeral)
			}
		}
	})
	rootOpts.Logger.Debug("verified", "checked", out.Checked, "mismatched", out.Mismatched)

	if err = f.Success(out); err != nil {
		return err
	}
	if out.Mismatched > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d numerals mismatched", out.Mismatched))
	}

	return nil
}

// numeralCount is the number of strings of length 0..length over base
// digits, saturating above maxVerifyNumerals.
func numeralCount(base, length int) int {
	total, layer := 1, 1
	for i := 0; i < length; i++ {
		layer *= base
		total += layer
		if total > maxVerifyNumerals {
			return total
		}
	}
	return total
}

// enumerate calls fn for every numeral of length 0..length in
// length-then-lexicographic order. digits is reused between calls.
func enumerate(base, length int, fn func(numeral string, digits []int)) {
	buf := make([]byte, 0, length)
	digits := make([]int, 0, length)
	for n := 0; n <= length; n++ {
		buf, digits = buf[:n], digits[:n]
		for i := range digits {
			digits[i], buf[i] = 0, automaton.Symbol(0)
		}
		for {
			fn(string(buf), digits)
			i := n - 1
			for i >= 0 && digits[i] == base-1 {
				digits[i], buf[i] = 0, automaton.Symbol(0)
				i--
			}
			if i < 0 {
				break
			}
			digits[i]++
			buf[i] = automaton.Symbol(digits[i])
		}
	}
}

// SPDX-License-Identifier: MIT

package modregex

import (
	"fmt"

	"github.com/katalvlaran/modregex/automaton"
	"github.com/katalvlaran/modregex/regex"
	"github.com/katalvlaran/modregex/synth"
)

// Result is the full outcome of one synthesis.
type Result struct {
	Text  string      // rendered expression
	Expr  *regex.Node // canonical AST
	Stats synth.Stats // elimination statistics
}

// Synthesize returns a regular expression matching exactly the base-b
// numerals n (digits 0-9a-f, leading zeros allowed, "" = 0) with
// n mod divisor = remainder. The text is anchored (^…$) unless
// WithoutAnchors is given.
//
// Inputs are checked in the order divisor, base, remainder; the first
// violation is returned. Identical inputs and options always give
// byte-identical output.
func Synthesize(divisor, base, remainder int, opts ...Option) (string, error) {
	res, err := SynthesizeResult(divisor, base, remainder, opts...)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// SynthesizeResult is Synthesize returning the AST and run statistics too.
func SynthesizeResult(divisor, base, remainder int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(divisor, base, remainder); err != nil {
		return Result{}, err
	}
	if err := o.Synth.Validate(); err != nil {
		return Result{}, newError(divisor, base, remainder, err)
	}
	if divisor > o.Synth.MaxStates {
		err := fmt.Errorf("divisor %d exceeds max states %d: %w", divisor, o.Synth.MaxStates, ErrBudgetExceeded)
		return Result{}, newError(divisor, base, remainder, err)
	}

	a, err := automaton.New(divisor, base, remainder)
	if err != nil {
		return Result{}, newError(divisor, base, remainder, err)
	}
	out, err := synth.Eliminate(a, o.synthOption())
	if err != nil {
		return Result{}, newError(divisor, base, remainder, err)
	}

	return Result{
		Text:  regex.Render(out.Expr, o.renderOptions()...),
		Expr:  out.Expr,
		Stats: out.Stats,
	}, nil
}

// SPDX-License-Identifier: MIT

package modregex

import (
	"github.com/katalvlaran/modregex/automaton"
	"github.com/katalvlaran/modregex/synth"
)

// Estimate forecasts the cost of synthesizing the costliest remainder for
// divisor and base without building an expression.
//
// Every remainder 0..divisor−1 is projected and the one with the largest
// PeakNodes is returned, ties going to the smallest remainder; the
// projection's Remainder names it. The scan stops at the first remainder
// graded synth.RiskSevere, since no other can grade worse. Divisors above
// MaxStates project to +Inf with synth.RiskSevere and Remainder 0.
//
// Complexity: O(d⁴) float operations worst case, O(d²) memory.
func Estimate(divisor, base int, opts ...Option) (synth.Projection, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(divisor, base, 0); err != nil {
		return synth.Projection{}, err
	}
	if err := o.Synth.Validate(); err != nil {
		return synth.Projection{}, newError(divisor, base, 0, err)
	}
	if divisor > o.Synth.MaxStates {
		return synth.Severe(divisor), nil
	}

	var worst synth.Projection
	for r := 0; r < divisor; r++ {
		pr, err := project(divisor, base, r, o)
		if err != nil {
			return synth.Projection{}, err
		}
		if r == 0 || pr.PeakNodes > worst.PeakNodes {
			worst = pr
		}
		if pr.Risk == synth.RiskSevere {
			return pr, nil
		}
	}

	return worst, nil
}

// EstimateRemainder forecasts the cost of synthesizing one remainder.
//
// Complexity: O(d³) float operations, O(d²) memory.
func EstimateRemainder(divisor, base, remainder int, opts ...Option) (synth.Projection, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(divisor, base, remainder); err != nil {
		return synth.Projection{}, err
	}
	if err := o.Synth.Validate(); err != nil {
		return synth.Projection{}, newError(divisor, base, remainder, err)
	}
	if divisor > o.Synth.MaxStates {
		pr := synth.Severe(divisor)
		pr.Remainder = remainder
		return pr, nil
	}

	return project(divisor, base, remainder, o)
}

func project(divisor, base, remainder int, o Options) (synth.Projection, error) {
	a, err := automaton.New(divisor, base, remainder)
	if err != nil {
		return synth.Projection{}, newError(divisor, base, remainder, err)
	}
	pr, err := synth.Project(a, o.synthOption())
	if err != nil {
		return synth.Projection{}, newError(divisor, base, remainder, err)
	}

	return pr, nil
}

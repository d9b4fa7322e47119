// SPDX-License-Identifier: MIT

package modregex

import (
	"fmt"

	"github.com/katalvlaran/modregex/automaton"
)

// validateModulus rejects d ≤ 0.
func validateModulus(d int) error {
	if d <= 0 {
		return fmt.Errorf("divisor %d: %w", d, ErrInvalidModulus)
	}
	return nil
}

// validateBase rejects b outside 1..automaton.MaxBase.
func validateBase(b int) error {
	if b <= 0 || b > automaton.MaxBase {
		return fmt.Errorf("base %d: %w", b, ErrInvalidBase)
	}
	return nil
}

// validateRemainder rejects r outside [0, d).
func validateRemainder(d, r int) error {
	if r < 0 || r >= d {
		return fmt.Errorf("remainder %d not in [0, %d): %w", r, d, ErrRemainderOutOfRange)
	}
	return nil
}

// Validate checks the inputs in the order divisor, base, remainder and
// returns the first violation as a *SynthesisError, or nil.
func Validate(divisor, base, remainder int) error {
	for _, check := range []func() error{
		func() error { return validateModulus(divisor) },
		func() error { return validateBase(base) },
		func() error { return validateRemainder(divisor, remainder) },
	} {
		if err := check(); err != nil {
			return newError(divisor, base, remainder, err)
		}
	}

	return nil
}

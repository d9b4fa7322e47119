// SPDX-License-Identifier: MIT

package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrBudgetExceeded is returned when a fragment, the step count, the state
	// count or the time limit goes over its configured cap.
	ErrBudgetExceeded = errors.New("synth: computation budget exceeded")

	// ErrNilAutomaton is returned when a nil automaton is passed in.
	ErrNilAutomaton = errors.New("synth: automaton is nil")

	// ErrInvalidOption is returned for option values that describe no budget.
	ErrInvalidOption = errors.New("synth: invalid option")

	// ErrLiveMask is returned when a live mask does not cover every state.
	ErrLiveMask = errors.New("synth: live mask length mismatch")
)

// synthErrorf wraps err with an operation tag.
func synthErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// budgetErrorf reports which cap was hit.
func budgetErrorf(limit string, got, max any) error {
	return fmt.Errorf("%s %v exceeds %v: %w", limit, got, max, ErrBudgetExceeded)
}

// SPDX-License-Identifier: MIT

package modregex

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/modregex/automaton"
	"github.com/katalvlaran/modregex/synth"
)

// Sentinel errors returned (wrapped in *SynthesisError) by this package.
var (
	// ErrInvalidModulus indicates a divisor d ≤ 0.
	ErrInvalidModulus = errors.New("modregex: divisor must be positive")

	// ErrInvalidBase indicates a base outside 1..16.
	ErrInvalidBase = errors.New("modregex: base must be in 1..16")

	// ErrRemainderOutOfRange indicates r < 0 or r ≥ d.
	ErrRemainderOutOfRange = errors.New("modregex: remainder out of range")

	// ErrBudgetExceeded indicates the computation budget was hit.
	ErrBudgetExceeded = synth.ErrBudgetExceeded

	// ErrInvalidOption indicates an option value that describes no budget.
	ErrInvalidOption = synth.ErrInvalidOption
)

// ErrorKind classifies a SynthesisError.
type ErrorKind int

const (
	// KindInvalidModulus: d ≤ 0.
	KindInvalidModulus ErrorKind = iota + 1
	// KindInvalidBase: b ≤ 0 or b > 16.
	KindInvalidBase
	// KindRemainderOutOfRange: r < 0 or r ≥ d.
	KindRemainderOutOfRange
	// KindBudgetExceeded: a node, step, state or time cap was hit.
	KindBudgetExceeded
	// KindCanceled: the context was canceled or its deadline passed.
	KindCanceled
	// KindAborted: the per-round hook returned an error.
	KindAborted
	// KindInvalidOption: a budget or policy option is out of range.
	KindInvalidOption
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidModulus:
		return "InvalidModulus"
	case KindInvalidBase:
		return "InvalidBase"
	case KindRemainderOutOfRange:
		return "RemainderOutOfRange"
	case KindBudgetExceeded:
		return "BudgetExceeded"
	case KindCanceled:
		return "Canceled"
	case KindAborted:
		return "Aborted"
	case KindInvalidOption:
		return "InvalidOption"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Description is a user-facing sentence for the kind.
func (k ErrorKind) Description() string {
	switch k {
	case KindInvalidModulus:
		return "cannot divide by zero or a negative number"
	case KindInvalidBase:
		return "bases are limited to 1..16 so every digit has a hexadecimal symbol"
	case KindRemainderOutOfRange:
		return "remainder must be less than divisor, since n % d yields a class in [0..d)"
	case KindBudgetExceeded:
		return "the expression grows past the computation budget; raise the limits or pick a smaller divisor"
	case KindCanceled:
		return "synthesis was canceled"
	case KindAborted:
		return "synthesis was stopped by a progress hook"
	case KindInvalidOption:
		return "limits must be positive and the order must be ascending or min-degree"
	default:
		return "unknown error"
	}
}

// SynthesisError reports why Synthesize failed for the given inputs.
type SynthesisError struct {
	Kind      ErrorKind
	Divisor   int
	Base      int
	Remainder int
	Err       error
}

// Error implements error.
func (e *SynthesisError) Error() string {
	return fmt.Sprintf("modregex: synthesize(d=%d, b=%d, r=%d): %s: %v",
		e.Divisor, e.Base, e.Remainder, e.Kind, e.Err)
}

// Unwrap exposes the underlying sentinel or cause.
func (e *SynthesisError) Unwrap() error { return e.Err }

// newError classifies err for the inputs d, b, r.
func newError(d, b, r int, err error) *SynthesisError {
	var kind ErrorKind
	switch {
	case errors.Is(err, ErrInvalidModulus):
		kind = KindInvalidModulus
	case errors.Is(err, ErrInvalidBase):
		kind = KindInvalidBase
	case errors.Is(err, ErrRemainderOutOfRange):
		kind = KindRemainderOutOfRange
	case errors.Is(err, ErrBudgetExceeded), errors.Is(err, automaton.ErrTooLarge):
		kind = KindBudgetExceeded
	case errors.Is(err, ErrInvalidOption):
		kind = KindInvalidOption
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		kind = KindCanceled
	default:
		kind = KindAborted
	}

	return &SynthesisError{Kind: kind, Divisor: d, Base: b, Remainder: r, Err: err}
}

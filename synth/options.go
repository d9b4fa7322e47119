// SPDX-License-Identifier: MIT

package synth

import (
	"context"
	"fmt"
	"time"
)

// Order selects the elimination policy for interior states.
type Order int

const (
	// OrderAscending eliminates interior states by ascending state index.
	// It is the documented default and yields reproducible output.
	OrderAscending Order = iota

	// OrderMinDegree eliminates, at every round, the remaining interior state
	// with the smallest in-degree × out-degree product (ties go to the lower
	// index). Usually keeps intermediate fragments much smaller.
	OrderMinDegree
)

// String returns the flag spelling of the order.
func (o Order) String() string {
	switch o {
	case OrderAscending:
		return "ascending"
	case OrderMinDegree:
		return "min-degree"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "ascending" or "min-degree" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "ascending", "asc", "":
		return OrderAscending, nil
	case "min-degree", "mindegree":
		return OrderMinDegree, nil
	default:
		return OrderAscending, fmt.Errorf("order %q: %w", s, ErrInvalidOption)
	}
}

// Budget defaults.
const (
	// DefaultMaxNodes caps the node count of any single fragment.
	DefaultMaxNodes = 1 << 18

	// DefaultMaxSteps caps the total number of pair updates.
	DefaultMaxSteps = 1 << 24

	// DefaultMaxStates caps the number of automaton states; it bounds the
	// memory of the automaton and the elimination table.
	DefaultMaxStates = 1 << 10

	// deadlineEvery is how many pair updates pass between wall-clock probes.
	deadlineEvery = 2048
)

// Round describes one finished elimination round.
type Round struct {
	Index     int // 0-based round number
	State     int // automaton state eliminated
	Updates   int // pair updates performed in this round
	Nodes     int // total node count of all remaining cells
	Peak      int // largest fragment seen so far
	Remaining int // states still to eliminate after this round
}

// Option configures Eliminate and Project.
type Option func(*Options)

// Options holds the budget and policy knobs of one synthesis run.
type Options struct {
	// Ctx allows cancellation between rounds; defaults to context.Background().
	Ctx context.Context

	// MaxNodes is the largest fragment allowed (> 0).
	MaxNodes int

	// MaxSteps caps total pair updates; 0 means unlimited.
	MaxSteps int

	// MaxStates caps the automaton size (> 0).
	MaxStates int

	// TimeLimit is a soft wall-clock budget; 0 disables it.
	TimeLimit time.Duration

	// Order is the interior elimination policy.
	Order Order

	// Minimize runs Moore minimization before elimination.
	Minimize bool

	// Trim skips states that are unreachable or cannot reach accept.
	Trim bool

	// OnEliminate, if non-nil, is invoked after every round.
	// Returning an error aborts synthesis with that error.
	OnEliminate func(Round) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - MaxNodes = DefaultMaxNodes, MaxSteps = DefaultMaxSteps,
//     MaxStates = DefaultMaxStates, no time limit
//   - ascending order, minimization on, dead-state trimming on
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxNodes:  DefaultMaxNodes,
		MaxSteps:  DefaultMaxSteps,
		MaxStates: DefaultMaxStates,
		Order:     OrderAscending,
		Minimize:  true,
		Trim:      true,
	}
}

// Validate reports option values that cannot describe a budget.
func (o Options) Validate() error {
	switch {
	case o.MaxNodes <= 0:
		return fmt.Errorf("max nodes %d: %w", o.MaxNodes, ErrInvalidOption)
	case o.MaxSteps < 0:
		return fmt.Errorf("max steps %d: %w", o.MaxSteps, ErrInvalidOption)
	case o.MaxStates <= 0:
		return fmt.Errorf("max states %d: %w", o.MaxStates, ErrInvalidOption)
	case o.TimeLimit < 0:
		return fmt.Errorf("time limit %s: %w", o.TimeLimit, ErrInvalidOption)
	case o.Order != OrderAscending && o.Order != OrderMinDegree:
		return fmt.Errorf("order %s: %w", o.Order, ErrInvalidOption)
	}

	return nil
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes sets the largest fragment allowed.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithMaxSteps sets the pair-update cap; 0 disables it.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithMaxStates sets the automaton size cap.
func WithMaxStates(n int) Option {
	return func(o *Options) { o.MaxStates = n }
}

// WithTimeLimit sets a soft wall-clock budget; 0 disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithOrder selects the interior elimination policy.
func WithOrder(ord Order) Option {
	return func(o *Options) { o.Order = ord }
}

// WithoutMinimize eliminates over the raw residue automaton. Divisors
// sharing factors with the base then keep every residue in the table,
// which can exhaust the default budgets.
func WithoutMinimize() Option {
	return func(o *Options) { o.Minimize = false }
}

// WithoutTrim keeps dead states in the table.
func WithoutTrim() Option {
	return func(o *Options) { o.Trim = false }
}

// WithOnEliminate installs fn as a per-round hook.
func WithOnEliminate(fn func(Round) error) Option {
	return func(o *Options) { o.OnEliminate = fn }
}

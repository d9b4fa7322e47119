// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"time"

	"github.com/katalvlaran/modregex/automaton"
	"github.com/katalvlaran/modregex/matrix"
	"github.com/katalvlaran/modregex/regex"
)

// Operation name constants for unified error wrapping.
const (
	opEliminate = "Eliminate"
	opProject   = "Project"
)

// isEmpty reports the "no path" cell of a regex table.
func isEmpty(n *regex.Node) bool { return n.Kind() == regex.KindEmpty }

// engine carries the mutable state of one elimination run.
type engine struct {
	opts        Options
	table       *matrix.Dense[*regex.Node]
	active      []bool
	stats       Stats
	started     time.Time
	deadline    time.Time
	useDeadline bool
}

// Eliminate converts the automaton into an equivalent regular expression by
// state elimination over a synthetic source S and sink F:
//
//	R[i][j] ← R[i][j] ∪ R[i][k] · R[k][k]* · R[k][j]    for all i, j ≠ k
//
// skipping pairs whose R[i][k] or R[k][j] is ∅. Interior states go first in
// the configured Order, then accept (if it differs from start), then start;
// the answer is R[S][F]. Every cell is built by the simplifying
// constructors, so fragments stay canonical after each update.
//
// Budget: MaxStates before allocating; MaxNodes and MaxSteps after every
// pair update; TimeLimit every 2048 updates and after each round; Ctx and
// OnEliminate between rounds. Budget violations wrap ErrBudgetExceeded.
//
// Complexity: O(n) rounds × O(n²) updates, each bounded by MaxNodes.
func Eliminate(a *automaton.Automaton, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if a == nil {
		return Result{}, synthErrorf(opEliminate, ErrNilAutomaton)
	}
	if err := o.Validate(); err != nil {
		return Result{}, synthErrorf(opEliminate, err)
	}
	if a.States() > o.MaxStates {
		return Result{}, synthErrorf(opEliminate, budgetErrorf("states", a.States(), o.MaxStates))
	}
	if o.Minimize {
		a = a.Minimize()
	}

	live := liveMask(a, o.Trim)
	table, l, err := buildTable(a, live)
	if err != nil {
		return Result{}, synthErrorf(opEliminate, err)
	}
	e := &engine{opts: o, table: table, active: make([]bool, l.order())}
	e.stats.States = a.States()
	e.stats.LiveStates = len(l.state)
	for i := range e.active {
		e.active[i] = true
	}
	e.started = time.Now()
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = e.started.Add(o.TimeLimit)
	}

	if l.row[a.Start()] < 0 || l.row[a.Accept()] < 0 {
		e.stats.PeakNodes, e.stats.ResultNodes = 1, 1
		return Result{Expr: regex.Empty(), Stats: e.stats}, nil
	}
	if e.stats.PeakNodes = e.largest(); e.stats.PeakNodes > o.MaxNodes {
		return Result{}, synthErrorf(opEliminate, budgetErrorf("nodes", e.stats.PeakNodes, o.MaxNodes))
	}

	p := newPlanner(o.Order, l, a.Start(), a.Accept())
	cost := degreeCost(table, e.active, isEmpty)
	for {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, synthErrorf(opEliminate, fmt.Errorf("round %d: %w", e.stats.Rounds, err))
		}
		k, ok := p.next(cost)
		if !ok {
			break
		}
		var updates int
		if updates, err = e.round(k); err != nil {
			return Result{}, synthErrorf(opEliminate, err)
		}
		if e.expired() {
			return Result{}, synthErrorf(opEliminate, e.timeErr())
		}
		if o.OnEliminate != nil {
			r := Round{
				Index:     e.stats.Rounds - 1,
				State:     l.state[k],
				Updates:   updates,
				Nodes:     e.total(),
				Peak:      e.stats.PeakNodes,
				Remaining: p.remaining(),
			}
			if err = o.OnEliminate(r); err != nil {
				return Result{}, synthErrorf(opEliminate, err)
			}
		}
	}

	expr := table.Cell(l.source, l.sink)
	e.stats.ResultNodes = expr.Size()

	return Result{Expr: expr, Stats: e.stats}, nil
}

// round folds pivot k into every remaining pair and detaches it.
func (e *engine) round(k int) (int, error) {
	loop := regex.Kleene(e.table.Cell(k, k))
	updates, err := matrix.Pivot(e.table, k, e.active, isEmpty, func(_, _ int, ij, ik, kj *regex.Node) (*regex.Node, error) {
		e.stats.Steps++
		if e.opts.MaxSteps > 0 && e.stats.Steps > e.opts.MaxSteps {
			return nil, budgetErrorf("steps", e.stats.Steps, e.opts.MaxSteps)
		}
		v := regex.Alt(ij, regex.Cat(ik, loop, kj))
		size := v.Size()
		if size > e.opts.MaxNodes {
			return nil, budgetErrorf("nodes", size, e.opts.MaxNodes)
		}
		if size > e.stats.PeakNodes {
			e.stats.PeakNodes = size
		}
		if e.stats.Steps%deadlineEvery == 0 && e.expired() {
			return nil, e.timeErr()
		}
		return v, nil
	})
	if err != nil {
		return updates, fmt.Errorf("round %d: %w", e.stats.Rounds, err)
	}
	if err = e.table.ClearCross(k, regex.Empty()); err != nil {
		return updates, err
	}
	e.active[k] = false
	e.stats.Rounds++

	return updates, nil
}

// expired probes the wall clock when a time limit is set.
func (e *engine) expired() bool {
	return e.useDeadline && time.Now().After(e.deadline)
}

func (e *engine) timeErr() error {
	return budgetErrorf("elapsed", time.Since(e.started).Round(time.Millisecond), e.opts.TimeLimit)
}

// largest returns the biggest fragment currently in the table.
func (e *engine) largest() int {
	peak := 0
	n := e.table.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if s := e.table.Cell(i, j).Size(); s > peak {
				peak = s
			}
		}
	}

	return peak
}

// total sums the sizes of all non-empty cells.
func (e *engine) total() int {
	sum := 0
	n := e.table.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c := e.table.Cell(i, j); !isEmpty(c) {
				sum += c.Size()
			}
		}
	}

	return sum
}

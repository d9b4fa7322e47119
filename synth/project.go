// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/modregex/automaton"
	"github.com/katalvlaran/modregex/matrix"
)

// isZero reports the "no path" cell of a size table.
func isZero(v float64) bool { return v == 0 }

// Project forecasts an elimination run without building any expression.
//
// It replays the same table layout and elimination order as Eliminate over
// a matrix of fragment sizes and applies the unsimplified size recurrence
//
//	loop = R[k][k] > 0 ? R[k][k]+1 : 0
//	cand = R[i][k] + loop + R[k][j] + 1
//	R[i][j] = R[i][j] > 0 ? R[i][j] + cand + 1 : cand
//
// so PeakNodes is an upper bound of what Eliminate would meet before any
// simplification. Risk grades PeakNodes against MaxNodes. Automata larger
// than MaxStates are not tabulated: they project to +Inf with RiskSevere.
//
// Complexity: O(n³) float operations, O(n²) memory.
func Project(a *automaton.Automaton, opts ...Option) (Projection, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if a == nil {
		return Projection{}, synthErrorf(opProject, ErrNilAutomaton)
	}
	if err := o.Validate(); err != nil {
		return Projection{}, synthErrorf(opProject, err)
	}
	remainder := a.Accept()
	if a.States() > o.MaxStates {
		pr := Severe(a.States())
		pr.Remainder = remainder
		return pr, nil
	}
	if o.Minimize {
		a = a.Minimize()
	}

	live := liveMask(a, o.Trim)
	table, l, err := sizeTable(a, live)
	if err != nil {
		return Projection{}, err
	}
	pr := Projection{Remainder: remainder, States: a.States(), LiveStates: len(l.state)}
	if l.row[a.Start()] < 0 || l.row[a.Accept()] < 0 {
		pr.ResultNodes, pr.PeakNodes = 1, 1
		pr.Risk = gradeRisk(pr.PeakNodes, o.MaxNodes)
		return pr, nil
	}
	for i := 0; i < table.Rows(); i++ {
		for j := 0; j < table.Cols(); j++ {
			pr.PeakNodes = math.Max(pr.PeakNodes, table.Cell(i, j))
		}
	}

	active := make([]bool, l.order())
	for i := range active {
		active[i] = true
	}
	p := newPlanner(o.Order, l, a.Start(), a.Accept())
	cost := degreeCost(table, active, isZero)
	for {
		if err = o.Ctx.Err(); err != nil {
			return Projection{}, synthErrorf(opProject, fmt.Errorf("round %d: %w", pr.Rounds, err))
		}
		k, ok := p.next(cost)
		if !ok {
			break
		}
		loop := table.Cell(k, k)
		if loop > 0 {
			loop++
		}
		var updates int
		updates, err = matrix.Pivot(table, k, active, isZero, func(_, _ int, ij, ik, kj float64) (float64, error) {
			v := ik + loop + kj + 1
			if ij > 0 {
				v += ij + 1
			}
			pr.PeakNodes = math.Max(pr.PeakNodes, v)
			return v, nil
		})
		if err != nil {
			return Projection{}, synthErrorf(opProject, err)
		}
		if err = table.ClearCross(k, 0); err != nil {
			return Projection{}, synthErrorf(opProject, err)
		}
		active[k] = false
		pr.PairUpdates += updates
		pr.Rounds++
	}

	pr.ResultNodes = table.Cell(l.source, l.sink)
	if pr.ResultNodes == 0 {
		pr.ResultNodes = 1 // ∅
	}
	pr.Risk = gradeRisk(pr.PeakNodes, o.MaxNodes)

	return pr, nil
}

// Severe is the projection reported for automata too large to tabulate.
func Severe(states int) Projection {
	return Projection{
		States:      states,
		PeakNodes:   math.Inf(1),
		ResultNodes: math.Inf(1),
		Risk:        RiskSevere,
	}
}

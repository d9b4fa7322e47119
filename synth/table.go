// SPDX-License-Identifier: MIT

package synth

import (
	"github.com/katalvlaran/modregex/automaton"
	"github.com/katalvlaran/modregex/matrix"
	"github.com/katalvlaran/modregex/regex"
)

// layout maps live automaton states onto table rows.
// Rows 0..n-1 hold live states in ascending state order, row n is the
// synthetic source S and row n+1 the synthetic sink F.
type layout struct {
	state  []int // row → automaton state
	row    []int // automaton state → row, -1 when dead
	source int
	sink   int
}

func newLayout(live []bool) layout {
	l := layout{row: make([]int, len(live))}
	for s, ok := range live {
		if !ok {
			l.row[s] = -1
			continue
		}
		l.row[s] = len(l.state)
		l.state = append(l.state, s)
	}
	l.source = len(l.state)
	l.sink = l.source + 1

	return l
}

// order is the table order, live states plus S and F.
func (l layout) order() int { return len(l.state) + 2 }

// liveMask returns the states kept by elimination.
func liveMask(a *automaton.Automaton, trim bool) []bool {
	if trim {
		return a.Live()
	}
	live := make([]bool, a.States())
	for i := range live {
		live[i] = true
	}

	return live
}

// NewTable builds the initial elimination table of a restricted to live
// states: R[i][j] is the union of every digit leading from row i to row j,
// with ε edges S→start and accept→F. Rows are the live states in ascending
// order followed by S and F. Self-loops stay on the diagonal.
//
// Complexity: O(states·base) time, O(live²) memory.
func NewTable(a *automaton.Automaton, live []bool) (*matrix.Dense[*regex.Node], error) {
	if a == nil {
		return nil, synthErrorf("NewTable", ErrNilAutomaton)
	}
	if len(live) != a.States() {
		return nil, synthErrorf("NewTable", ErrLiveMask)
	}
	t, _, err := buildTable(a, live)

	return t, err
}

func buildTable(a *automaton.Automaton, live []bool) (*matrix.Dense[*regex.Node], layout, error) {
	l := newLayout(live)
	t, err := matrix.NewSquare(l.order(), regex.Empty())
	if err != nil {
		return nil, l, synthErrorf("NewTable", err)
	}

	byTarget := make([][]*regex.Node, len(l.state))
	for i, s := range l.state {
		for j := range byTarget {
			byTarget[j] = byTarget[j][:0]
		}
		for x := 0; x < a.Base(); x++ {
			if j := l.row[a.Step(s, x)]; j >= 0 {
				byTarget[j] = append(byTarget[j], regex.Literal(x))
			}
		}
		for j, lits := range byTarget {
			if len(lits) > 0 {
				t.SetCell(i, j, regex.Alt(lits...))
			}
		}
	}
	if i := l.row[a.Start()]; i >= 0 {
		t.SetCell(l.source, i, regex.Epsilon())
	}
	if i := l.row[a.Accept()]; i >= 0 {
		t.SetCell(i, l.sink, regex.Epsilon())
	}

	return t, l, nil
}

// sizeTable is the float64 twin of buildTable used by Project: cells hold the
// node count of the fragment buildTable would place there, 0 meaning ∅.
func sizeTable(a *automaton.Automaton, live []bool) (*matrix.Dense[float64], layout, error) {
	l := newLayout(live)
	t, err := matrix.NewSquare(l.order(), 0.0)
	if err != nil {
		return nil, l, synthErrorf("Project", err)
	}

	counts := make([]int, len(l.state))
	for i, s := range l.state {
		clear(counts)
		for x := 0; x < a.Base(); x++ {
			if j := l.row[a.Step(s, x)]; j >= 0 {
				counts[j]++
			}
		}
		for j, c := range counts {
			switch {
			case c == 1:
				t.SetCell(i, j, 1)
			case c > 1:
				t.SetCell(i, j, float64(c+1)) // union node plus c literals
			}
		}
	}
	if i := l.row[a.Start()]; i >= 0 {
		t.SetCell(l.source, i, 1)
	}
	if i := l.row[a.Accept()]; i >= 0 {
		t.SetCell(i, l.sink, 1)
	}

	return t, l, nil
}

// SPDX-License-Identifier: MIT

package synth

import "github.com/katalvlaran/modregex/matrix"

// planner yields table rows in elimination order: interior rows by policy,
// then the accept row (unless it is also the start row), then the start row.
type planner struct {
	order    Order
	interior []int // interior rows still to eliminate, ascending
	tail     []int // accept (if distinct) then start
}

func newPlanner(ord Order, l layout, start, accept int) *planner {
	p := &planner{order: ord}
	for row, s := range l.state {
		if s != start && s != accept {
			p.interior = append(p.interior, row)
		}
	}
	if accept != start {
		p.tail = append(p.tail, l.row[accept])
	}
	p.tail = append(p.tail, l.row[start])

	return p
}

// remaining counts rows not yet handed out.
func (p *planner) remaining() int { return len(p.interior) + len(p.tail) }

// next pops the following pivot row. cost is consulted for OrderMinDegree only.
func (p *planner) next(cost func(k int) int) (int, bool) {
	if len(p.interior) > 0 {
		pick := 0
		if p.order == OrderMinDegree {
			best := cost(p.interior[0])
			for i := 1; i < len(p.interior); i++ {
				if c := cost(p.interior[i]); c < best {
					best, pick = c, i
				}
			}
		}
		k := p.interior[pick]
		p.interior = append(p.interior[:pick], p.interior[pick+1:]...)
		return k, true
	}
	if len(p.tail) > 0 {
		k := p.tail[0]
		p.tail = p.tail[1:]
		return k, true
	}

	return 0, false
}

// degreeCost returns in-degree × out-degree of row k over active rows.
func degreeCost[T any](t *matrix.Dense[T], active []bool, absent func(T) bool) func(k int) int {
	return func(k int) int {
		var in, out int
		for i := range active {
			if !active[i] || i == k {
				continue
			}
			if !absent(t.Cell(i, k)) {
				in++
			}
			if !absent(t.Cell(k, i)) {
				out++
			}
		}
		return in * out
	}
}

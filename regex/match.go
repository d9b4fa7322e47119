// SPDX-License-Identifier: MIT

package regex

// Matches reports whether the whole digit sequence belongs to L(n).
//
// It works directly on the tree by propagating the set of reachable input
// positions, so it accepts raw and canonical trees alike and never consults
// a regex engine. Digits outside the alphabet simply never match a literal.
//
// Complexity: O(size · (len+1)²) in the worst case.
func Matches(n *Node, digits []int) bool {
	from := make([]bool, len(digits)+1)
	from[0] = true

	return positions(n, digits, from)[len(digits)]
}

// positions returns the set of positions reachable after matching n from
// any position in from.
func positions(n *Node, digits []int, from []bool) []bool {
	to := make([]bool, len(from))
	switch n.kind {
	case KindEmpty:
	case KindEpsilon:
		copy(to, from)
	case KindLiteral:
		for i, d := range digits {
			if from[i] && d == int(n.sym) {
				to[i+1] = true
			}
		}
	case KindConcat:
		copy(to, from)
		for _, s := range n.subs {
			to = positions(s, digits, to)
		}
	case KindUnion:
		for _, s := range n.subs {
			for i, ok := range positions(s, digits, from) {
				to[i] = to[i] || ok
			}
		}
	case KindStar:
		copy(to, from)
		frontier := from
		for {
			next := positions(n.subs[0], digits, frontier)
			grown := false
			for i, ok := range next {
				if ok && !to[i] {
					to[i] = true
					grown = true
				} else {
					next[i] = false
				}
			}
			if !grown {
				break
			}
			frontier = next
		}
	}

	return to
}

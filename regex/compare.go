// SPDX-License-Identifier: MIT

package regex

import "slices"

// Compare defines the canonical total order on trees:
// size, then kind, then literal digit, then arity, then children left to
// right. It returns -1, 0 or +1. Compare(a, b) == 0 iff a and b are
// structurally identical.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a.size != b.size {
		return sign(a.size - b.size)
	}
	if a.kind != b.kind {
		return sign(int(a.kind) - int(b.kind))
	}
	if a.kind == KindLiteral {
		return sign(int(a.sym) - int(b.sym))
	}
	if len(a.subs) != len(b.subs) {
		return sign(len(a.subs) - len(b.subs))
	}
	for i := range a.subs {
		if c := Compare(a.subs[i], b.subs[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Equal reports structural equality.
func Equal(a, b *Node) bool { return Compare(a, b) == 0 }

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// dedup drops later duplicates, keeping first occurrences in order.
// Complexity: O(m²) comparisons, each bounded by the smaller tree.
func dedup(xs []*Node) []*Node {
	out := xs[:0:0]
next:
	for _, x := range xs {
		for _, y := range out {
			if Equal(x, y) {
				continue next
			}
		}
		out = append(out, x)
	}

	return out
}

// sortCanonical orders union members by Compare.
func sortCanonical(xs []*Node) {
	slices.SortFunc(xs, Compare)
}

// SPDX-License-Identifier: MIT

package regex

// Simplify rewrites n bottom-up into canonical form.
//
// Contract:
//   - Language-preserving: L(Simplify(n)) == L(n).
//   - Idempotent: Simplify(Simplify(n)) returns its argument unchanged, and
//     re-simplifying a raw copy of a canonical tree yields an Equal tree.
//   - O(1) for nodes built by Cat, Alt, Kleene or a previous Simplify.
func Simplify(n *Node) *Node {
	if n.simple {
		return n
	}
	switch n.kind {
	case KindConcat:
		return mkConcat(simplifyAll(n.subs))
	case KindUnion:
		return mkUnion(simplifyAll(n.subs))
	case KindStar:
		return mkStar(Simplify(n.subs[0]))
	default:
		return n // leaves are always canonical
	}
}

// Cat returns the canonical concatenation of xs.
func Cat(xs ...*Node) *Node { return mkConcat(simplifyAll(xs)) }

// Alt returns the canonical union of xs.
func Alt(xs ...*Node) *Node { return mkUnion(simplifyAll(xs)) }

// Kleene returns the canonical closure of x.
func Kleene(x *Node) *Node { return mkStar(Simplify(x)) }

func simplifyAll(xs []*Node) []*Node {
	out := make([]*Node, len(xs))
	for i, x := range xs {
		out[i] = Simplify(x)
	}

	return out
}

// parts views a canonical node as a concatenation list.
func parts(x *Node) []*Node {
	if x.kind == KindConcat {
		return x.subs
	}

	return []*Node{x}
}

// mkConcat: flatten, ∅ absorbs, ε vanishes, x*x* collapses.
// Inputs must be canonical.
func mkConcat(xs []*Node) *Node {
	flat := make([]*Node, 0, len(xs))
	for _, x := range xs {
		switch x.kind {
		case KindEmpty:
			return emptyNode
		case KindEpsilon:
			continue
		}
		for _, c := range parts(x) {
			if c.kind == KindStar && len(flat) > 0 && Equal(flat[len(flat)-1], c) {
				continue
			}
			flat = append(flat, c)
		}
	}
	switch len(flat) {
	case 0:
		return epsilonNode
	case 1:
		return flat[0]
	}

	return newNode(KindConcat, flat, true)
}

// mkUnion: flatten, drop ∅, dedup, pull common factors to a fixpoint,
// absorb ε into x·x*, drop redundant ε, sort. Inputs must be canonical.
func mkUnion(xs []*Node) *Node {
	flat := make([]*Node, 0, len(xs))
	for _, x := range xs {
		switch x.kind {
		case KindUnion:
			flat = append(flat, x.subs...)
		case KindEmpty:
		default:
			flat = append(flat, x)
		}
	}
	flat = dedup(flat)

	var left, right, absorbed bool
	for {
		for {
			flat, left = factor(flat, true)
			flat, right = factor(flat, false)
			if !left && !right {
				break
			}
			flat = dedup(flat)
		}
		flat, absorbed = absorbPlus(flat)
		if !absorbed {
			break
		}
		flat = dedup(flat)
	}

	if hasEpsilon(flat) {
		for _, x := range flat {
			if x.kind != KindEpsilon && x.nullable {
				flat = withoutEpsilon(flat)
				break
			}
		}
	}

	switch len(flat) {
	case 0:
		return emptyNode
	case 1:
		return flat[0]
	}
	sortCanonical(flat)

	return newNode(KindUnion, flat, true)
}

// mkStar: ∅* = ε* = ε, (x*)* = x*, and ε or starred members inside a
// starred union are dropped or unwrapped until none remain.
func mkStar(x *Node) *Node {
	for {
		switch x.kind {
		case KindEmpty, KindEpsilon:
			return epsilonNode
		case KindStar:
			return x
		}
		if x.kind != KindUnion || !needsUnwrap(x.subs) {
			break
		}
		members := make([]*Node, 0, len(x.subs))
		for _, m := range x.subs {
			switch m.kind {
			case KindEpsilon:
			case KindStar:
				members = append(members, m.subs[0])
			default:
				members = append(members, m)
			}
		}
		x = mkUnion(members)
	}

	return newNode(KindStar, []*Node{x}, true)
}

func needsUnwrap(members []*Node) bool {
	for _, m := range members {
		if m.kind == KindEpsilon || m.kind == KindStar {
			return true
		}
	}

	return false
}

// factorGroup collects union members sharing a first (or last) factor.
type factorGroup struct {
	key     *Node
	members []*Node
}

// factor merges members with a common leading (left=true) or trailing factor:
// a·x ∪ a·y → a·(x ∪ y). ε members are left untouched. The merged member takes
// the position of the group's first member. Reports whether anything merged.
func factor(xs []*Node, left bool) ([]*Node, bool) {
	type slot struct {
		node  *Node // ε member carried through as-is
		group int   // index into groups when node == nil
	}
	groups := make([]factorGroup, 0, len(xs))
	slots := make([]slot, 0, len(xs))

	var key *Node
outer:
	for _, x := range xs {
		if x.kind == KindEpsilon {
			slots = append(slots, slot{node: x})
			continue
		}
		p := parts(x)
		if left {
			key = p[0]
		} else {
			key = p[len(p)-1]
		}
		for g := range groups {
			if Equal(groups[g].key, key) {
				groups[g].members = append(groups[g].members, x)
				continue outer
			}
		}
		groups = append(groups, factorGroup{key: key, members: []*Node{x}})
		slots = append(slots, slot{group: len(groups) - 1})
	}

	changed := false
	out := make([]*Node, 0, len(slots))
	for _, s := range slots {
		if s.node != nil {
			out = append(out, s.node)
			continue
		}
		g := groups[s.group]
		if len(g.members) == 1 {
			out = append(out, g.members[0])
			continue
		}
		changed = true
		rests := make([]*Node, len(g.members))
		for i, m := range g.members {
			p := parts(m)
			if left {
				rests[i] = mkConcat(p[1:])
			} else {
				rests[i] = mkConcat(p[:len(p)-1])
			}
		}
		if left {
			out = append(out, mkConcat([]*Node{g.key, mkUnion(rests)}))
		} else {
			out = append(out, mkConcat([]*Node{mkUnion(rests), g.key}))
		}
	}

	return out, changed
}

// plusBase returns x* when m is x·x* or x*·x, nil otherwise.
func plusBase(m *Node) *Node {
	if m.kind != KindConcat {
		return nil
	}
	p := m.subs
	last, first := p[len(p)-1], p[0]
	if last.kind == KindStar && Equal(mkConcat(p[:len(p)-1]), last.subs[0]) {
		return last
	}
	if first.kind == KindStar && Equal(mkConcat(p[1:]), first.subs[0]) {
		return first
	}

	return nil
}

// absorbPlus rewrites ε ∪ x·x* ∪ … into x* ∪ … (ε is then redundant).
func absorbPlus(xs []*Node) ([]*Node, bool) {
	if !hasEpsilon(xs) {
		return xs, false
	}
	out := make([]*Node, 0, len(xs))
	changed := false
	for _, x := range xs {
		if s := plusBase(x); s != nil {
			out = append(out, s)
			changed = true
			continue
		}
		out = append(out, x)
	}
	if !changed {
		return xs, false
	}

	return withoutEpsilon(out), true
}

func hasEpsilon(xs []*Node) bool {
	for _, x := range xs {
		if x.kind == KindEpsilon {
			return true
		}
	}

	return false
}

func withoutEpsilon(xs []*Node) []*Node {
	out := xs[:0:0]
	for _, x := range xs {
		if x.kind != KindEpsilon {
			out = append(out, x)
		}
	}

	return out
}

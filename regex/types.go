// SPDX-License-Identifier: MIT

package regex

import "github.com/katalvlaran/modregex/automaton"

// Kind tags the variant held by a Node.
type Kind uint8

// Node kinds. The numeric order is part of the canonical member order.
const (
	KindEmpty   Kind = iota // ∅, matches nothing
	KindEpsilon             // ε, matches the empty string
	KindLiteral             // single digit
	KindConcat              // ordered sequence
	KindUnion               // alternation
	KindStar                // Kleene closure
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindEpsilon:
		return "epsilon"
	case KindLiteral:
		return "literal"
	case KindConcat:
		return "concat"
	case KindUnion:
		return "union"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// panicBadDigit is raised by Literal for digits outside the alphabet.
const panicBadDigit = "regex: Literal: digit out of range"

// Node is an immutable regular-expression fragment.
// Nodes may be shared freely between trees and goroutines.
type Node struct {
	kind     Kind
	sym      uint8   // digit value, KindLiteral only
	subs     []*Node // children, never mutated after construction
	size     int     // node count of the tree
	nullable bool    // ε ∈ L(node)
	simple   bool    // produced by a simplifying constructor
}

var (
	emptyNode   = &Node{kind: KindEmpty, size: 1, simple: true}
	epsilonNode = &Node{kind: KindEpsilon, size: 1, nullable: true, simple: true}
	literals    [automaton.MaxBase]*Node
)

func init() {
	for i := range literals {
		literals[i] = &Node{kind: KindLiteral, sym: uint8(i), size: 1, simple: true}
	}
}

// newNode builds a composite node and derives size and nullability.
func newNode(kind Kind, subs []*Node, simple bool) *Node {
	n := &Node{kind: kind, subs: subs, size: 1, simple: simple}
	switch kind {
	case KindConcat:
		n.nullable = true
		for _, s := range subs {
			n.size += s.size
			n.nullable = n.nullable && s.nullable
		}
	case KindUnion:
		for _, s := range subs {
			n.size += s.size
			n.nullable = n.nullable || s.nullable
		}
	case KindStar:
		n.size += subs[0].size
		n.nullable = true
	}

	return n
}

// Empty returns the empty-language fragment ∅.
func Empty() *Node { return emptyNode }

// Epsilon returns the empty-string fragment ε.
func Epsilon() *Node { return epsilonNode }

// Literal returns the fragment matching the single digit d.
// It panics if d is outside [0, automaton.MaxBase).
func Literal(d int) *Node {
	if d < 0 || d >= automaton.MaxBase {
		panic(panicBadDigit)
	}

	return literals[d]
}

// Concat builds an unsimplified concatenation of xs.
func Concat(xs ...*Node) *Node {
	return newNode(KindConcat, append([]*Node(nil), xs...), false)
}

// Union builds an unsimplified alternation of xs.
func Union(xs ...*Node) *Node {
	return newNode(KindUnion, append([]*Node(nil), xs...), false)
}

// Star builds an unsimplified Kleene closure of x.
func Star(x *Node) *Node {
	return newNode(KindStar, []*Node{x}, false)
}

// Kind returns the variant tag.
func (n *Node) Kind() Kind { return n.kind }

// Symbol returns the digit of a literal node and -1 for other kinds.
func (n *Node) Symbol() int {
	if n.kind != KindLiteral {
		return -1
	}

	return int(n.sym)
}

// Children returns a copy of the node's children.
func (n *Node) Children() []*Node { return append([]*Node(nil), n.subs...) }

// Size returns the number of nodes in the tree (shared subtrees count once
// per occurrence). It is the unit of the synthesis budget.
func (n *Node) Size() int { return n.size }

// Nullable reports whether the fragment matches the empty string.
func (n *Node) Nullable() bool { return n.nullable }

// Simplified reports whether n is already in canonical form.
func (n *Node) Simplified() bool { return n.simple }

// String renders n with default options.
func (n *Node) String() string { return Render(n) }

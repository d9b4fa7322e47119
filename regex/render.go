// SPDX-License-Identifier: MIT

package regex

import (
	"slices"
	"strings"

	"github.com/katalvlaran/modregex/automaton"
)

// NoMatch is the text rendered for ∅: a class that no code point satisfies.
const NoMatch = `[^\x00-\x{10FFFF}]`

// Precedence levels used while rendering.
const (
	precUnion   = 0 // top level or inside an alternation
	precConcat  = 1 // operand of a concatenation
	precPostfix = 2 // operand of *, + or ?
)

// RenderOption customizes Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	classes bool
	anchors bool
}

// WithoutCharClasses renders single-digit alternatives as 0|1|2 instead of [0-2].
func WithoutCharClasses() RenderOption {
	return func(o *renderOptions) { o.classes = false }
}

// WithAnchors wraps the output in ^…$ so it matches whole strings only.
func WithAnchors() RenderOption {
	return func(o *renderOptions) { o.anchors = true }
}

// Render returns conventional regex text for n.
//
// Syntax: concatenation by juxtaposition, alternation with |, postfix * + ?,
// parentheses for grouping, and [..] classes with ranges that never span
// the 9→a gap. x·x* is written x+ and ε ∪ x is written x?. ε renders as
// the empty string. The output is accepted by Go's regexp package.
//
// Complexity: O(size).
func Render(n *Node, opts ...RenderOption) string {
	o := renderOptions{classes: true}
	for _, opt := range opts {
		opt(&o)
	}
	var sb strings.Builder
	if o.anchors {
		sb.WriteByte('^')
		o.render(&sb, n, precConcat)
		sb.WriteByte('$')
	} else {
		o.render(&sb, n, precUnion)
	}

	return sb.String()
}

func (o *renderOptions) render(sb *strings.Builder, n *Node, prec int) {
	switch n.kind {
	case KindEmpty:
		sb.WriteString(NoMatch)
	case KindEpsilon:
		if prec == precPostfix {
			sb.WriteString("()")
		}
	case KindLiteral:
		sb.WriteByte(automaton.Symbol(int(n.sym)))
	case KindStar:
		o.wrap(sb, prec == precPostfix, func() {
			o.render(sb, n.subs[0], precPostfix)
			sb.WriteByte('*')
		})
	case KindConcat:
		o.renderConcat(sb, n, prec)
	case KindUnion:
		o.renderUnion(sb, n, prec)
	}
}

func (o *renderOptions) wrap(sb *strings.Builder, paren bool, body func()) {
	if paren {
		sb.WriteByte('(')
	}
	body()
	if paren {
		sb.WriteByte(')')
	}
}

func (o *renderOptions) renderConcat(sb *strings.Builder, n *Node, prec int) {
	if len(n.subs) == 0 {
		if prec == precPostfix {
			sb.WriteString("()")
		}
		return
	}
	o.wrap(sb, prec == precPostfix, func() {
		subs := n.subs
		for i := 0; i < len(subs); i++ {
			c := subs[i]
			if i+1 < len(subs) && subs[i+1].kind == KindStar && Equal(subs[i+1].subs[0], c) {
				o.render(sb, c, precPostfix)
				sb.WriteByte('+')
				i++
				continue
			}
			o.render(sb, c, precConcat)
		}
	})
}

func (o *renderOptions) renderUnion(sb *strings.Builder, n *Node, prec int) {
	if len(n.subs) == 0 {
		sb.WriteString(NoMatch)
		return
	}
	eps := false
	var digits []int
	var others []*Node
	for _, m := range n.subs {
		switch m.kind {
		case KindEpsilon:
			eps = true
		case KindLiteral:
			digits = append(digits, int(m.sym))
		default:
			others = append(others, m)
		}
	}

	var alts []string
	switch {
	case len(digits) == 1:
		alts = append(alts, string(automaton.Symbol(digits[0])))
	case len(digits) > 1 && o.classes:
		alts = append(alts, charClass(digits))
	default:
		for _, d := range digits {
			alts = append(alts, string(automaton.Symbol(d)))
		}
	}
	atom := len(alts) == 1 && len(others) == 0
	for _, m := range others {
		var part strings.Builder
		o.render(&part, m, precUnion)
		alts = append(alts, part.String())
	}
	if len(alts) == 0 {
		if prec == precPostfix {
			sb.WriteString("()")
		}
		return
	}
	body := strings.Join(alts, "|")

	if eps {
		o.wrap(sb, prec == precPostfix, func() {
			o.wrap(sb, !atom, func() { sb.WriteString(body) })
			sb.WriteByte('?')
		})
		return
	}
	o.wrap(sb, !atom && prec >= precConcat, func() { sb.WriteString(body) })
}

// charClass renders digits as a bracket class, collapsing runs of three or
// more consecutive digits into ranges. A run never crosses from 9 to a.
func charClass(digits []int) string {
	ds := append([]int(nil), digits...)
	slices.Sort(ds)
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < len(ds); {
		j := i
		for j+1 < len(ds) && ds[j+1] == ds[j]+1 && ds[j+1] != 10 {
			j++
		}
		if j-i >= 2 {
			sb.WriteByte(automaton.Symbol(ds[i]))
			sb.WriteByte('-')
			sb.WriteByte(automaton.Symbol(ds[j]))
		} else {
			for t := i; t <= j; t++ {
				sb.WriteByte(automaton.Symbol(ds[t]))
			}
		}
		i = j + 1
	}
	sb.WriteByte(']')

	return sb.String()
}

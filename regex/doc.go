// Package regex models regular-expression fragments over the digit alphabet
// as a closed AST, simplifies them, and renders them to text.
//
// What:
//
//   - Node: immutable tagged variant with six kinds
//     Empty (∅), Epsilon (ε), Literal(digit), Concat, Union, Star.
//   - Raw constructors (Concat, Union, Star) build trees exactly as given.
//   - Simplifying constructors (Cat, Alt, Kleene) and Simplify produce
//     canonical trees: flattened, Empty-free, deduplicated, factored.
//   - Render turns a tree into conventional regex text (RE2 compatible).
//   - Matches runs a tree directly on a digit slice, independent of any
//     regex engine.
//
// Canonical form:
//
//	∅ ∪ x = x          ε · x = x          ∅ · x = ∅
//	(x*)* = x*         ∅* = ε* = ε        x* · x* = x*
//	a·x ∪ a·y = a·(x ∪ y)                 x·a ∪ y·a = (x ∪ y)·a
//	ε ∪ x·x* = x*      ε ∪ x = x  when x is nullable
//	(ε ∪ y* ∪ z)* = (y ∪ z)*
//
// Union members are kept in a canonical total order (see Compare), so equal
// languages built along the same path render to identical text.
//
// Complexity: Simplify is O(1) on canonical nodes and O(size·m²) on raw
// trees, where m is the widest union. Render is O(size).
package regex

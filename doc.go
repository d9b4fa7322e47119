// SPDX-License-Identifier: MIT

// Package modregex synthesizes regular expressions that recognize the
// base-b numerals whose value leaves remainder r when divided by d.
//
// What:
//
//	Synthesize(d, b, r) returns regex text such as
//
//		Synthesize(2, 10, 0) = "^([02468]|[13579]+[02468])*$"
//
//	The output is anchored unless WithoutAnchors is given.
//	A numeral is any string over the digits of base b (0-9 then a-f).
//	Leading zeros are allowed and the empty string has value 0.
//
// How:
//
//  1. automaton.New builds the residue DFA δ(s, x) = (s·b + x) mod d,
//     and Moore minimization merges residues the base cannot tell apart.
//  2. synth.Eliminate removes its states one by one from a regex table,
//     keeping every cell canonical through the regex smart constructors.
//  3. regex.Render prints the result with the fewest parentheses.
//
// Budget:
//
//	Worst-case growth of state elimination is exponential in d. Every call
//	runs under MaxNodes / MaxSteps / MaxStates caps (and an optional time
//	limit or context), so it either returns an expression or a
//	SynthesisError of kind BudgetExceeded. EstimateRemainder forecasts
//	the cost in O(d³) before committing to a run; Estimate takes the
//	costliest remainder.
//
// Errors:
//
//	All failures are *SynthesisError values; use errors.Is with
//	ErrInvalidModulus, ErrInvalidBase, ErrRemainderOutOfRange or
//	ErrBudgetExceeded, or errors.As to read the Kind and the inputs.
//
// Subpackages:
//
//	automaton/  residue DFA, liveness, Moore minimization
//	regex/      AST, simplifying constructors, renderer, matcher
//	matrix/     generic dense table and the elimination pivot kernel
//	synth/      state elimination, budgets, cost projection
//
// All functions are pure and safe for concurrent use.
package modregex

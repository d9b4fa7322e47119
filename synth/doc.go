// SPDX-License-Identifier: MIT

// Package synth converts a residue automaton into a regular expression by
// state elimination (Brzozowski–McCluskey) under an explicit budget.
//
// What:
//
//   - NewTable: the initial regex table over live states plus a synthetic
//     source S and sink F joined by ε edges to start and accept.
//   - Eliminate: folds every state into the remaining pairs, keeping each
//     cell canonical, and returns R[S][F] with run statistics.
//   - Project: the same run over fragment sizes only, an O(n³) forecast
//     graded into a Risk band.
//
// Order:
//
//	OrderAscending (default) eliminates interior states by index;
//	OrderMinDegree picks the smallest in×out degree product each round.
//	Accept and start always go last, in that order.
//
// Budget:
//
//	MaxNodes (largest fragment), MaxSteps (pair updates), MaxStates
//	(automaton size) and an optional TimeLimit. Exceeding any of them
//	returns an error wrapping ErrBudgetExceeded. Context cancellation is
//	honoured between rounds.
//
// Concurrency: every call owns its table; calls may run in parallel.
package synth

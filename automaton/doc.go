// Package automaton builds the residue recognizer used by modregex.
//
// What:
//
//   - A deterministic finite automaton whose states are the remainders
//     0..d-1 accumulated while reading a base-b numeral most-significant
//     digit first. Reading digit x in state s moves to (s·b + x) mod d.
//   - State 0 is the start state (the empty numeral has value 0) and the
//     single accepting state is the target remainder r.
//   - Helpers to run the automaton on digit slices or numeral strings, to
//     find live states (reachable from start and able to reach accept) and
//     to minimize the automaton with Moore partition refinement.
//
// Alphabet:
//
//	digit:  0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15
//	symbol: 0 1 2 3 4 5 6 7 8 9 a  b  c  d  e  f
//
// Complexity:
//
//   - New:      Time O(d·b), Memory O(d·b)
//   - Live:     Time O(d·b), Memory O(d·b)
//   - Minimize: Time O(d²·b) worst case, Memory O(d·b)
//
// Errors:
//
//   - ErrBadModulus    modulus < 1
//   - ErrBadBase       base outside [1, MaxBase]
//   - ErrBadRemainder  remainder outside [0, modulus)
//   - ErrBadSymbol     numeral contains a character outside the alphabet
package automaton

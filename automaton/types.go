// SPDX-License-Identifier: MIT

package automaton

import "errors"

// MaxBase is the largest supported numeral base (hexadecimal).
const MaxBase = 16

// MaxModulus is the largest modulus New accepts. It keeps the transition
// table (modulus·base ints) bounded and modulus·base far from overflow.
const MaxModulus = 1 << 20

// symbols maps digit values to their rendered characters.
const symbols = "0123456789abcdef"

var (
	// ErrBadModulus is returned when the modulus is smaller than 1.
	ErrBadModulus = errors.New("automaton: modulus must be >= 1")

	// ErrTooLarge is returned when the modulus exceeds MaxModulus.
	ErrTooLarge = errors.New("automaton: modulus exceeds MaxModulus")

	// ErrBadBase is returned when the base is outside [1, MaxBase].
	ErrBadBase = errors.New("automaton: base out of range")

	// ErrBadRemainder is returned when the remainder is outside [0, modulus).
	ErrBadRemainder = errors.New("automaton: remainder out of range")

	// ErrBadSymbol is returned when a numeral contains a character that is not
	// a digit of the automaton's base.
	ErrBadSymbol = errors.New("automaton: symbol not in alphabet")
)

// Automaton is a total deterministic recognizer over the digit alphabet
// {0..base-1} with a single start and a single accepting state.
//
// The transition table is stored row-major: delta[s*base+x] is the successor
// of state s on digit x. An Automaton is immutable after construction and is
// safe for concurrent use.
type Automaton struct {
	modulus int   // divisor the automaton was built for
	base    int   // alphabet size
	states  int   // number of states (== modulus unless minimized)
	start   int   // start state
	accept  int   // single accepting state
	delta   []int // states*base successors, row-major
}

// Symbol returns the character used to render digit x.
// It panics if x is outside [0, MaxBase); callers pass validated digits.
func Symbol(x int) byte {
	return symbols[x]
}

// Digit parses a single alphabet character into its digit value.
// Upper-case hexadecimal letters are accepted as well.
func Digit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

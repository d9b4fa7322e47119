// SPDX-License-Identifier: MIT

package automaton

import "fmt"

// automatonErrorf tags a sentinel with the failing operation and its inputs.
func automatonErrorf(op string, err error, args ...any) error {
	return fmt.Errorf("%s%v: %w", op, args, err)
}

// New builds the residue automaton for the given modulus, base and remainder.
//
// Stage 1 (Validate): 1 ≤ modulus ≤ MaxModulus, 1 ≤ base ≤ MaxBase,
// 0 ≤ remainder < modulus. A modulus above MaxModulus yields ErrTooLarge.
// Stage 2 (Build): δ(s, x) = (s·base + x) mod modulus for every state/digit pair.
//
// A modulus of 1 yields a single state that loops on every digit and accepts.
// Complexity: O(modulus·base) time and memory.
func New(modulus, base, remainder int) (*Automaton, error) {
	if modulus < 1 {
		return nil, automatonErrorf("New", ErrBadModulus, modulus)
	}
	if modulus > MaxModulus {
		return nil, automatonErrorf("New", ErrTooLarge, modulus)
	}
	if base < 1 || base > MaxBase {
		return nil, automatonErrorf("New", ErrBadBase, base)
	}
	if remainder < 0 || remainder >= modulus {
		return nil, automatonErrorf("New", ErrBadRemainder, remainder)
	}

	delta := make([]int, modulus*base)
	var s, x, row int
	for s = 0; s < modulus; s++ {
		row = s * base
		for x = 0; x < base; x++ {
			// s*base + x < MaxModulus·MaxBase, far below overflow.
			delta[row+x] = (s*base + x) % modulus
		}
	}

	return &Automaton{
		modulus: modulus,
		base:    base,
		states:  modulus,
		start:   0,
		accept:  remainder,
		delta:   delta,
	}, nil
}

// Modulus returns the divisor the automaton was built for.
func (a *Automaton) Modulus() int { return a.modulus }

// Base returns the alphabet size.
func (a *Automaton) Base() int { return a.base }

// States returns the number of states.
func (a *Automaton) States() int { return a.states }

// Start returns the start state.
func (a *Automaton) Start() int { return a.start }

// Accept returns the single accepting state.
func (a *Automaton) Accept() int { return a.accept }

// Step returns δ(state, digit). Inputs must be in range.
func (a *Automaton) Step(state, digit int) int {
	return a.delta[state*a.base+digit]
}

// Run feeds digits from the start state and returns the final state.
// Digits outside [0, Base) yield ErrBadSymbol.
func (a *Automaton) Run(digits []int) (int, error) {
	s := a.start
	for i, x := range digits {
		if x < 0 || x >= a.base {
			return 0, automatonErrorf("Run", ErrBadSymbol, i, x)
		}
		s = a.delta[s*a.base+x]
	}

	return s, nil
}

// Accepts reports whether the digit sequence ends in the accepting state.
// Out-of-alphabet digits are rejected.
func (a *Automaton) Accepts(digits []int) bool {
	s, err := a.Run(digits)

	return err == nil && s == a.accept
}

// AcceptsString parses numeral with Digit and runs it. The empty numeral is
// read as value 0. Leading zeros are ordinary digits.
func (a *Automaton) AcceptsString(numeral string) (bool, error) {
	s := a.start
	for i := 0; i < len(numeral); i++ {
		x, ok := Digit(numeral[i])
		if !ok || x >= a.base {
			return false, automatonErrorf("AcceptsString", ErrBadSymbol, i, string(numeral[i]))
		}
		s = a.delta[s*a.base+x]
	}

	return s == a.accept, nil
}

// Live marks states that are reachable from the start state and from which
// the accepting state is reachable. Only live states can contribute to the
// accepted language.
// Complexity: O(States·Base).
func (a *Automaton) Live() []bool {
	n := a.states
	reach := make([]bool, n)
	reach[a.start] = true
	stack := []int{a.start}
	var s, t, x int
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for x = 0; x < a.base; x++ {
			t = a.delta[s*a.base+x]
			if !reach[t] {
				reach[t] = true
				stack = append(stack, t)
			}
		}
	}

	// Reverse adjacency for the co-reachability pass.
	rev := make([][]int, n)
	for s = 0; s < n; s++ {
		for x = 0; x < a.base; x++ {
			t = a.delta[s*a.base+x]
			rev[t] = append(rev[t], s)
		}
	}
	co := make([]bool, n)
	co[a.accept] = true
	stack = append(stack[:0], a.accept)
	for len(stack) > 0 {
		t = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, s = range rev[t] {
			if !co[s] {
				co[s] = true
				stack = append(stack, s)
			}
		}
	}

	live := make([]bool, n)
	for s = 0; s < n; s++ {
		live[s] = reach[s] && co[s]
	}

	return live
}

// String implements fmt.Stringer for debugging.
func (a *Automaton) String() string {
	return fmt.Sprintf("automaton(mod=%d base=%d states=%d start=%d accept=%d)",
		a.modulus, a.base, a.states, a.start, a.accept)
}

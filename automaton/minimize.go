// SPDX-License-Identifier: MIT

package automaton

import "strconv"

// Minimize returns the minimal automaton recognizing the same language,
// computed with Moore partition refinement.
//
// Stage 1: split states into {accept} and the rest.
// Stage 2: refine by the tuple (class[s], class[δ(s,0)], …, class[δ(s,b-1)])
// until the number of classes stops growing.
// Stage 3: number classes by their smallest member so the start class is 0
// and the result is deterministic.
//
// Unreachable states are kept: they do not change the language and the
// synthesizer skips them via Live.
// Complexity: O(d²·b) worst case (at most d refinement rounds of O(d·b)).
func (a *Automaton) Minimize() *Automaton {
	n, b := a.states, a.base
	class := make([]int, n)
	for s := 0; s < n; s++ {
		if s == a.accept {
			class[s] = 1
		}
	}
	count := renumber(class)

	sig := make([]byte, 0, 8*(b+1))
	next := make([]int, n)
	for {
		seen := make(map[string]int, count)
		for s := 0; s < n; s++ {
			sig = sig[:0]
			sig = strconv.AppendInt(sig, int64(class[s]), 10)
			for x := 0; x < b; x++ {
				sig = append(sig, ',')
				sig = strconv.AppendInt(sig, int64(class[a.delta[s*b+x]]), 10)
			}
			id, ok := seen[string(sig)]
			if !ok {
				id = len(seen)
				seen[string(sig)] = id
			}
			next[s] = id
		}
		if len(seen) == count {
			break
		}
		count = len(seen)
		copy(class, next)
	}
	count = renumber(class)

	delta := make([]int, count*b)
	done := make([]bool, count)
	for s := 0; s < n; s++ {
		c := class[s]
		if done[c] {
			continue
		}
		done[c] = true
		for x := 0; x < b; x++ {
			delta[c*b+x] = class[a.delta[s*b+x]]
		}
	}

	return &Automaton{
		modulus: a.modulus,
		base:    b,
		states:  count,
		start:   class[a.start],
		accept:  class[a.accept],
		delta:   delta,
	}
}

// renumber rewrites class ids in order of first appearance by state index
// and returns the number of distinct classes.
func renumber(class []int) int {
	ids := make(map[int]int)
	for s, c := range class {
		id, ok := ids[c]
		if !ok {
			id = len(ids)
			ids[c] = id
		}
		class[s] = id
	}

	return len(ids)
}

package automaton_test

import (
	"fmt"

	"github.com/katalvlaran/modregex/automaton"
)

// ExampleNew walks the residue automaton for "value mod 3 == 1" in base 10.
func ExampleNew() {
	a, err := automaton.New(3, 10, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range []string{"1", "13", "21", "0007"} {
		ok, _ := a.AcceptsString(s)
		fmt.Printf("%s -> %v\n", s, ok)
	}
	// Output:
	// 1 -> true
	// 13 -> true
	// 21 -> false
	// 0007 -> true
}

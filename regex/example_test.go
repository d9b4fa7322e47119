package regex_test

import (
	"fmt"

	"github.com/katalvlaran/modregex/regex"
)

// ExampleSimplify shows common factors pulled out of an alternation.
func ExampleSimplify() {
	raw := regex.Union(
		regex.Concat(regex.Literal(1), regex.Literal(2)),
		regex.Concat(regex.Literal(1), regex.Literal(3)),
		regex.Empty(),
	)
	fmt.Println(regex.Render(regex.Simplify(raw)))
	fmt.Println(regex.Render(regex.Simplify(raw), regex.WithAnchors()))
	// Output:
	// 1[23]
	// ^1[23]$
}

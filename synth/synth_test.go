package synth_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/modregex/automaton"
	"github.com/katalvlaran/modregex/regex"
	"github.com/katalvlaran/modregex/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAutomaton(t *testing.T, d, b, r int) *automaton.Automaton {
	t.Helper()
	a, err := automaton.New(d, b, r)
	require.NoError(t, err)

	return a
}

// digitStrings enumerates every digit string over base b up to maxLen.
func digitStrings(b, maxLen int) [][]int {
	out := [][]int{{}}
	frontier := [][]int{{}}
	for l := 1; l <= maxLen; l++ {
		var next [][]int
		for _, p := range frontier {
			for x := 0; x < b; x++ {
				next = append(next, append(append([]int(nil), p...), x))
			}
		}
		out = append(out, next...)
		frontier = next
	}

	return out
}

func TestEliminate_KnownExpressions(t *testing.T) {
	t.Parallel()
	cases := []struct {
		d, b, r       int
		want          string
		rounds, steps int
		resultNodes   int
	}{
		{1, 10, 0, "[0-9]*", 1, 1, 12},
		{2, 10, 0, "([02468]|[13579]+[02468])*", 2, 2, 27},
		{3, 10, 1, "([0369]|[258][0369]*[147]|([147]|[258][0369]*[258])([0369]|[147][0369]*[258])*([258]|[147][0369]*[147]))*([147]|[258][0369]*[258])([0369]|[147][0369]*[258])*", 3, 7, 122},
		{3, 2, 0, "(0|1(0(1|00)*0)?1)*", 3, 6, 17},
		{4, 2, 0, "((1(0(10)*1)?1((0(10)*1)?1)*0)?(10)*0)*", 4, 10, 34},
		{2, 1, 0, "0*", 1, 1, 2},
		{3, 1, 1, regex.NoMatch, 0, 0, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("%d_%d_%d", tc.d, tc.b, tc.r), func(t *testing.T) {
			t.Parallel()
			res, err := synth.Eliminate(mustAutomaton(t, tc.d, tc.b, tc.r), synth.WithoutMinimize())
			require.NoError(t, err)
			assert.Equal(t, tc.want, regex.Render(res.Expr))
			assert.Equal(t, tc.rounds, res.Stats.Rounds)
			assert.Equal(t, tc.steps, res.Stats.Steps)
			assert.Equal(t, tc.resultNodes, res.Stats.ResultNodes)
			assert.Equal(t, tc.resultNodes, res.Expr.Size())
			assert.GreaterOrEqual(t, res.Stats.PeakNodes, res.Stats.ResultNodes)
		})
	}
}

func TestEliminate_LanguageMatchesAutomaton(t *testing.T) {
	t.Parallel()
	for _, b := range []int{1, 2, 3, 10} {
		maxLen := 5
		if b == 10 {
			maxLen = 3
		}
		inputs := digitStrings(b, maxLen)
		maxD := 6
		if b == 10 {
			maxD = 5
		}
		for d := 1; d <= maxD; d++ {
			for r := 0; r < d; r++ {
				a := mustAutomaton(t, d, b, r)
				res, err := synth.Eliminate(a)
				require.NoError(t, err)
				for _, in := range inputs {
					require.Equal(t, a.Accepts(in), regex.Matches(res.Expr, in), "d=%d b=%d r=%d in=%v", d, b, r, in)
				}
			}
		}
	}
}

func TestEliminate_PoliciesPreserveLanguage(t *testing.T) {
	t.Parallel()
	variants := map[string][]synth.Option{
		"min-degree": {synth.WithOrder(synth.OrderMinDegree)},
		"raw":        {synth.WithoutMinimize()},
		"no-trim":    {synth.WithoutTrim()},
		"all":        {synth.WithOrder(synth.OrderMinDegree), synth.WithoutMinimize(), synth.WithoutTrim()},
	}
	inputs := digitStrings(4, 4)
	for name, opts := range variants {
		for _, tc := range [][3]int{{6, 4, 5}, {5, 4, 0}, {4, 4, 2}, {8, 4, 3}} {
			a := mustAutomaton(t, tc[0], tc[1], tc[2])
			res, err := synth.Eliminate(a, opts...)
			require.NoError(t, err, name)
			for _, in := range inputs {
				require.Equal(t, a.Accepts(in), regex.Matches(res.Expr, in), "%s %v on %v", name, tc, in)
			}
		}
	}
}

func TestEliminate_MinimizeShrinksTable(t *testing.T) {
	t.Parallel()
	res, err := synth.Eliminate(mustAutomaton(t, 10, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Stats.States)
	assert.Equal(t, "([1-9]*0)*", regex.Render(res.Expr))

	res, err = synth.Eliminate(mustAutomaton(t, 16, 16, 0))
	require.NoError(t, err)
	assert.Equal(t, "([1-9a-f]*0)*", regex.Render(res.Expr))
}

// Divisors sharing factors with the base collapse to a handful of
// classes, so they fit the default budgets.
func TestEliminate_DefaultsFitSharedFactorDivisors(t *testing.T) {
	t.Parallel()
	for _, tc := range [][2]int{{16, 16}, {16, 8}, {20, 10}, {12, 10}, {15, 10}} {
		d, b := tc[0], tc[1]
		longest := 0
		for r := 0; r < d; r++ {
			a := mustAutomaton(t, d, b, r)
			res, err := synth.Eliminate(a)
			require.NoError(t, err, "d=%d b=%d r=%d", d, b, r)
			for _, in := range digitStrings(b, 2) {
				require.Equal(t, a.Accepts(in), regex.Matches(res.Expr, in), "d=%d b=%d r=%d in=%v", d, b, r, in)
			}
			if n := len(regex.Render(res.Expr)); n > longest {
				longest = n
			}
		}
		if d == 20 && b == 10 {
			assert.Equal(t, 97, longest)
		}
	}

	_, err := synth.Eliminate(mustAutomaton(t, 16, 16, 3), synth.WithoutMinimize(), synth.WithMaxNodes(1<<12))
	require.ErrorIs(t, err, synth.ErrBudgetExceeded)
}

func TestEliminate_Deterministic(t *testing.T) {
	t.Parallel()
	a := mustAutomaton(t, 7, 10, 3)
	first, err := synth.Eliminate(a)
	require.NoError(t, err)
	second, err := synth.Eliminate(a)
	require.NoError(t, err)
	assert.True(t, regex.Equal(first.Expr, second.Expr))
	assert.Equal(t, first.Stats, second.Stats)
}

func TestEliminate_Budget(t *testing.T) {
	t.Parallel()
	a := mustAutomaton(t, 3, 10, 1)

	_, err := synth.Eliminate(a, synth.WithMaxNodes(10))
	require.ErrorIs(t, err, synth.ErrBudgetExceeded)
	assert.Contains(t, err.Error(), "nodes")

	_, err = synth.Eliminate(a, synth.WithMaxSteps(1))
	require.ErrorIs(t, err, synth.ErrBudgetExceeded)
	assert.Contains(t, err.Error(), "steps")

	_, err = synth.Eliminate(a, synth.WithMaxStates(2))
	require.ErrorIs(t, err, synth.ErrBudgetExceeded)
	assert.Contains(t, err.Error(), "states")

	_, err = synth.Eliminate(mustAutomaton(t, 7, 10, 0), synth.WithTimeLimit(time.Nanosecond))
	require.ErrorIs(t, err, synth.ErrBudgetExceeded)

	// Unlimited steps still terminate within the node budget.
	res, err := synth.Eliminate(a, synth.WithMaxSteps(0))
	require.NoError(t, err)
	assert.Equal(t, 7, res.Stats.Steps)
}

func TestEliminate_BudgetSafetyOnLargeInputs(t *testing.T) {
	t.Parallel()
	for _, d := range []int{16, 40, 1000, 5000} {
		res, err := synth.Eliminate(mustAutomaton(t, d, 10, d-1), synth.WithMaxNodes(1<<12))
		if err != nil {
			require.ErrorIs(t, err, synth.ErrBudgetExceeded)
			continue
		}
		assert.LessOrEqual(t, res.Stats.PeakNodes, 1<<12)
	}
}

func TestEliminate_ContextAndHook(t *testing.T) {
	t.Parallel()
	a := mustAutomaton(t, 5, 10, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := synth.Eliminate(a, synth.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	var rounds []synth.Round
	res, err := synth.Eliminate(a, synth.WithoutMinimize(), synth.WithOnEliminate(func(r synth.Round) error {
		rounds = append(rounds, r)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, rounds, res.Stats.Rounds)
	states := make([]int, len(rounds))
	for i, r := range rounds {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, len(rounds)-1-i, r.Remaining)
		states[i] = r.State
	}
	assert.Equal(t, []int{1, 2, 4, 3, 0}, states)

	stop := errors.New("stop")
	_, err = synth.Eliminate(a, synth.WithOnEliminate(func(r synth.Round) error {
		if r.Index == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestEliminate_InvalidInput(t *testing.T) {
	t.Parallel()
	_, err := synth.Eliminate(nil)
	require.ErrorIs(t, err, synth.ErrNilAutomaton)

	a := mustAutomaton(t, 2, 10, 0)
	for _, opt := range []synth.Option{
		synth.WithMaxNodes(0),
		synth.WithMaxSteps(-1),
		synth.WithMaxStates(0),
		synth.WithTimeLimit(-time.Second),
		synth.WithOrder(synth.Order(9)),
	} {
		_, err = synth.Eliminate(a, opt)
		require.ErrorIs(t, err, synth.ErrInvalidOption)
	}
}

func TestParseOrder(t *testing.T) {
	t.Parallel()
	o, err := synth.ParseOrder("min-degree")
	require.NoError(t, err)
	assert.Equal(t, synth.OrderMinDegree, o)
	assert.Equal(t, "min-degree", o.String())
	o, err = synth.ParseOrder("ascending")
	require.NoError(t, err)
	assert.Equal(t, synth.OrderAscending, o)
	_, err = synth.ParseOrder("random")
	require.ErrorIs(t, err, synth.ErrInvalidOption)
}

func TestNewTable(t *testing.T) {
	t.Parallel()
	a := mustAutomaton(t, 3, 10, 1)
	tbl, err := synth.NewTable(a, a.Live())
	require.NoError(t, err)
	require.Equal(t, 5, tbl.Rows())

	cell := func(i, j int) string {
		n, err := tbl.At(i, j)
		require.NoError(t, err)
		return regex.Render(n)
	}
	assert.Equal(t, "[0369]", cell(0, 0))
	assert.Equal(t, "[147]", cell(0, 1))
	assert.Equal(t, "[258]", cell(1, 0))
	assert.Equal(t, "", cell(3, 0), "S→start is ε")
	assert.Equal(t, "", cell(1, 4), "accept→F is ε")
	assert.Equal(t, regex.NoMatch, cell(3, 4))

	_, err = synth.NewTable(nil, nil)
	require.ErrorIs(t, err, synth.ErrNilAutomaton)
	_, err = synth.NewTable(a, []bool{true})
	require.ErrorIs(t, err, synth.ErrLiveMask)
}

func TestNewTable_SkipsDeadStates(t *testing.T) {
	t.Parallel()
	// Base 1 never leaves state 0, so only it is live for r = 0.
	a := mustAutomaton(t, 4, 1, 0)
	tbl, err := synth.NewTable(a, a.Live())
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	n, err := tbl.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "0", regex.Render(n))
}

func TestProject(t *testing.T) {
	t.Parallel()
	cases := []struct {
		d, b, r int
		rounds  int
		updates int
		peak    float64
		risk    synth.Risk
	}{
		{1, 10, 0, 1, 1, 15, synth.RiskLow},
		{2, 10, 0, 2, 2, 31, synth.RiskLow},
		{3, 10, 1, 3, 7, 132, synth.RiskLow},
		{4, 2, 0, 4, 10, 51, synth.RiskLow},
		{3, 1, 1, 0, 0, 1, synth.RiskLow},
		{9, 10, 8, 9, 206, 262149, synth.RiskElevated},
		{20, 10, 19, 20, 1247, 1609649839, synth.RiskSevere},
	}
	for _, tc := range cases {
		p, err := synth.Project(mustAutomaton(t, tc.d, tc.b, tc.r), synth.WithoutMinimize())
		require.NoError(t, err)
		assert.Equal(t, tc.rounds, p.Rounds, "%v", tc)
		assert.Equal(t, tc.updates, p.PairUpdates, "%v", tc)
		assert.Equal(t, tc.peak, p.PeakNodes, "%v", tc)
		assert.Equal(t, tc.peak, p.ResultNodes, "%v", tc)
		assert.Equal(t, tc.risk, p.Risk, "%v", tc)
	}
}

func TestProject_BoundsEliminate(t *testing.T) {
	t.Parallel()
	for _, tc := range [][3]int{{3, 10, 1}, {5, 10, 3}, {6, 4, 5}, {7, 2, 1}} {
		a := mustAutomaton(t, tc[0], tc[1], tc[2])
		p, err := synth.Project(a)
		require.NoError(t, err)
		res, err := synth.Eliminate(a)
		require.NoError(t, err)
		assert.Equal(t, res.Stats.Rounds, p.Rounds)
		assert.Equal(t, res.Stats.Steps, p.PairUpdates)
		assert.GreaterOrEqual(t, p.PeakNodes, float64(res.Stats.PeakNodes), "%v", tc)
	}
}

func TestProject_Severe(t *testing.T) {
	t.Parallel()
	p, err := synth.Project(mustAutomaton(t, 50, 10, 1), synth.WithMaxStates(10))
	require.NoError(t, err)
	assert.Equal(t, synth.RiskSevere, p.Risk)
	assert.True(t, math.IsInf(p.PeakNodes, 1))
	assert.Equal(t, 50, p.States)

	text, err := synth.RiskElevated.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "elevated", string(text))
}
